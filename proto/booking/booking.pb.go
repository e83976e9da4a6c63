// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: booking.proto

package booking

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	durationpb "google.golang.org/protobuf/types/known/durationpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type TokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Secret        string                 `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TokenRequest) Reset() {
	*x = TokenRequest{}
	mi := &file_booking_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenRequest) ProtoMessage() {}

func (x *TokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenRequest.ProtoReflect.Descriptor instead.
func (*TokenRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{0}
}

func (x *TokenRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *TokenRequest) GetSecret() string {
	if x != nil {
		return x.Secret
	}
	return ""
}

type TokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TokenResponse) Reset() {
	*x = TokenResponse{}
	mi := &file_booking_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenResponse) ProtoMessage() {}

func (x *TokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenResponse.ProtoReflect.Descriptor instead.
func (*TokenResponse) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{1}
}

func (x *TokenResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type BookRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=start,proto3" json:"start,omitempty"`
	End           *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=end,proto3" json:"end,omitempty"`
	Label         string                 `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BookRequest) Reset() {
	*x = BookRequest{}
	mi := &file_booking_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BookRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookRequest) ProtoMessage() {}

func (x *BookRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookRequest.ProtoReflect.Descriptor instead.
func (*BookRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{2}
}

func (x *BookRequest) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *BookRequest) GetEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.End
	}
	return nil
}

func (x *BookRequest) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

type BookResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reservation   *ReservationView       `protobuf:"bytes,1,opt,name=reservation,proto3" json:"reservation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BookResponse) Reset() {
	*x = BookResponse{}
	mi := &file_booking_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BookResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookResponse) ProtoMessage() {}

func (x *BookResponse) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookResponse.ProtoReflect.Descriptor instead.
func (*BookResponse) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{3}
}

func (x *BookResponse) GetReservation() *ReservationView {
	if x != nil {
		return x.Reservation
	}
	return nil
}

type CancelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReservationId string                 `protobuf:"bytes,1,opt,name=reservation_id,json=reservationId,proto3" json:"reservation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelRequest) Reset() {
	*x = CancelRequest{}
	mi := &file_booking_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelRequest) ProtoMessage() {}

func (x *CancelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelRequest.ProtoReflect.Descriptor instead.
func (*CancelRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{4}
}

func (x *CancelRequest) GetReservationId() string {
	if x != nil {
		return x.ReservationId
	}
	return ""
}

type CancelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelResponse) Reset() {
	*x = CancelResponse{}
	mi := &file_booking_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelResponse) ProtoMessage() {}

func (x *CancelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelResponse.ProtoReflect.Descriptor instead.
func (*CancelResponse) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{5}
}

func (x *CancelResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type ExtendRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReservationId string                 `protobuf:"bytes,1,opt,name=reservation_id,json=reservationId,proto3" json:"reservation_id,omitempty"`
	Extension     *durationpb.Duration   `protobuf:"bytes,2,opt,name=extension,proto3" json:"extension,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtendRequest) Reset() {
	*x = ExtendRequest{}
	mi := &file_booking_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtendRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtendRequest) ProtoMessage() {}

func (x *ExtendRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtendRequest.ProtoReflect.Descriptor instead.
func (*ExtendRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{6}
}

func (x *ExtendRequest) GetReservationId() string {
	if x != nil {
		return x.ReservationId
	}
	return ""
}

func (x *ExtendRequest) GetExtension() *durationpb.Duration {
	if x != nil {
		return x.Extension
	}
	return nil
}

type ExtendResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reservation   *ReservationView       `protobuf:"bytes,1,opt,name=reservation,proto3" json:"reservation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtendResponse) Reset() {
	*x = ExtendResponse{}
	mi := &file_booking_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtendResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtendResponse) ProtoMessage() {}

func (x *ExtendResponse) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtendResponse.ProtoReflect.Descriptor instead.
func (*ExtendResponse) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{7}
}

func (x *ExtendResponse) GetReservation() *ReservationView {
	if x != nil {
		return x.Reservation
	}
	return nil
}

type ListUpcomingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUpcomingRequest) Reset() {
	*x = ListUpcomingRequest{}
	mi := &file_booking_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUpcomingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUpcomingRequest) ProtoMessage() {}

func (x *ListUpcomingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUpcomingRequest.ProtoReflect.Descriptor instead.
func (*ListUpcomingRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{8}
}

type OwnerBookingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OwnerBookingsRequest) Reset() {
	*x = OwnerBookingsRequest{}
	mi := &file_booking_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OwnerBookingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OwnerBookingsRequest) ProtoMessage() {}

func (x *OwnerBookingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OwnerBookingsRequest.ProtoReflect.Descriptor instead.
func (*OwnerBookingsRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{9}
}

type WeekScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WeekScheduleRequest) Reset() {
	*x = WeekScheduleRequest{}
	mi := &file_booking_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WeekScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WeekScheduleRequest) ProtoMessage() {}

func (x *WeekScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WeekScheduleRequest.ProtoReflect.Descriptor instead.
func (*WeekScheduleRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{10}
}

func (x *WeekScheduleRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

type SearchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchRequest) Reset() {
	*x = SearchRequest{}
	mi := &file_booking_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchRequest) ProtoMessage() {}

func (x *SearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchRequest.ProtoReflect.Descriptor instead.
func (*SearchRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{11}
}

func (x *SearchRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type ListUpcomingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reservations  []*ReservationView     `protobuf:"bytes,1,rep,name=reservations,proto3" json:"reservations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUpcomingResponse) Reset() {
	*x = ListUpcomingResponse{}
	mi := &file_booking_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUpcomingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUpcomingResponse) ProtoMessage() {}

func (x *ListUpcomingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUpcomingResponse.ProtoReflect.Descriptor instead.
func (*ListUpcomingResponse) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{12}
}

func (x *ListUpcomingResponse) GetReservations() []*ReservationView {
	if x != nil {
		return x.Reservations
	}
	return nil
}

type ReservationView struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=start,proto3" json:"start,omitempty"`
	End           *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=end,proto3" json:"end,omitempty"`
	Label         string                 `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReservationView) Reset() {
	*x = ReservationView{}
	mi := &file_booking_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReservationView) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReservationView) ProtoMessage() {}

func (x *ReservationView) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReservationView.ProtoReflect.Descriptor instead.
func (*ReservationView) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{13}
}

func (x *ReservationView) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReservationView) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *ReservationView) GetEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.End
	}
	return nil
}

func (x *ReservationView) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *ReservationView) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type WatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchRequest) Reset() {
	*x = WatchRequest{}
	mi := &file_booking_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchRequest) ProtoMessage() {}

func (x *WatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchRequest.ProtoReflect.Descriptor instead.
func (*WatchRequest) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{14}
}

type RoomSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GeneratedAt   *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"`
	Current       *ReservationView       `protobuf:"bytes,2,opt,name=current,proto3" json:"current,omitempty"`
	Next          []*ReservationView     `protobuf:"bytes,3,rep,name=next,proto3" json:"next,omitempty"`
	Upcoming      []*ReservationView     `protobuf:"bytes,4,rep,name=upcoming,proto3" json:"upcoming,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RoomSnapshot) Reset() {
	*x = RoomSnapshot{}
	mi := &file_booking_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RoomSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RoomSnapshot) ProtoMessage() {}

func (x *RoomSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_booking_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RoomSnapshot.ProtoReflect.Descriptor instead.
func (*RoomSnapshot) Descriptor() ([]byte, []int) {
	return file_booking_proto_rawDescGZIP(), []int{15}
}

func (x *RoomSnapshot) GetGeneratedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.GeneratedAt
	}
	return nil
}

func (x *RoomSnapshot) GetCurrent() *ReservationView {
	if x != nil {
		return x.Current
	}
	return nil
}

func (x *RoomSnapshot) GetNext() []*ReservationView {
	if x != nil {
		return x.Next
	}
	return nil
}

func (x *RoomSnapshot) GetUpcoming() []*ReservationView {
	if x != nil {
		return x.Upcoming
	}
	return nil
}

var File_booking_proto protoreflect.FileDescriptor

const file_booking_proto_rawDesc = "" +
	"\n" +
	"\rbooking.proto\x12\abooking\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/duration.proto\"A\n" +
	"\fTokenRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x16\n" +
	"\x06secret\x18\x02 \x01(\tR\x06secret\"%\n" +
	"\rTokenResponse\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\"\x83\x01\n" +
	"\vBookRequest\x120\n" +
	"\x05start\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x12,\n" +
	"\x03end\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x03end\x12\x14\n" +
	"\x05label\x18\x03 \x01(\tR\x05label\"J\n" +
	"\fBookResponse\x12:\n" +
	"\vreservation\x18\x01 \x01(\v2\x18.booking.ReservationViewR\vreservation\"6\n" +
	"\rCancelRequest\x12%\n" +
	"\x0ereservation_id\x18\x01 \x01(\tR\rreservationId\"*\n" +
	"\x0eCancelResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"o\n" +
	"\rExtendRequest\x12%\n" +
	"\x0ereservation_id\x18\x01 \x01(\tR\rreservationId\x127\n" +
	"\textension\x18\x02 \x01(\v2\x19.google.protobuf.DurationR\textension\"L\n" +
	"\x0eExtendResponse\x12:\n" +
	"\vreservation\x18\x01 \x01(\v2\x18.booking.ReservationViewR\vreservation\"\x15\n" +
	"\x13ListUpcomingRequest\"\x16\n" +
	"\x14OwnerBookingsRequest\"E\n" +
	"\x13WeekScheduleRequest\x12.\n" +
	"\x04from\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\"%\n" +
	"\rSearchRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"T\n" +
	"\x14ListUpcomingResponse\x12<\n" +
	"\freservations\x18\x01 \x03(\v2\x18.booking.ReservationViewR\freservations\"\xaf\x01\n" +
	"\x0fReservationView\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x120\n" +
	"\x05start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x12,\n" +
	"\x03end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x03end\x12\x14\n" +
	"\x05label\x18\x04 \x01(\tR\x05label\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\"\x0e\n" +
	"\fWatchRequest\"\xe5\x01\n" +
	"\fRoomSnapshot\x12=\n" +
	"\fgenerated_at\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\vgeneratedAt\x122\n" +
	"\acurrent\x18\x02 \x01(\v2\x18.booking.ReservationViewR\acurrent\x12,\n" +
	"\x04next\x18\x03 \x03(\v2\x18.booking.ReservationViewR\x04next\x124\n" +
	"\bupcoming\x18\x04 \x03(\v2\x18.booking.ReservationViewR\bupcoming2\xd6\x04\n" +
	"\x0eBookingService\x126\n" +
	"\x05Token\x12\x15.booking.TokenRequest\x1a\x16.booking.TokenResponse\x123\n" +
	"\x04Book\x12\x14.booking.BookRequest\x1a\x15.booking.BookResponse\x129\n" +
	"\x06Cancel\x12\x16.booking.CancelRequest\x1a\x17.booking.CancelResponse\x129\n" +
	"\x06Extend\x12\x16.booking.ExtendRequest\x1a\x17.booking.ExtendResponse\x12K\n" +
	"\fListUpcoming\x12\x1c.booking.ListUpcomingRequest\x1a\x1d.booking.ListUpcomingResponse\x12M\n" +
	"\rOwnerBookings\x12\x1d.booking.OwnerBookingsRequest\x1a\x1d.booking.ListUpcomingResponse\x12K\n" +
	"\fWeekSchedule\x12\x1c.booking.WeekScheduleRequest\x1a\x1d.booking.ListUpcomingResponse\x12?\n" +
	"\x06Search\x12\x16.booking.SearchRequest\x1a\x1d.booking.ListUpcomingResponse\x127\n" +
	"\x05Watch\x12\x15.booking.WatchRequest\x1a\x15.booking.RoomSnapshot0\x01B\x1bZ\x19booking-lab/proto/bookingb\x06proto3"

var (
	file_booking_proto_rawDescOnce sync.Once
	file_booking_proto_rawDescData []byte
)

func file_booking_proto_rawDescGZIP() []byte {
	file_booking_proto_rawDescOnce.Do(func() {
		file_booking_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_booking_proto_rawDesc), len(file_booking_proto_rawDesc)))
	})
	return file_booking_proto_rawDescData
}

var file_booking_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_booking_proto_goTypes = []any{
	(*TokenRequest)(nil),          // 0: booking.TokenRequest
	(*TokenResponse)(nil),         // 1: booking.TokenResponse
	(*BookRequest)(nil),           // 2: booking.BookRequest
	(*BookResponse)(nil),          // 3: booking.BookResponse
	(*CancelRequest)(nil),         // 4: booking.CancelRequest
	(*CancelResponse)(nil),        // 5: booking.CancelResponse
	(*ExtendRequest)(nil),         // 6: booking.ExtendRequest
	(*ExtendResponse)(nil),        // 7: booking.ExtendResponse
	(*ListUpcomingRequest)(nil),   // 8: booking.ListUpcomingRequest
	(*OwnerBookingsRequest)(nil),  // 9: booking.OwnerBookingsRequest
	(*WeekScheduleRequest)(nil),   // 10: booking.WeekScheduleRequest
	(*SearchRequest)(nil),         // 11: booking.SearchRequest
	(*ListUpcomingResponse)(nil),  // 12: booking.ListUpcomingResponse
	(*ReservationView)(nil),       // 13: booking.ReservationView
	(*WatchRequest)(nil),          // 14: booking.WatchRequest
	(*RoomSnapshot)(nil),          // 15: booking.RoomSnapshot
	(*timestamppb.Timestamp)(nil), // 16: google.protobuf.Timestamp
	(*durationpb.Duration)(nil),   // 17: google.protobuf.Duration
}
var file_booking_proto_depIdxs = []int32{
	16, // 0: booking.BookRequest.start:type_name -> google.protobuf.Timestamp
	16, // 1: booking.BookRequest.end:type_name -> google.protobuf.Timestamp
	13, // 2: booking.BookResponse.reservation:type_name -> booking.ReservationView
	17, // 3: booking.ExtendRequest.extension:type_name -> google.protobuf.Duration
	13, // 4: booking.ExtendResponse.reservation:type_name -> booking.ReservationView
	16, // 5: booking.WeekScheduleRequest.from:type_name -> google.protobuf.Timestamp
	13, // 6: booking.ListUpcomingResponse.reservations:type_name -> booking.ReservationView
	16, // 7: booking.ReservationView.start:type_name -> google.protobuf.Timestamp
	16, // 8: booking.ReservationView.end:type_name -> google.protobuf.Timestamp
	16, // 9: booking.RoomSnapshot.generated_at:type_name -> google.protobuf.Timestamp
	13, // 10: booking.RoomSnapshot.current:type_name -> booking.ReservationView
	13, // 11: booking.RoomSnapshot.next:type_name -> booking.ReservationView
	13, // 12: booking.RoomSnapshot.upcoming:type_name -> booking.ReservationView
	0,  // 13: booking.BookingService.Token:input_type -> booking.TokenRequest
	2,  // 14: booking.BookingService.Book:input_type -> booking.BookRequest
	4,  // 15: booking.BookingService.Cancel:input_type -> booking.CancelRequest
	6,  // 16: booking.BookingService.Extend:input_type -> booking.ExtendRequest
	8,  // 17: booking.BookingService.ListUpcoming:input_type -> booking.ListUpcomingRequest
	9,  // 18: booking.BookingService.OwnerBookings:input_type -> booking.OwnerBookingsRequest
	10, // 19: booking.BookingService.WeekSchedule:input_type -> booking.WeekScheduleRequest
	11, // 20: booking.BookingService.Search:input_type -> booking.SearchRequest
	14, // 21: booking.BookingService.Watch:input_type -> booking.WatchRequest
	1,  // 22: booking.BookingService.Token:output_type -> booking.TokenResponse
	3,  // 23: booking.BookingService.Book:output_type -> booking.BookResponse
	5,  // 24: booking.BookingService.Cancel:output_type -> booking.CancelResponse
	7,  // 25: booking.BookingService.Extend:output_type -> booking.ExtendResponse
	12, // 26: booking.BookingService.ListUpcoming:output_type -> booking.ListUpcomingResponse
	12, // 27: booking.BookingService.OwnerBookings:output_type -> booking.ListUpcomingResponse
	12, // 28: booking.BookingService.WeekSchedule:output_type -> booking.ListUpcomingResponse
	12, // 29: booking.BookingService.Search:output_type -> booking.ListUpcomingResponse
	15, // 30: booking.BookingService.Watch:output_type -> booking.RoomSnapshot
	22, // [22:31] is the sub-list for method output_type
	13, // [13:22] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_booking_proto_init() }
func file_booking_proto_init() {
	if File_booking_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_booking_proto_rawDesc), len(file_booking_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_booking_proto_goTypes,
		DependencyIndexes: file_booking_proto_depIdxs,
		MessageInfos:      file_booking_proto_msgTypes,
	}.Build()
	File_booking_proto = out.File
	file_booking_proto_goTypes = nil
	file_booking_proto_depIdxs = nil
}
