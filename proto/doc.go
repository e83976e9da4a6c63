// Package proto holds the wire and storage schemas. Generated Go code
// lands in proto/booking and proto/storage and is not committed; run
// `go generate ./proto` (requires protoc with the protoc-gen-go and
// protoc-gen-go-grpc plugins on PATH) after a fresh checkout.
package proto

//go:generate protoc -I. --go_out=.. --go_opt=module=booking-lab --go-grpc_out=.. --go-grpc_opt=module=booking-lab booking.proto
//go:generate protoc -I. --go_out=.. --go_opt=module=booking-lab storage.proto
