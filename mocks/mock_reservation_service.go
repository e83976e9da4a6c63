// Code generated by MockGen. DO NOT EDIT.
// Source: reservation_service.go
//
// Generated by this command:
//
//	mockgen -source=reservation_service.go -destination=../mocks/mock_reservation_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "booking-lab/domain"
	context "context"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockIReservationService is a mock of IReservationService interface.
type MockIReservationService struct {
	ctrl     *gomock.Controller
	recorder *MockIReservationServiceMockRecorder
	isgomock struct{}
}

// MockIReservationServiceMockRecorder is the mock recorder for MockIReservationService.
type MockIReservationServiceMockRecorder struct {
	mock *MockIReservationService
}

// NewMockIReservationService creates a new mock instance.
func NewMockIReservationService(ctrl *gomock.Controller) *MockIReservationService {
	mock := &MockIReservationService{ctrl: ctrl}
	mock.recorder = &MockIReservationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIReservationService) EXPECT() *MockIReservationServiceMockRecorder {
	return m.recorder
}

// Book mocks base method.
func (m *MockIReservationService) Book(ctx context.Context, cmd domain.BookCommand) (domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Book", ctx, cmd)
	ret0, _ := ret[0].(domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Book indicates an expected call of Book.
func (mr *MockIReservationServiceMockRecorder) Book(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Book", reflect.TypeOf((*MockIReservationService)(nil).Book), ctx, cmd)
}

// Cancel mocks base method.
func (m *MockIReservationService) Cancel(ctx context.Context, cmd domain.CancelCommand) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, cmd)
	ret0, _ := ret[0].(error)
	return ret0
}

// Cancel indicates an expected call of Cancel.
func (mr *MockIReservationServiceMockRecorder) Cancel(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockIReservationService)(nil).Cancel), ctx, cmd)
}

// CurrentState mocks base method.
func (m *MockIReservationService) CurrentState(ctx context.Context, asOf time.Time) (domain.RoomState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CurrentState", ctx, asOf)
	ret0, _ := ret[0].(domain.RoomState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CurrentState indicates an expected call of CurrentState.
func (mr *MockIReservationServiceMockRecorder) CurrentState(ctx, asOf any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CurrentState", reflect.TypeOf((*MockIReservationService)(nil).CurrentState), ctx, asOf)
}

// Extend mocks base method.
func (m *MockIReservationService) Extend(ctx context.Context, cmd domain.ExtendCommand) (domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Extend", ctx, cmd)
	ret0, _ := ret[0].(domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Extend indicates an expected call of Extend.
func (mr *MockIReservationServiceMockRecorder) Extend(ctx, cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Extend", reflect.TypeOf((*MockIReservationService)(nil).Extend), ctx, cmd)
}

// OwnerBookings mocks base method.
func (m *MockIReservationService) OwnerBookings(ctx context.Context, owner string, asOf time.Time) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerBookings", ctx, owner, asOf)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerBookings indicates an expected call of OwnerBookings.
func (mr *MockIReservationServiceMockRecorder) OwnerBookings(ctx, owner, asOf any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerBookings", reflect.TypeOf((*MockIReservationService)(nil).OwnerBookings), ctx, owner, asOf)
}

// Search mocks base method.
func (m *MockIReservationService) Search(ctx context.Context, query string) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, query)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockIReservationServiceMockRecorder) Search(ctx, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockIReservationService)(nil).Search), ctx, query)
}

// WeekSchedule mocks base method.
func (m *MockIReservationService) WeekSchedule(ctx context.Context, from time.Time) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WeekSchedule", ctx, from)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// WeekSchedule indicates an expected call of WeekSchedule.
func (mr *MockIReservationServiceMockRecorder) WeekSchedule(ctx, from any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WeekSchedule", reflect.TypeOf((*MockIReservationService)(nil).WeekSchedule), ctx, from)
}
