// Code generated by MockGen. DO NOT EDIT.
// Source: reservation_repository.go
//
// Generated by this command:
//
//	mockgen -source=reservation_repository.go -destination=../../mocks/mock_reservation_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "booking-lab/domain"
	context "context"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIReservationRepository is a mock of IReservationRepository interface.
type MockIReservationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIReservationRepositoryMockRecorder
	isgomock struct{}
}

// MockIReservationRepositoryMockRecorder is the mock recorder for MockIReservationRepository.
type MockIReservationRepositoryMockRecorder struct {
	mock *MockIReservationRepository
}

// NewMockIReservationRepository creates a new mock instance.
func NewMockIReservationRepository(ctrl *gomock.Controller) *MockIReservationRepository {
	mock := &MockIReservationRepository{ctrl: ctrl}
	mock.recorder = &MockIReservationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIReservationRepository) EXPECT() *MockIReservationRepositoryMockRecorder {
	return m.recorder
}

// Cancel mocks base method.
func (m *MockIReservationRepository) Cancel(id uuid.UUID, owner string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", id, owner)
	ret0, _ := ret[0].(error)
	return ret0
}

// Cancel indicates an expected call of Cancel.
func (mr *MockIReservationRepositoryMockRecorder) Cancel(id, owner any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockIReservationRepository)(nil).Cancel), id, owner)
}

// Get mocks base method.
func (m *MockIReservationRepository) Get(id uuid.UUID) (domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIReservationRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIReservationRepository)(nil).Get), id)
}

// Insert mocks base method.
func (m *MockIReservationRepository) Insert(res domain.Reservation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", res)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockIReservationRepositoryMockRecorder) Insert(res any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockIReservationRepository)(nil).Insert), res)
}

// ListOverlapping mocks base method.
func (m *MockIReservationRepository) ListOverlapping(start, end time.Time) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOverlapping", start, end)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOverlapping indicates an expected call of ListOverlapping.
func (mr *MockIReservationRepositoryMockRecorder) ListOverlapping(start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOverlapping", reflect.TypeOf((*MockIReservationRepository)(nil).ListOverlapping), start, end)
}

// OwnerUpcoming mocks base method.
func (m *MockIReservationRepository) OwnerUpcoming(owner string, asOf time.Time) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerUpcoming", owner, asOf)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerUpcoming indicates an expected call of OwnerUpcoming.
func (mr *MockIReservationRepositoryMockRecorder) OwnerUpcoming(owner, asOf any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerUpcoming", reflect.TypeOf((*MockIReservationRepository)(nil).OwnerUpcoming), owner, asOf)
}

// SearchLabels mocks base method.
func (m *MockIReservationRepository) SearchLabels(ctx context.Context, query string, limit int) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchLabels", ctx, query, limit)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchLabels indicates an expected call of SearchLabels.
func (mr *MockIReservationRepositoryMockRecorder) SearchLabels(ctx, query, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchLabels", reflect.TypeOf((*MockIReservationRepository)(nil).SearchLabels), ctx, query, limit)
}

// Upcoming mocks base method.
func (m *MockIReservationRepository) Upcoming(asOf time.Time) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upcoming", asOf)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Upcoming indicates an expected call of Upcoming.
func (mr *MockIReservationRepositoryMockRecorder) Upcoming(asOf any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upcoming", reflect.TypeOf((*MockIReservationRepository)(nil).Upcoming), asOf)
}

// UpdateEnd mocks base method.
func (m *MockIReservationRepository) UpdateEnd(id uuid.UUID, owner string, newEnd time.Time) (domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateEnd", id, owner, newEnd)
	ret0, _ := ret[0].(domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateEnd indicates an expected call of UpdateEnd.
func (mr *MockIReservationRepositoryMockRecorder) UpdateEnd(id, owner, newEnd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateEnd", reflect.TypeOf((*MockIReservationRepository)(nil).UpdateEnd), id, owner, newEnd)
}

// Window mocks base method.
func (m *MockIReservationRepository) Window(from, to time.Time) ([]domain.Reservation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Window", from, to)
	ret0, _ := ret[0].([]domain.Reservation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Window indicates an expected call of Window.
func (mr *MockIReservationRepositoryMockRecorder) Window(from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Window", reflect.TypeOf((*MockIReservationRepository)(nil).Window), from, to)
}
