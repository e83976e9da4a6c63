package errors

import (
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates the reservation error taxonomy into gRPC
// status codes so the chat adapter can decide what is retryable.
// Unknown errors are deliberately reported as Internal without detail.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	var conflict *ConflictError
	if stderrors.As(err, &conflict) {
		return status.Error(codes.AlreadyExists, conflict.Error())
	}

	switch {
	case stderrors.Is(err, ErrMalformedRange), stderrors.Is(err, ErrPastRange),
		stderrors.Is(err, ErrInvalidCommand):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrNotOwner):
		return status.Error(codes.PermissionDenied, err.Error())
	case stderrors.Is(err, ErrAlreadyCancelled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case stderrors.Is(err, ErrStoreUnavailable), stderrors.Is(err, ErrSlowDisplay):
		return status.Error(codes.Unavailable, err.Error())
	case stderrors.Is(err, ErrInvalidToken), stderrors.Is(err, ErrBadCredential):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
