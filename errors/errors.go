package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrOnlyCensoredFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords        = fmt.Errorf("no words have been found")

	ErrInvalidCommand   = fmt.Errorf("malformed reservation command")
	ErrMalformedRange   = fmt.Errorf("reservation start must be strictly before end")
	ErrPastRange        = fmt.Errorf("reservation ends in the past")
	ErrDuplicateID      = fmt.Errorf("reservation id already exists")
	ErrNotFound         = fmt.Errorf("reservation not found")
	ErrNotOwner         = fmt.Errorf("reservation belongs to another owner")
	ErrAlreadyCancelled = fmt.Errorf("reservation is already cancelled")
	ErrStoreUnavailable = fmt.Errorf("reservation store unavailable")
	ErrSlowDisplay      = fmt.Errorf("display client cannot keep up")
	ErrInvalidToken     = fmt.Errorf("invalid or expired token")
	ErrBadCredential    = fmt.Errorf("unknown client or wrong credential")
)
