package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"booking-lab/auth"
	"booking-lab/errors"
)

func TestAuthService_Token(t *testing.T) {
	req := require.New(t)

	hash, err := auth.HashSecret("ComplexPass123!")
	req.NoError(err)
	service := NewAuthService(hash, time.Hour)

	// Given the right secret
	token, err := service.Token("U123", "ComplexPass123!")
	req.NoError(err)

	claims, err := auth.ValidateToken(string(token))
	req.NoError(err)
	req.Equal("U123", claims.OwnerID)

	// Given the wrong secret
	_, err = service.Token("U123", "WrongSecret123!")
	req.ErrorIs(err, errors.ErrBadCredential)

	// Given a missing owner
	_, err = service.Token("", "ComplexPass123!")
	req.ErrorIs(err, errors.ErrBadCredential)
}
