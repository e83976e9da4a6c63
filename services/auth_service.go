package services

import (
	"time"

	"booking-lab/auth"
	"booking-lab/errors"
)

type IAuthService interface {
	Token(ownerID, secret string) (Token, error)
}

// AuthService exchanges the shared booking secret for a JWT bound to
// an owner id. There is no user store: one secret guards the room, and
// the token only decides WHO a booking belongs to, not whether the
// caller may book.
type AuthService struct {
	secretHash    string
	tokenDuration time.Duration
}

type Token string

func NewAuthService(secretHash string, tokenDuration time.Duration) IAuthService {
	return &AuthService{secretHash: secretHash, tokenDuration: tokenDuration}
}

func (s *AuthService) Token(ownerID, secret string) (Token, error) {
	if err := auth.ValidateTokenRequest(auth.TokenRequest{OwnerID: ownerID, Secret: secret}); err != nil {
		return "", errors.ErrBadCredential
	}

	match, err := auth.CompareSecret(secret, s.secretHash)
	if err != nil || !match {
		// Generic verdict, no detail about which part was wrong
		return "", errors.ErrBadCredential
	}

	token, err := auth.GenerateToken(ownerID, s.tokenDuration)
	if err != nil {
		return "", errors.ErrInvalidToken
	}

	return Token(token), nil
}
