package auth

import (
	"unicode"

	"github.com/go-playground/validator/v10"

	"booking-lab/errors"
)

var validate = validator.New()

// TokenRequest is the credential exchange payload. The owner id is the
// chat handle reservations are attributed to.
type TokenRequest struct {
	OwnerID string `validate:"required,max=64"`
	Secret  string `validate:"required,min=12,max=72"`
}

func ValidateTokenRequest(req TokenRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	return nil
}

// ValidateNewSecret enforces complexity when provisioning a new shared
// secret. Only the hashing tool calls this; token exchange accepts
// whatever hash the configuration carries.
func ValidateNewSecret(secret string) error {
	if len(secret) < 12 || len(secret) > 72 {
		return errors.ErrBadCredential
	}
	if !isSecretComplex(secret) {
		return errors.ErrBadCredential
	}
	return nil
}

func isSecretComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
