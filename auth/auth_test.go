package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	secret := "MonSecretTr0pSûr!"

	hash, err := HashSecret(secret)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := CompareSecret(secret, hash)
	req.NoError(err)
	req.True(match)

	match, err = CompareSecret("MauvaisSecret", hash)
	req.NoError(err)
	req.False(match)
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("U123", time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("U123", claims.OwnerID)

	// Expired tokens are rejected
	expired, err := GenerateToken("U123", -time.Minute)
	req.NoError(err)
	_, err = ValidateToken(expired)
	req.Error(err)
}

func TestSecretValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"Valid secret", "ComplexPass123!", false},
		{"Too short", "Short1!", true},
		{"Missing digit", "NoDigitSecret!", true},
		{"Missing special char", "NoSpecialChar123", true},
		{"Missing uppercase", "nouppercase123!", true},
		{"Too long (edge case)", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewSecret(tt.secret)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRequestValidation(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateTokenRequest(TokenRequest{OwnerID: "U123", Secret: "ComplexPass123!"}))
	req.Error(ValidateTokenRequest(TokenRequest{OwnerID: "", Secret: "ComplexPass123!"}))
	req.Error(ValidateTokenRequest(TokenRequest{OwnerID: "U123", Secret: "short"}))
	req.Error(ValidateTokenRequest(TokenRequest{OwnerID: strings.Repeat("U", 65), Secret: "ComplexPass123!"}))
}

// BenchmarkHashSecret measures the CPU/RAM impact of Argon2id hashing
func BenchmarkHashSecret(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashSecret("A-very-long-and-complex-secret-for-bench-123!")
	}
}
