package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

var testJWTConfig = JWTConfig{
	SecretKey: "test-secret",
	TTL:       45 * time.Minute,
	Issuer:    "bankapi",
}

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testJWTConfig)

	tests := []struct {
		name           string
		subject        string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			subject:        "user@example.com",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			subject:        "user@example.com",
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
		{
			name:           "Empty subject",
			subject:        "",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.subject, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testJWTConfig)

	tests := []struct {
		name            string
		tokenString     string
		setup           func() string
		expectError     bool
		expectedSubject string
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("user@example.com", time.Now().Add(time.Hour))
				return token
			},
			expectError:     false,
			expectedSubject: "user@example.com",
		},
		{
			name:        "Malformed Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("user@example.com", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another key",
			setup: func() string {
				other := NewJWTService(JWTConfig{SecretKey: "other", TTL: time.Hour, Issuer: "bankapi"})
				token, _ := other.GenerateJWT("user@example.com", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				other := NewJWTService(JWTConfig{SecretKey: "test-secret", TTL: time.Hour, Issuer: "someone-else"})
				token, _ := other.GenerateJWT("user@example.com", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing subject",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "bankapi",
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Unsigned token",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.StandardClaims{
					Subject:   "user@example.com",
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "bankapi",
				})
				signedToken, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSubject, claims.Subject)
			}
		})
	}
}

func TestTTL(t *testing.T) {
	assert.Equal(t, 45*time.Minute, NewJWTService(testJWTConfig).TTL())
}
