package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

type JWTServiceInterface interface {
	GenerateJWT(subject string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	TTL() time.Duration
}

// JWTConfig carries the session signing settings. It is built once from the
// application config and never mutated.
type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
	Issuer    string
}

var ErrInvalidToken = errors.New("invalid token")

// Claims identify the session owner by email in the standard subject claim.
type Claims struct {
	jwt.StandardClaims
}

type JWTService struct {
	cfg JWTConfig
}

func NewJWTService(cfg JWTConfig) *JWTService {
	return &JWTService{cfg: cfg}
}

func (s *JWTService) TTL() time.Duration {
	return s.cfg.TTL
}

func (s *JWTService) GenerateJWT(subject string, expirationTime time.Time) (string, error) {
	if subject == "" {
		return "", errors.New("token subject cannot be empty")
	}
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    s.cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Issuer != s.cfg.Issuer {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
