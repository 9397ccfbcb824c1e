package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

//go:generate mockgen -source=code.go -destination=mock_code.go -package=auth

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"
	codeHalf    = 4
)

type CodeGeneratorInterface interface {
	VerificationCode() (string, error)
	ResetToken() string
}

type CodeGenerator struct{}

// VerificationCode returns 4 uppercase letters and 4 digits in random order.
func (g *CodeGenerator) VerificationCode() (string, error) {
	code := make([]byte, 0, codeHalf*2)
	for _, alphabet := range []string{codeLetters, codeDigits} {
		for i := 0; i < codeHalf; i++ {
			n, err := randInt(len(alphabet))
			if err != nil {
				return "", err
			}
			code = append(code, alphabet[n])
		}
	}

	for i := len(code) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		code[i], code[j] = code[j], code[i]
	}
	return string(code), nil
}

// ResetToken returns a URL-safe random token.
func (g *CodeGenerator) ResetToken() string {
	return uuid.NewString()
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
