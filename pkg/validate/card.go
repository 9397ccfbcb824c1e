package validate

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ShiraazMoollatjie/goluhn"
)

const CardNumberLength = 16

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// GenerateCardNumber returns a random 16-digit number with a valid Luhn check digit.
func GenerateCardNumber() (string, error) {
	body := make([]byte, CardNumberLength-1)
	for i := range body {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("can't generate card number: %w", err)
		}
		body[i] = byte('0' + n.Int64())
	}
	_, number, err := goluhn.Calculate(string(body))
	if err != nil || len(number) != CardNumberLength {
		return "", fmt.Errorf("can't calculate check digit for %s", body)
	}
	return number, nil
}

// IsCardNumber accepts 16 digits passing the Luhn check.
func IsCardNumber(s string) bool {
	return len(s) == CardNumberLength && isDigits(s) && IsLuhn(s)
}

// IsLastDigits accepts exactly the 4 trailing digits of a card number.
func IsLastDigits(s string) bool {
	return len(s) == 4 && isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
