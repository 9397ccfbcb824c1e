package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "Valid visa test number", number: "4111111111111111", valid: true},
		{name: "Broken checksum", number: "4111111111111112", valid: false},
		{name: "Too short", number: "411111111111", valid: false},
		{name: "Letters", number: "4111a11111111111", valid: false},
		{name: "Empty", number: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCardNumber(tt.number))
		})
	}
}

func TestIsLastDigits(t *testing.T) {
	assert.True(t, IsLastDigits("0443"))
	assert.False(t, IsLastDigits("443"))
	assert.False(t, IsLastDigits("04a3"))
	assert.False(t, IsLastDigits("04431"))
}

func TestGenerateCardNumber(t *testing.T) {
	seen := make(map[string]struct{})
	digits := make(map[byte]struct{})
	for i := 0; i < 200; i++ {
		number, err := GenerateCardNumber()
		require.NoError(t, err)
		assert.True(t, IsCardNumber(number), number)
		seen[number] = struct{}{}
		for j := 0; j < CardNumberLength-1; j++ {
			digits[number[j]] = struct{}{}
		}
	}
	assert.Greater(t, len(seen), 190)
	assert.Len(t, digits, 10)
}
