package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"10", "10", false},
		{" 12.34 ", "12.34", false},
		{"12,34", "12.34", false},
		{"-5", "-5", false},
		{"", "", true},
		{"1.234,56", "", true},
		{"dez", "", true},
		{"0.005", "", true},
		{"1e20", "", true},
		{"99999999999999", "", true},
		{"-1000000000000", "", true},
		{"99999999999.99", "99999999999.99", false},
		{"1.50", "1.5", false},
		{"1e2", "100", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseAmount("amount", tt.raw)
			if tt.wantErr {
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseOptionalAmount(t *testing.T) {
	got, err := parseOptionalAmount("income", "  ")
	require.NoError(t, err)
	assert.False(t, got.Valid)

	got, err = parseOptionalAmount("income", "2500")
	require.NoError(t, err)
	assert.True(t, got.Valid)

	_, err = parseOptionalAmount("income", "x")
	assert.True(t, IsValidation(err))
}

func TestParseQuantity(t *testing.T) {
	got, err := parseQuantity("quantity", "2,125")
	require.NoError(t, err)
	assert.Equal(t, "2.125", got.String())

	_, err = parseQuantity("quantity", "0.0005")
	assert.True(t, IsValidation(err))

	_, err = parseQuantity("quantity", "10000000000")
	assert.True(t, IsValidation(err))
}
