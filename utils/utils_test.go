package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := map[string]string{
		"+919876543210":      "+919876543210",
		"+91 98765-43210":    "+919876543210",
		"  (987) 654-3210  ": "9876543210",
		"":                   "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizePhoneNumber(input), "input %q", input)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{
		"+919876543210",
		"+1 987 654 3210",
		"987654321",
		"999999999999999",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhoneNumber(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"12345",
		"+91abcdefghi",
		"99999999999999999",
		"phone",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhoneNumber(phone), "expected %q to be invalid", phone)
	}
}
