package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhonePlausible(t *testing.T) {
	valid := []string{
		"11988887777",
		"(11) 98888-7777",
		"+55 11 98888-7777",
		"11 3456.7890",
	}
	for _, p := range valid {
		assert.True(t, IsPhonePlausible(p), p)
	}

	invalid := []string{
		"",
		"1234567",          // poucos dígitos
		"1234567890123456", // dígitos demais
		"telefone",
		"11 98888-777x",
	}
	for _, p := range invalid {
		assert.False(t, IsPhonePlausible(p), p)
	}
}
