package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFolio_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		folio := GenerateFolio()
		assert.Regexp(t, `^ADS[0-9A-Z]{9}$`, folio)
	}
}

func TestGenerateFolio_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateFolio()] = true
	}
	// 50 draws from a 36^9 space colliding would mean broken entropy
	assert.Greater(t, len(seen), 1)
}

func TestIsValidFolio(t *testing.T) {
	assert.True(t, IsValidFolio("ADS012ABC9XZ"))
	assert.True(t, IsValidFolio(GenerateFolio()))

	assert.False(t, IsValidFolio(""))
	assert.False(t, IsValidFolio("ADS12345678"))    // too short
	assert.False(t, IsValidFolio("ADS1234567890")) // too long
	assert.False(t, IsValidFolio("XYZ012ABC9XZ"))  // wrong prefix
	assert.False(t, IsValidFolio("ADS012abc9xz"))  // lowercase
	assert.False(t, IsValidFolio("ADS012ABC9X-"))  // symbol
}
