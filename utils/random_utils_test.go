package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPinCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		pin := RandomPinCode()
		require.Len(t, pin, 5)

		value, err := strconv.Atoi(pin)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, 10000)
		assert.LessOrEqual(t, value, 99999)
	}
}

func TestRandomCredentialNumberVaries(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 50; i++ {
		seen[RandomCredentialNumber()] = true
	}

	// 50 draws from a 32-bit space collapsing to a handful of values would
	// mean a broken generator
	assert.Greater(t, len(seen), 45)
}
