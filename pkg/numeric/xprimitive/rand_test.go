package xprimitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRand_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := NewRand(42), NewRand(42)
	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, NewRand(1).Uint64(), NewRand(2).Uint64())
}

func TestNewSeed(t *testing.T) {
	t.Parallel()

	s1, err := NewSeed()
	require.NoError(t, err)
	s2, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DeriveSeed(7, "price", "0"), DeriveSeed(7, "price", "0"))
	assert.NotEqual(t, DeriveSeed(7, "price", "0"), DeriveSeed(7, "price", "1"))
	assert.NotEqual(t, DeriveSeed(7, "price"), DeriveSeed(8, "price"))
	assert.NotEqual(t, DeriveSeed(7, "ab", "c"), DeriveSeed(7, "a", "bc"))
	assert.NotEqual(t, DeriveSeed(7), DeriveSeed(7, ""))
}
