package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000), "draw %d diverged", i)
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.IntN(1 << 30) != b.IntN(1<<30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds produced identical sequences")
}

func TestIntNRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := src.IntN(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCrypto(t *testing.T) {
	src, err := Crypto()
	require.NoError(t, err)
	require.NotNil(t, src)

	v := src.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}
