package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource returns a queued sequence of values, then repeats the last.
type fixedSource struct {
	values []int
	idx    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.values[f.idx]
	if f.idx < len(f.values)-1 {
		f.idx++
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func TestCryptoSource_IntnRange(t *testing.T) {
	src := NewCryptoSource()
	for i := 0; i < 100; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_IntnPanicsOnNonPositive(t *testing.T) {
	src := NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestPercentChance_Bounds(t *testing.T) {
	src := NewCryptoSource()
	assert.False(t, PercentChance(src, 0))
	assert.False(t, PercentChance(src, -5))
	assert.True(t, PercentChance(src, 100))
	assert.True(t, PercentChance(src, 150))
}

func TestPercentChance_RollAgainstThreshold(t *testing.T) {
	// Intn(100) == 49 means a roll of 50: success at pct >= 50.
	src := &fixedSource{values: []int{49}}
	assert.True(t, PercentChance(src, 50))

	src = &fixedSource{values: []int{50}}
	assert.False(t, PercentChance(src, 50))
}
