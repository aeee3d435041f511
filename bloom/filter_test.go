package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/rake/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Add(t *testing.T) {
	t.Parallel()

	t.Run("reports first sighting only", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.0001)

		assert.True(t, f.Add("abstract.txt"))
		assert.False(t, f.Add("abstract.txt"))
		assert.True(t, f.Add("other.txt"))
	})

	t.Run("ignores URL fragments", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.0001)

		assert.True(t, f.Add("https://example.com/paper#abstract"))
		assert.False(t, f.Add("https://example.com/paper"))
		assert.True(t, f.Test("https://example.com/paper#conclusion"))
	})

	t.Run("keeps hash characters in file names", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.0001)

		assert.True(t, f.Add("notes#1.txt"))
		assert.True(t, f.Add("notes#2.txt"))
	})

	t.Run("zero capacity still works", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(0, 0.0001)

		assert.True(t, f.Add("-"))
		assert.False(t, f.Add("-"))
	})
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("a.txt")
	f.Add("b.txt")
	f.Add("c.txt")
	f.Add("c.txt")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range numItems {
		f.Add(fmt.Sprintf("https://example.com/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("https://example.com/absent/%d", i)) {
			falsePositives++
		}
	}

	// Allow 3x headroom over the configured rate.
	assert.Less(t, float64(falsePositives)/testProbes, fpRate*3)
}
