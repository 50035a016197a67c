package scrape_test

import (
	"testing"

	"github.com/CarlosDimare/soccerwiki/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops targets in insertion order", func(t *testing.T) {
		t.Parallel()

		f := scrape.NewFrontier(100, 0.01)

		require.True(t, f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=1", Name: "A"}))
		require.True(t, f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=2", Name: "B"}))
		assert.Equal(t, 2, f.Len())

		first, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "A", first.Name)

		second, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "B", second.Name)

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("rejects a URL pushed twice", func(t *testing.T) {
		t.Parallel()

		f := scrape.NewFrontier(100, 0.01)

		assert.True(t, f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=1"}))
		assert.False(t, f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=1"}))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("fragments do not defeat deduplication", func(t *testing.T) {
		t.Parallel()

		f := scrape.NewFrontier(100, 0.01)

		assert.True(t, f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=1"}))
		assert.False(t, f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=1#roster"}))
	})

	t.Run("seen reports pushed URLs", func(t *testing.T) {
		t.Parallel()

		f := scrape.NewFrontier(100, 0.01)

		f.Push(scrape.Target{URL: "https://example.com/squad.php?clubid=1"})

		assert.True(t, f.Seen("https://example.com/squad.php?clubid=1"))
		assert.False(t, f.Seen("https://example.com/squad.php?clubid=2"))
	})
}
