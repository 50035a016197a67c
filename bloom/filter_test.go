package bloom_test

import (
	"testing"

	"github.com/CarlosDimare/soccerwiki/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URLs test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)

		f.Add("https://es.soccerwiki.org/squad.php?clubid=290")

		assert.True(t, f.Test("https://es.soccerwiki.org/squad.php?clubid=290"))
	})

	t.Run("unseen URLs test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)

		f.Add("https://es.soccerwiki.org/squad.php?clubid=290")

		assert.False(t, f.Test("https://es.soccerwiki.org/squad.php?clubid=291"))
	})

	t.Run("estimated count tracks additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)

		assert.Zero(t, f.EstimatedCount())

		f.Add("https://es.soccerwiki.org/squad.php?clubid=1")
		f.Add("https://es.soccerwiki.org/squad.php?clubid=2")

		assert.NotZero(t, f.EstimatedCount())
	})
}
