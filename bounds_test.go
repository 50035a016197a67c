package soccerwiki_test

import (
	"testing"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/stretchr/testify/assert"
)

func TestBounds_Accept(t *testing.T) {
	t.Parallel()

	t.Run("roster ranges are inclusive at both ends", func(t *testing.T) {
		t.Parallel()

		b := soccerwiki.RosterBounds()

		assert.True(t, b.Accept(soccerwiki.FieldAge, 15))
		assert.True(t, b.Accept(soccerwiki.FieldAge, 45))
		assert.False(t, b.Accept(soccerwiki.FieldAge, 14))
		assert.False(t, b.Accept(soccerwiki.FieldAge, 46))

		assert.True(t, b.Accept(soccerwiki.FieldHeight, 150))
		assert.True(t, b.Accept(soccerwiki.FieldHeight, 220))
		assert.False(t, b.Accept(soccerwiki.FieldHeight, 149))

		assert.True(t, b.Accept(soccerwiki.FieldWeight, 50))
		assert.True(t, b.Accept(soccerwiki.FieldWeight, 120))
		assert.False(t, b.Accept(soccerwiki.FieldWeight, 121))

		assert.True(t, b.Accept(soccerwiki.FieldRating, 100))
		assert.False(t, b.Accept(soccerwiki.FieldRating, 0))
	})

	t.Run("profile ranges differ from roster ranges", func(t *testing.T) {
		t.Parallel()

		b := soccerwiki.ProfileBounds()

		// Wider than the roster's at the bottom.
		assert.True(t, b.Accept(soccerwiki.FieldHeight, 140))
		assert.True(t, b.Accept(soccerwiki.FieldWeight, 40))
		assert.True(t, b.Accept(soccerwiki.FieldWeight, 150))

		// Narrower than the roster's at the top.
		assert.False(t, b.Accept(soccerwiki.FieldRating, 100))
		assert.True(t, b.Accept(soccerwiki.FieldRating, 99))
	})

	t.Run("unknown field is never plausible", func(t *testing.T) {
		t.Parallel()

		b := soccerwiki.RosterBounds()

		assert.False(t, b.Accept(soccerwiki.NumericField("shoe_size"), 42))
	})
}
