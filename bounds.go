package soccerwiki

// NumericField identifies a numeric field subject to plausibility gating.
type NumericField string

// Numeric fields with declared plausible ranges.
const (
	FieldAge    NumericField = "age"
	FieldHeight NumericField = "height"
	FieldWeight NumericField = "weight"
	FieldRating NumericField = "rating"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Bounds is a named profile of plausible ranges for numeric fields.
// A value outside its range is treated as "not found", letting a later,
// lower-priority strategy attempt the field again; it is never an error.
type Bounds struct {
	Age    Range
	Height Range // cm
	Weight Range // kg
	Rating Range
}

// Accept reports whether n is plausible for the given field.
func (b Bounds) Accept(field NumericField, n int) bool {
	switch field {
	case FieldAge:
		return b.Age.Contains(n)
	case FieldHeight:
		return b.Height.Contains(n)
	case FieldWeight:
		return b.Weight.Contains(n)
	case FieldRating:
		return b.Rating.Contains(n)
	}
	return false
}

// RosterBounds returns the ranges the roster assembler gates with.
//
// The roster and profile assemblers historically use slightly different
// bounds for height, weight and rating. The intended correct values are
// undocumented, so both profiles are preserved as-is rather than unified:
// unifying would silently change which scraped values are accepted.
func RosterBounds() Bounds {
	return Bounds{
		Age:    Range{Min: 15, Max: 45},
		Height: Range{Min: 150, Max: 220},
		Weight: Range{Min: 50, Max: 120},
		Rating: Range{Min: 1, Max: 100},
	}
}

// ProfileBounds returns the ranges the player-profile assembler gates with.
func ProfileBounds() Bounds {
	return Bounds{
		Age:    Range{Min: 15, Max: 45},
		Height: Range{Min: 140, Max: 220},
		Weight: Range{Min: 40, Max: 150},
		Rating: Range{Min: 1, Max: 99},
	}
}
