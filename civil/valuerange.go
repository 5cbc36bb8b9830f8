package civil

import "fmt"

// ValueRange describes the valid range of values a Field may hold. Most
// fields have a fixed range (e.g. MonthOfYear is always 1..12), but some
// vary by context (e.g. DayOfMonth's maximum depends on the month and
// whether the year is a leap year) — for those, MinSmallest/MinLargest and
// MaxSmallest/MaxLargest bound the range across all contexts. Min/Max return
// the outer bounds (MinSmallest and MaxLargest); a ValueRange carries no
// per-value context.
type ValueRange struct {
	MinSmallest int64
	MinLargest  int64
	MaxSmallest int64
	MaxLargest  int64
}

// FixedRange builds a ValueRange whose min and max never vary.
func FixedRange(min, max int64) ValueRange {
	return ValueRange{MinSmallest: min, MinLargest: min, MaxSmallest: max, MaxLargest: max}
}

// VariableMaxRange builds a ValueRange with a fixed minimum but a maximum
// that varies between maxSmallest and maxLargest (e.g. DayOfMonth: 1..28..31).
func VariableMaxRange(min, maxSmallest, maxLargest int64) ValueRange {
	return ValueRange{MinSmallest: min, MinLargest: min, MaxSmallest: maxSmallest, MaxLargest: maxLargest}
}

// Min returns the smallest minimum, MinSmallest.
func (r ValueRange) Min() int64 { return r.MinSmallest }

// Max returns the largest maximum, MaxLargest.
func (r ValueRange) Max() int64 { return r.MaxLargest }

// IsValidValue reports whether v falls within [Min, Max] for this range.
func (r ValueRange) IsValidValue(v int64) bool { return v >= r.Min() && v <= r.Max() }

// CheckValue validates v against the range, returning a ValueOutOfRangeError
// naming field if out of bounds.
func (r ValueRange) CheckValue(field Field, v int64) error {
	if !r.IsValidValue(v) {
		return &ValueOutOfRangeError{Field: field.String(), Value: v, Min: r.Min(), Max: r.Max()}
	}
	return nil
}

func (r ValueRange) String() string {
	if r.MinSmallest == r.MinLargest && r.MaxSmallest == r.MaxLargest {
		return fmt.Sprintf("%d - %d", r.MinSmallest, r.MaxLargest)
	}
	return fmt.Sprintf("%d/%d - %d/%d", r.MinSmallest, r.MinLargest, r.MaxSmallest, r.MaxLargest)
}
