package civil

import "math"

// isLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 4, except centuries, except every fourth century.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// monthLengths holds the number of days in each month of a non-leap year,
// indexed 1..12 (index 0 is unused so month can index directly).
var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the length of month in year, honoring February in
// leap years.
func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// daysSinceStartOfYear holds the cumulative day count at the start of each
// month of a non-leap year, indexed 1..12.
var daysSinceStartOfYear = [13]int64{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// floorDiv returns the floor of x/y (mathematical floor division, not
// truncating division). y must be positive.
func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// floorMod returns x modulo y using floor division, so the result always has
// the same sign as y (or is zero). y must be positive.
func floorMod(x, y int64) int64 {
	return x - floorDiv(x, y)*y
}

// addExact adds a and b, returning an error if the result overflows int64.
func addExact(a, b int64) (int64, error) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, &ArithmeticOverflowError{Op: "add"}
	}
	return r, nil
}

// subExact subtracts b from a, returning an error if the result overflows int64.
func subExact(a, b int64) (int64, error) {
	if b == math.MinInt64 {
		return addExact(a, math.MaxInt64)
	}
	return addExact(a, -b)
}

// mulExact multiplies a and b, returning an error if the result overflows int64.
func mulExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) {
		return 0, &ArithmeticOverflowError{Op: "multiply"}
	}
	return r, nil
}

// toIntExact narrows a safely, returning an error if it does not fit an int32
// range appropriate for year fields (this package caps years at ±999,999,999).
func toIntExact(v int64) (int, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, &ArithmeticOverflowError{Op: "narrow"}
	}
	return int(v), nil
}
