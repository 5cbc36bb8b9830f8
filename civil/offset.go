package civil

import "fmt"

const maxOffsetSeconds = 18 * 3600

// ZoneOffset is a fixed signed displacement from UTC, in whole seconds,
// bounded by ±18:00.
type ZoneOffset struct {
	totalSeconds int32
}

// UTC is the zero offset.
var UTC = ZoneOffset{}

// ZoneOffsetOfTotalSeconds builds a ZoneOffset from a total second count.
func ZoneOffsetOfTotalSeconds(totalSeconds int) (ZoneOffset, error) {
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return ZoneOffset{}, &ValueOutOfRangeError{Field: "OFFSET_SECONDS", Value: int64(totalSeconds), Min: -maxOffsetSeconds, Max: maxOffsetSeconds}
	}
	return ZoneOffset{totalSeconds: int32(totalSeconds)}, nil
}

// ZoneOffsetOfHours builds a ZoneOffset of whole hours.
func ZoneOffsetOfHours(hours int) (ZoneOffset, error) {
	return ZoneOffsetOfTotalSeconds(hours * 3600)
}

// ZoneOffsetOfHoursMinutes builds a ZoneOffset from hours and minutes, which
// must share a sign (or minutes may be zero).
func ZoneOffsetOfHoursMinutes(hours, minutes int) (ZoneOffset, error) {
	return ZoneOffsetOfTotalSeconds(hours*3600 + minutes*60)
}

// ZoneOffsetOfHoursMinutesSeconds builds a ZoneOffset from hours, minutes and
// seconds, which must share a sign (or be zero).
func ZoneOffsetOfHoursMinutesSeconds(hours, minutes, seconds int) (ZoneOffset, error) {
	return ZoneOffsetOfTotalSeconds(hours*3600 + minutes*60 + seconds)
}

// TotalSeconds returns the offset's total displacement from UTC, in seconds.
// Positive values are east of UTC.
func (o ZoneOffset) TotalSeconds() int { return int(o.totalSeconds) }

// ID returns the canonical identifier: "Z" for zero, otherwise
// "±HH:MM" or "±HH:MM:SS" (seconds included only when nonzero).
func (o ZoneOffset) ID() string {
	if o.totalSeconds == 0 {
		return "Z"
	}
	total := int(o.totalSeconds)
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60
	if seconds == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

// Compare returns -1, 0, or 1 as o is less than, equal to, or greater than
// other, ordering by total seconds ascending.
func (o ZoneOffset) Compare(other ZoneOffset) int {
	switch {
	case o.totalSeconds < other.totalSeconds:
		return -1
	case o.totalSeconds > other.totalSeconds:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two offsets have the same total seconds.
func (o ZoneOffset) Equal(other ZoneOffset) bool { return o.totalSeconds == other.totalSeconds }

func (o ZoneOffset) String() string { return o.ID() }

// ParseZoneOffset parses a canonical offset ID as produced by ID.
func ParseZoneOffset(id string) (ZoneOffset, error) {
	if id == "Z" || id == "z" {
		return UTC, nil
	}
	fail := func(msg string) (ZoneOffset, error) {
		return ZoneOffset{}, &ParseError{Input: id, Message: msg}
	}
	if len(id) < 3 {
		return fail("too short")
	}
	sign := id[0]
	if sign != '+' && sign != '-' {
		return fail("must start with + or - or be Z")
	}
	var hours, minutes, seconds int
	n, err := fmt.Sscanf(id[1:], "%02d:%02d:%02d", &hours, &minutes, &seconds)
	if err != nil || n < 2 {
		n2, err2 := fmt.Sscanf(id[1:], "%02d:%02d", &hours, &minutes)
		if err2 != nil || n2 != 2 {
			return fail("expected ±HH:MM[:SS]")
		}
	}
	total := hours*3600 + minutes*60 + seconds
	if sign == '-' {
		total = -total
	}
	return ZoneOffsetOfTotalSeconds(total)
}
