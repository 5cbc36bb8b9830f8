package civil

import "fmt"

const nanosPerSecond = 1_000_000_000

// Duration is a signed elapsed amount of time, measured in seconds and
// nanoseconds. Unlike the standard library's time.Duration (a single
// nanosecond count that overflows at about 292 years), Duration stores
// seconds and nanoseconds separately so it can represent the full range of
// differences between two Instants.
//
// Nanos is always normalized into [0, 1e9); the sign of the duration lives
// entirely in Seconds. A duration of -0.5s is therefore {Seconds: -1, Nanos:
// 500_000_000}, not {Seconds: 0, Nanos: -500_000_000}.
type Duration struct {
	seconds int64
	nanos   int32 // always in [0, nanosPerSecond)
}

// Zero is the zero-length duration.
var Zero = Duration{}

// NewDuration builds a Duration from seconds and nanos, normalizing nanos
// into [0, 1e9) and carrying the adjustment into seconds.
func NewDuration(seconds int64, nanos int64) Duration {
	s := seconds + floorDiv(nanos, nanosPerSecond)
	n := floorMod(nanos, nanosPerSecond)
	return Duration{seconds: s, nanos: int32(n)}
}

// DurationOfSeconds returns a Duration of the given whole seconds.
func DurationOfSeconds(seconds int64) Duration { return Duration{seconds: seconds} }

// DurationOfMinutes returns a Duration of the given whole minutes.
func DurationOfMinutes(minutes int64) Duration { return DurationOfSeconds(minutes * 60) }

// DurationOfHours returns a Duration of the given whole hours.
func DurationOfHours(hours int64) Duration { return DurationOfSeconds(hours * 3600) }

// DurationOfDays returns a Duration of the given whole 24-hour days.
func DurationOfDays(days int64) Duration { return DurationOfSeconds(days * 86400) }

// DurationOfMillis returns a Duration of the given whole milliseconds.
func DurationOfMillis(millis int64) Duration {
	return NewDuration(0, millis*1_000_000)
}

// DurationOfNanos returns a Duration of the given whole nanoseconds.
func DurationOfNanos(nanos int64) Duration {
	return NewDuration(0, nanos)
}

// Seconds returns the whole-second component of the duration.
func (d Duration) Seconds() int64 { return d.seconds }

// Nanos returns the nanosecond-of-second component, always in [0, 1e9).
func (d Duration) Nanos() int32 { return d.nanos }

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.seconds == 0 && d.nanos == 0 }

// IsNegative reports whether the duration is less than zero.
func (d Duration) IsNegative() bool { return d.seconds < 0 }

// Plus returns d + other, which may return an ArithmeticOverflowError.
func (d Duration) Plus(other Duration) (Duration, error) {
	if other.IsZero() {
		return d, nil
	}
	secs, err := addExact(d.seconds, other.seconds)
	if err != nil {
		return Duration{}, err
	}
	nanos := int64(d.nanos) + int64(other.nanos)
	secs, err = addExact(secs, floorDiv(nanos, nanosPerSecond))
	if err != nil {
		return Duration{}, err
	}
	return Duration{seconds: secs, nanos: int32(floorMod(nanos, nanosPerSecond))}, nil
}

// Minus returns d - other.
func (d Duration) Minus(other Duration) (Duration, error) {
	if other == d {
		return Zero, nil
	}
	return d.Plus(other.Negated())
}

// PlusSeconds returns d with seconds added.
func (d Duration) PlusSeconds(seconds int64) (Duration, error) {
	return d.Plus(DurationOfSeconds(seconds))
}

// PlusMinutes returns d with minutes added.
func (d Duration) PlusMinutes(minutes int64) (Duration, error) {
	return d.Plus(DurationOfMinutes(minutes))
}

// PlusHours returns d with hours added.
func (d Duration) PlusHours(hours int64) (Duration, error) {
	return d.Plus(DurationOfHours(hours))
}

// PlusMillis returns d with milliseconds added.
func (d Duration) PlusMillis(millis int64) (Duration, error) {
	return d.Plus(DurationOfMillis(millis))
}

// PlusNanos returns d with nanoseconds added.
func (d Duration) PlusNanos(nanos int64) (Duration, error) {
	return d.Plus(DurationOfNanos(nanos))
}

// Negated returns -d. Negating the minimum representable duration overflows;
// in practice the seconds range (int64) makes this unreachable from any
// duration this package can construct, so Negated does not return an error.
func (d Duration) Negated() Duration {
	if d.nanos == 0 {
		return Duration{seconds: -d.seconds}
	}
	return Duration{seconds: -d.seconds - 1, nanos: nanosPerSecond - d.nanos}
}

// Abs returns the absolute value of d.
func (d Duration) Abs() Duration {
	if !d.IsNegative() {
		return d
	}
	return d.Negated()
}

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater than other.
func (d Duration) Compare(other Duration) int {
	if d.seconds != other.seconds {
		if d.seconds < other.seconds {
			return -1
		}
		return 1
	}
	if d.nanos != other.nanos {
		if d.nanos < other.nanos {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether d and other represent the same duration.
func (d Duration) Equal(other Duration) bool { return d == other }

// String renders an ISO-8601 duration, e.g. "PT1H30M", matching the
// presentation java.time.Duration#toString uses.
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	secs := d.seconds
	nanos := d.nanos
	effectiveSecs := secs
	if secs < 0 && nanos > 0 {
		effectiveSecs++
	}
	hours := effectiveSecs / 3600
	minutes := (effectiveSecs % 3600) / 60
	seconds := effectiveSecs % 60

	out := "PT"
	if hours != 0 {
		out += fmt.Sprintf("%dH", hours)
	}
	if minutes != 0 {
		out += fmt.Sprintf("%dM", minutes)
	}
	if seconds == 0 && nanos == 0 && (hours != 0 || minutes != 0) {
		return out
	}
	if seconds == 0 && nanos != 0 && secs < 0 {
		out += "-0"
	} else {
		out += fmt.Sprintf("%d", seconds)
	}
	if nanos != 0 {
		if secs < 0 {
			nanos = nanosPerSecond - nanos
		}
		out += fmt.Sprintf(".%09d", nanos)
		out = trimTrailingZeros(out)
	}
	return out + "S"
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}
