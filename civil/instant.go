package civil

import "fmt"

// Instant is a point on the UTC time-line, measured in seconds and
// nanoseconds since 1970-01-01T00:00:00Z. Instants ignore leap seconds: every
// day is exactly 86,400 seconds.
type Instant struct {
	epochSecond int64
	nanoOfSecond uint32 // always in [0, 1e9)
}

// UnixEpoch is the instant 1970-01-01T00:00:00Z.
var UnixEpoch = Instant{}

// minEpochSecond and maxEpochSecond bound the epoch-second range reachable
// by a LocalDate within [MinYear, MaxYear].
const (
	minEpochSecond = int64(MinYear) * 366 * secondsPerDay
	maxEpochSecond = int64(MaxYear) * 366 * secondsPerDay
)

// InstantFromEpochSecond builds an Instant from a count of seconds since the
// epoch and a nanosecond adjustment, which need not be in [0, 1e9) — it is
// normalized, carrying overflow into epochSecond.
func InstantFromEpochSecond(epochSecond int64, nanoAdjustment int64) (Instant, error) {
	secs, err := addExact(epochSecond, floorDiv(nanoAdjustment, nanosPerSecond))
	if err != nil {
		return Instant{}, err
	}
	nanos := floorMod(nanoAdjustment, nanosPerSecond)
	return Instant{epochSecond: secs, nanoOfSecond: uint32(nanos)}, nil
}

// InstantFromEpochMilli builds an Instant from a count of milliseconds since
// the epoch.
func InstantFromEpochMilli(epochMilli int64) (Instant, error) {
	secs := floorDiv(epochMilli, 1000)
	millis := floorMod(epochMilli, 1000)
	return InstantFromEpochSecond(secs, millis*1_000_000)
}

// EpochSecond returns the number of seconds since 1970-01-01T00:00:00Z.
func (i Instant) EpochSecond() int64 { return i.epochSecond }

// NanoOfSecond returns the nanosecond-of-second component, in [0, 1e9).
func (i Instant) NanoOfSecond() uint32 { return i.nanoOfSecond }

// EpochMilli returns the number of milliseconds since the epoch, truncating
// sub-millisecond precision.
func (i Instant) EpochMilli() int64 {
	return i.epochSecond*1000 + int64(i.nanoOfSecond)/1_000_000
}

// Plus returns i + d.
func (i Instant) Plus(d Duration) (Instant, error) {
	secs, err := addExact(i.epochSecond, d.seconds)
	if err != nil {
		return Instant{}, err
	}
	return InstantFromEpochSecond(secs, int64(i.nanoOfSecond)+int64(d.nanos))
}

// Minus returns i - d.
func (i Instant) Minus(d Duration) (Instant, error) {
	return i.Plus(d.Negated())
}

// PlusSeconds returns i with seconds added.
func (i Instant) PlusSeconds(seconds int64) (Instant, error) {
	return i.Plus(DurationOfSeconds(seconds))
}

// PlusNanos returns i with nanoseconds added.
func (i Instant) PlusNanos(nanos int64) (Instant, error) {
	return i.Plus(DurationOfNanos(nanos))
}

// Until returns the Duration between i and other (other - i).
func (i Instant) Until(other Instant) Duration {
	secs := other.epochSecond - i.epochSecond
	nanos := int64(other.nanoOfSecond) - int64(i.nanoOfSecond)
	return NewDuration(secs, nanos)
}

// Compare returns -1, 0, or 1 as i is before, equal to, or after other.
func (i Instant) Compare(other Instant) int {
	if i.epochSecond != other.epochSecond {
		if i.epochSecond < other.epochSecond {
			return -1
		}
		return 1
	}
	if i.nanoOfSecond != other.nanoOfSecond {
		if i.nanoOfSecond < other.nanoOfSecond {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether i occurs strictly before other.
func (i Instant) Before(other Instant) bool { return i.Compare(other) < 0 }

// After reports whether i occurs strictly after other.
func (i Instant) After(other Instant) bool { return i.Compare(other) > 0 }

// Equal reports whether i and other are the same instant.
func (i Instant) Equal(other Instant) bool { return i == other }

// AtOffset pairs i with offset, producing the corresponding OffsetDateTime.
func (i Instant) AtOffset(offset ZoneOffset) OffsetDateTime {
	ldt := localDateTimeFromEpochSecond(i.epochSecond, i.nanoOfSecond, offset)
	return OffsetDateTime{local: ldt, offset: offset}
}

func (i Instant) String() string {
	return fmt.Sprintf("%d.%09ds since epoch", i.epochSecond, i.nanoOfSecond)
}
