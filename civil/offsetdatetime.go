package civil

// OffsetDateTime is a date and time-of-day with a fixed UTC offset, such as
// "2008-06-30T13:45:30+02:00" — a LocalDateTime paired with a ZoneOffset,
// unambiguously locating an Instant.
type OffsetDateTime struct {
	local  LocalDateTime
	offset ZoneOffset
}

// NewOffsetDateTime pairs local with offset.
func NewOffsetDateTime(local LocalDateTime, offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{local: local, offset: offset}
}

// LocalDateTime returns the local date-time component.
func (o OffsetDateTime) LocalDateTime() LocalDateTime { return o.local }

// Date returns the date component.
func (o OffsetDateTime) Date() LocalDate { return o.local.Date() }

// Time returns the time-of-day component.
func (o OffsetDateTime) Time() LocalTime { return o.local.Time() }

// Offset returns the UTC offset.
func (o OffsetDateTime) Offset() ZoneOffset { return o.offset }

// ToInstant converts o to the Instant it denotes.
func (o OffsetDateTime) ToInstant() Instant {
	epochSecond := o.local.ToEpochSecond(o.offset)
	i, err := InstantFromEpochSecond(epochSecond, int64(o.local.Time().Nano()))
	if err != nil {
		// ToEpochSecond is bounded by LocalDate's year range, which is
		// well within Instant's representable range.
		panic(err)
	}
	return i
}

// WithOffsetSameInstant returns o adjusted to newOffset, keeping the
// instant it denotes fixed and recomputing the local date-time.
func (o OffsetDateTime) WithOffsetSameInstant(newOffset ZoneOffset) OffsetDateTime {
	return o.ToInstant().AtOffset(newOffset)
}

// WithOffsetSameLocal returns o with its offset changed to newOffset,
// keeping the local date-time fields unchanged (so it denotes a different
// instant).
func (o OffsetDateTime) WithOffsetSameLocal(newOffset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{local: o.local, offset: newOffset}
}

// Compare orders first by instant, then — for equal instants — by local
// date-time, so that OffsetDateTimes denoting the same instant via different
// offsets still sort deterministically.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	if o.offset.Equal(other.offset) {
		return o.local.Compare(other.local)
	}
	thisEpochSec := o.local.ToEpochSecond(o.offset)
	otherEpochSec := other.local.ToEpochSecond(other.offset)
	if thisEpochSec != otherEpochSec {
		if thisEpochSec < otherEpochSec {
			return -1
		}
		return 1
	}
	if d := o.local.Time().Nano() - other.local.Time().Nano(); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	return o.local.Compare(other.local)
}

// IsEqualInstant reports whether o and other denote the same instant,
// regardless of offset.
func (o OffsetDateTime) IsEqualInstant(other OffsetDateTime) bool {
	return o.local.ToEpochSecond(o.offset) == other.local.ToEpochSecond(other.offset) &&
		o.local.Time().Nano() == other.local.Time().Nano()
}

// Equal reports whether o and other have identical local date-time and
// offset fields (not merely the same instant — see IsEqualInstant).
func (o OffsetDateTime) Equal(other OffsetDateTime) bool { return o == other }

// Plus applies amount of unit to the local date-time, leaving the offset
// unchanged.
func (o OffsetDateTime) Plus(amount int64, unit Unit) (OffsetDateTime, error) {
	local, err := o.local.Plus(amount, unit)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{local: local, offset: o.offset}, nil
}

// Minus applies -amount of unit to the local date-time.
func (o OffsetDateTime) Minus(amount int64, unit Unit) (OffsetDateTime, error) {
	return o.Plus(-amount, unit)
}

// IsSupported reports whether o can answer a query for f.
func (o OffsetDateTime) IsSupported(f Field) bool {
	return f == InstantSeconds || f == OffsetSeconds || o.local.IsSupported(f)
}

// Range returns the valid range of f for o.
func (o OffsetDateTime) Range(f Field) (ValueRange, error) {
	switch f {
	case InstantSeconds:
		return FixedRange(minEpochSecond, maxEpochSecond), nil
	case OffsetSeconds:
		return FixedRange(-maxOffsetSeconds, maxOffsetSeconds), nil
	default:
		return o.local.Range(f)
	}
}

// Get returns the value of f for o.
func (o OffsetDateTime) Get(f Field) (int64, error) {
	switch f {
	case InstantSeconds:
		return o.local.ToEpochSecond(o.offset), nil
	case OffsetSeconds:
		return int64(o.offset.TotalSeconds()), nil
	default:
		return o.local.Get(f)
	}
}

// With returns a copy of o with f set to value.
func (o OffsetDateTime) With(f Field, value int64) (OffsetDateTime, error) {
	switch f {
	case InstantSeconds:
		i, err := InstantFromEpochSecond(value, int64(o.local.Time().Nano()))
		if err != nil {
			return OffsetDateTime{}, err
		}
		return i.AtOffset(o.offset), nil
	case OffsetSeconds:
		newOffset, err := ZoneOffsetOfTotalSeconds(int(value))
		if err != nil {
			return OffsetDateTime{}, err
		}
		return OffsetDateTime{local: o.local, offset: newOffset}, nil
	default:
		local, err := o.local.With(f, value)
		if err != nil {
			return OffsetDateTime{}, err
		}
		return OffsetDateTime{local: local, offset: o.offset}, nil
	}
}

func (o OffsetDateTime) String() string {
	return o.local.String() + o.offset.String()
}
