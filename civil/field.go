package civil

// Field is a temporal field: a single named quantity that a value can be
// queried for, such as "day of month" or "hour of day". The set is closed —
// there is no user extension point — so each concrete value type's Get,
// With, and Range methods hold the authoritative switch over Field.
type Field int

const (
	NanoOfSecond Field = iota
	NanoOfDay
	MicroOfSecond
	MicroOfDay
	MilliOfSecond
	MilliOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfAmPm
	ClockHourOfAmPm
	HourOfDay
	ClockHourOfDay
	AmPmOfDay
	DayOfWeek
	DayOfMonth
	DayOfYear
	EpochDay
	MonthOfYear
	EpochMonth
	YearOfEra
	Year
	Era
	InstantSeconds
	OffsetSeconds
)

var fieldNames = [...]string{
	"NanoOfSecond", "NanoOfDay", "MicroOfSecond", "MicroOfDay", "MilliOfSecond",
	"MilliOfDay", "SecondOfMinute", "SecondOfDay", "MinuteOfHour", "MinuteOfDay",
	"HourOfAmPm", "ClockHourOfAmPm", "HourOfDay", "ClockHourOfDay", "AmPmOfDay",
	"DayOfWeek", "DayOfMonth", "DayOfYear", "EpochDay", "MonthOfYear",
	"EpochMonth", "YearOfEra", "Year", "Era", "InstantSeconds", "OffsetSeconds",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "UnknownField"
	}
	return fieldNames[f]
}

// baseUnit is informational: the smallest unit a field is measured in. It is
// not load-bearing for arithmetic, which each value type implements
// directly.
func (f Field) baseUnit() Unit {
	switch f {
	case NanoOfSecond, NanoOfDay:
		return Nanos
	case MicroOfSecond, MicroOfDay:
		return Micros
	case MilliOfSecond, MilliOfDay:
		return Millis
	case SecondOfMinute, SecondOfDay, InstantSeconds, OffsetSeconds:
		return Seconds
	case MinuteOfHour, MinuteOfDay:
		return Minutes
	case HourOfAmPm, ClockHourOfAmPm, HourOfDay, ClockHourOfDay:
		return Hours
	case AmPmOfDay:
		return HalfDays
	case DayOfWeek, DayOfMonth, DayOfYear, EpochDay:
		return Days
	case MonthOfYear, EpochMonth:
		return Months
	case YearOfEra, Year:
		return Years
	case Era:
		return Eras
	default:
		return Forever
	}
}

// Accessor is implemented by every principal value type: LocalDate,
// LocalTime, LocalDateTime, OffsetDateTime, and ZonedDateTime (via its
// embedded OffsetDateTime). It is the read side of the field protocol; the
// write side (With/Plus/Minus) is implemented per concrete type because Go
// interfaces cannot express a covariant "return Self" contract.
type Accessor interface {
	// IsSupported reports whether the value can answer a query for f.
	IsSupported(f Field) bool
	// Range returns the valid range of f for this value, or an
	// UnsupportedFieldError if f is not supported.
	Range(f Field) (ValueRange, error)
	// Get returns the value of f, or an UnsupportedFieldError /
	// ValueOutOfRangeError.
	Get(f Field) (int64, error)
}
