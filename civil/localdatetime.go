package civil

// LocalDateTime is a date and time-of-day without a time-zone, such as
// "2008-06-30T13:45:30", formed by pairing a LocalDate with a LocalTime.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime pairs date and time.
func NewLocalDateTime(date LocalDate, time LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: time}
}

// localDateTimeFromEpochSecond builds the LocalDateTime that offset sees at
// the given instant. offset shifts the instant before decomposing it into
// date and time-of-day components.
func localDateTimeFromEpochSecond(epochSecond int64, nanoOfSecond uint32, offset ZoneOffset) LocalDateTime {
	localSecond := epochSecond + int64(offset.TotalSeconds())
	epochDay := floorDiv(localSecond, secondsPerDay)
	secondOfDay := floorMod(localSecond, secondsPerDay)
	date, err := LocalDateFromEpochDay(epochDay)
	if err != nil {
		// epochSecond is constructed from a valid Instant and a bounded
		// ZoneOffset, so the resulting epoch day is always in range.
		panic(err)
	}
	time, err := LocalTimeFromSecondOfDay(int(secondOfDay), int(nanoOfSecond))
	if err != nil {
		panic(err)
	}
	return LocalDateTime{date: date, time: time}
}

// Date returns the date component.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time-of-day component.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// Year, Hour, Minute, Second, Nano delegate to the component parts for
// convenience.
func (dt LocalDateTime) Year() int    { return dt.date.Year() }
func (dt LocalDateTime) Hour() int    { return dt.time.Hour() }
func (dt LocalDateTime) Minute() int  { return dt.time.Minute() }
func (dt LocalDateTime) Second() int  { return dt.time.Second() }
func (dt LocalDateTime) Nano() int    { return dt.time.Nano() }

// ToEpochSecond converts dt to a count of seconds since the epoch, as seen
// under offset.
func (dt LocalDateTime) ToEpochSecond(offset ZoneOffset) int64 {
	return dt.date.ToEpochDay()*secondsPerDay + int64(dt.time.SecondOfDay()) - int64(offset.TotalSeconds())
}

// Compare returns -1, 0, or 1 as dt is before, equal to, or after other.
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// Before reports whether dt is strictly before other.
func (dt LocalDateTime) Before(other LocalDateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is strictly after other.
func (dt LocalDateTime) After(other LocalDateTime) bool { return dt.Compare(other) > 0 }

// Equal reports whether dt and other denote the same date and time.
func (dt LocalDateTime) Equal(other LocalDateTime) bool { return dt == other }

// PlusDays, PlusWeeks, PlusMonths, PlusYears apply calendar arithmetic to the
// date component, leaving the time-of-day unchanged.
func (dt LocalDateTime) PlusDays(n int64) (LocalDateTime, error) {
	d, err := dt.date.PlusDays(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

func (dt LocalDateTime) PlusWeeks(n int64) (LocalDateTime, error) {
	d, err := dt.date.PlusWeeks(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

func (dt LocalDateTime) PlusMonths(n int64) (LocalDateTime, error) {
	d, err := dt.date.PlusMonths(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

func (dt LocalDateTime) PlusYears(n int64) (LocalDateTime, error) {
	d, err := dt.date.PlusYears(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

// PlusHours, PlusMinutes, PlusSeconds, PlusNanos apply duration-based
// arithmetic, rolling the date component forward or backward across any
// midnight crossings.
func (dt LocalDateTime) PlusHours(n int64) (LocalDateTime, error) { return dt.plusTimeBased(n, Hours) }
func (dt LocalDateTime) PlusMinutes(n int64) (LocalDateTime, error) {
	return dt.plusTimeBased(n, Minutes)
}
func (dt LocalDateTime) PlusSeconds(n int64) (LocalDateTime, error) {
	return dt.plusTimeBased(n, Seconds)
}
func (dt LocalDateTime) PlusNanos(n int64) (LocalDateTime, error) { return dt.plusTimeBased(n, Nanos) }

func (dt LocalDateTime) plusTimeBased(n int64, unit Unit) (LocalDateTime, error) {
	var newTime LocalTime
	var overflow int64
	switch unit {
	case Hours:
		newTime, overflow = dt.time.PlusHours(n)
	case Minutes:
		newTime, overflow = dt.time.PlusMinutes(n)
	case Seconds:
		newTime, overflow = dt.time.PlusSeconds(n)
	case Nanos:
		newTime, overflow = dt.time.PlusNanos(n)
	}
	newDate, err := dt.date.PlusDays(overflow)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: newDate, time: newTime}, nil
}

// Plus applies amount of unit to dt, dispatching to calendar or
// duration-based arithmetic as appropriate.
func (dt LocalDateTime) Plus(amount int64, unit Unit) (LocalDateTime, error) {
	if unit.IsTimeBased() {
		return dt.plusTimeBased(amount, unit)
	}
	switch unit {
	case Days:
		return dt.PlusDays(amount)
	case Weeks:
		return dt.PlusWeeks(amount)
	case Months:
		return dt.PlusMonths(amount)
	case Years, Decades, Centuries, Millennia:
		d, err := dt.date.Plus(amount, unit)
		if err != nil {
			return LocalDateTime{}, err
		}
		return LocalDateTime{date: d, time: dt.time}, nil
	default:
		return LocalDateTime{}, &UnsupportedUnitError{Unit: unit.String()}
	}
}

// Minus applies -amount of unit to dt.
func (dt LocalDateTime) Minus(amount int64, unit Unit) (LocalDateTime, error) {
	return dt.Plus(-amount, unit)
}

// IsSupported reports whether dt can answer a query for f.
func (dt LocalDateTime) IsSupported(f Field) bool {
	return dt.date.IsSupported(f) || dt.time.IsSupported(f)
}

// Range returns the valid range of f for dt.
func (dt LocalDateTime) Range(f Field) (ValueRange, error) {
	if dt.time.IsSupported(f) {
		return dt.time.Range(f)
	}
	return dt.date.Range(f)
}

// Get returns the value of f for dt.
func (dt LocalDateTime) Get(f Field) (int64, error) {
	if dt.time.IsSupported(f) {
		return dt.time.Get(f)
	}
	return dt.date.Get(f)
}

// With returns a copy of dt with f set to value.
func (dt LocalDateTime) With(f Field, value int64) (LocalDateTime, error) {
	if dt.time.IsSupported(f) {
		t, err := dt.time.With(f, value)
		if err != nil {
			return LocalDateTime{}, err
		}
		return LocalDateTime{date: dt.date, time: t}, nil
	}
	d, err := dt.date.With(f, value)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: dt.time}, nil
}

func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}
