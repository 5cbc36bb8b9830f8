package civil

import "fmt"

const (
	nanosPerSecondL = 1_000_000_000
	nanosPerMinute  = 60 * nanosPerSecondL
	nanosPerHour    = 60 * nanosPerMinute
	nanosPerDay     = 24 * nanosPerHour
	secondsPerDay   = 24 * 3600
)

// LocalTime is a time-of-day without a date or time-zone, such as
// "13:45:30.123456789", represented internally as a nanosecond-of-day count.
type LocalTime struct {
	nanoOfDay int64
}

// Midnight is 00:00:00.
var Midnight = LocalTime{}

// Noon is 12:00:00.
var Noon = LocalTime{nanoOfDay: 12 * nanosPerHour}

// NewLocalTime builds a LocalTime from its four fields, validating each.
func NewLocalTime(hour, minute, second, nano int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, &ValueOutOfRangeError{Field: HourOfDay.String(), Value: int64(hour), Min: 0, Max: 23}
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, &ValueOutOfRangeError{Field: MinuteOfHour.String(), Value: int64(minute), Min: 0, Max: 59}
	}
	if second < 0 || second > 59 {
		return LocalTime{}, &ValueOutOfRangeError{Field: SecondOfMinute.String(), Value: int64(second), Min: 0, Max: 59}
	}
	if nano < 0 || nano > 999_999_999 {
		return LocalTime{}, &ValueOutOfRangeError{Field: NanoOfSecond.String(), Value: int64(nano), Min: 0, Max: 999_999_999}
	}
	n := int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute + int64(second)*nanosPerSecondL + int64(nano)
	return LocalTime{nanoOfDay: n}, nil
}

// LocalTimeFromSecondOfDay builds a LocalTime from a second-of-day count
// (0..86399) and a nanosecond-of-second adjustment.
func LocalTimeFromSecondOfDay(secondOfDay int, nanoOfSecond int) (LocalTime, error) {
	if secondOfDay < 0 || secondOfDay >= secondsPerDay {
		return LocalTime{}, &ValueOutOfRangeError{Field: SecondOfDay.String(), Value: int64(secondOfDay), Min: 0, Max: secondsPerDay - 1}
	}
	if nanoOfSecond < 0 || nanoOfSecond > 999_999_999 {
		return LocalTime{}, &ValueOutOfRangeError{Field: NanoOfSecond.String(), Value: int64(nanoOfSecond), Min: 0, Max: 999_999_999}
	}
	return LocalTime{nanoOfDay: int64(secondOfDay)*nanosPerSecondL + int64(nanoOfSecond)}, nil
}

// LocalTimeFromNanoOfDay builds a LocalTime from a nanosecond-of-day count.
func LocalTimeFromNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		return LocalTime{}, &ValueOutOfRangeError{Field: NanoOfDay.String(), Value: nanoOfDay, Min: 0, Max: nanosPerDay - 1}
	}
	return LocalTime{nanoOfDay: nanoOfDay}, nil
}

// Hour returns the hour-of-day, 0..23.
func (t LocalTime) Hour() int { return int(t.nanoOfDay / nanosPerHour) }

// Minute returns the minute-of-hour, 0..59.
func (t LocalTime) Minute() int { return int(t.nanoOfDay/nanosPerMinute) % 60 }

// Second returns the second-of-minute, 0..59.
func (t LocalTime) Second() int { return int(t.nanoOfDay/nanosPerSecondL) % 60 }

// Nano returns the nanosecond-of-second, 0..999,999,999.
func (t LocalTime) Nano() int { return int(t.nanoOfDay % nanosPerSecondL) }

// NanoOfDay returns the nanosecond-of-day count.
func (t LocalTime) NanoOfDay() int64 { return t.nanoOfDay }

// SecondOfDay returns the second-of-day count, truncating any sub-second
// remainder.
func (t LocalTime) SecondOfDay() int { return int(t.nanoOfDay / nanosPerSecondL) }

// Compare returns -1, 0, or 1 as t is before, equal to, or after other.
func (t LocalTime) Compare(other LocalTime) int {
	switch {
	case t.nanoOfDay < other.nanoOfDay:
		return -1
	case t.nanoOfDay > other.nanoOfDay:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly before other.
func (t LocalTime) Before(other LocalTime) bool { return t.nanoOfDay < other.nanoOfDay }

// After reports whether t is strictly after other.
func (t LocalTime) After(other LocalTime) bool { return t.nanoOfDay > other.nanoOfDay }

// Equal reports whether t and other are the same time-of-day.
func (t LocalTime) Equal(other LocalTime) bool { return t.nanoOfDay == other.nanoOfDay }

// PlusHours adds hours to t, wrapping around midnight. overflowDays reports
// how many whole days the wraparound crossed, needed by LocalDateTime to
// roll its date component.
func (t LocalTime) PlusHours(hours int64) (result LocalTime, overflowDays int64) {
	r, overflow := t.plusNanos(floorMod(hours, 24) * nanosPerHour)
	return r, overflow + floorDiv(hours, 24)
}

// PlusMinutes adds minutes to t, wrapping around midnight.
func (t LocalTime) PlusMinutes(minutes int64) (result LocalTime, overflowDays int64) {
	r, overflow := t.plusNanos(floorMod(minutes, 24*60) * nanosPerMinute)
	return r, overflow + floorDiv(minutes, 24*60)
}

// PlusSeconds adds seconds to t, wrapping around midnight.
func (t LocalTime) PlusSeconds(seconds int64) (result LocalTime, overflowDays int64) {
	r, overflow := t.plusNanos(floorMod(seconds, secondsPerDay) * nanosPerSecondL)
	return r, overflow + floorDiv(seconds, secondsPerDay)
}

// PlusNanos adds nanoseconds to t, wrapping around midnight.
func (t LocalTime) PlusNanos(nanos int64) (result LocalTime, overflowDays int64) {
	r, overflow := t.plusNanos(floorMod(nanos, nanosPerDay))
	return r, overflow + floorDiv(nanos, nanosPerDay)
}

func (t LocalTime) plusNanos(nanosInDayRange int64) (LocalTime, int64) {
	sum := t.nanoOfDay + nanosInDayRange
	overflow := floorDiv(sum, nanosPerDay)
	return LocalTime{nanoOfDay: floorMod(sum, nanosPerDay)}, overflow
}

// MinusHours subtracts hours from t.
func (t LocalTime) MinusHours(hours int64) (LocalTime, int64) { return t.PlusHours(-hours) }

// MinusMinutes subtracts minutes from t.
func (t LocalTime) MinusMinutes(minutes int64) (LocalTime, int64) { return t.PlusMinutes(-minutes) }

// MinusSeconds subtracts seconds from t.
func (t LocalTime) MinusSeconds(seconds int64) (LocalTime, int64) { return t.PlusSeconds(-seconds) }

// MinusNanos subtracts nanoseconds from t.
func (t LocalTime) MinusNanos(nanos int64) (LocalTime, int64) { return t.PlusNanos(-nanos) }

// IsSupported reports whether t can answer a query for f.
func (t LocalTime) IsSupported(f Field) bool {
	switch f {
	case NanoOfSecond, NanoOfDay, MicroOfSecond, MicroOfDay, MilliOfSecond, MilliOfDay,
		SecondOfMinute, SecondOfDay, MinuteOfHour, MinuteOfDay, HourOfAmPm,
		ClockHourOfAmPm, HourOfDay, ClockHourOfDay, AmPmOfDay:
		return true
	default:
		return false
	}
}

// Range returns the valid range of f for t.
func (t LocalTime) Range(f Field) (ValueRange, error) {
	if !t.IsSupported(f) {
		return ValueRange{}, &UnsupportedFieldError{Field: f.String()}
	}
	switch f {
	case NanoOfSecond, MicroOfSecond, MilliOfSecond:
		return fieldRangeMax(f), nil
	case NanoOfDay:
		return FixedRange(0, nanosPerDay-1), nil
	case MicroOfDay:
		return FixedRange(0, nanosPerDay/1000-1), nil
	case MilliOfDay:
		return FixedRange(0, nanosPerDay/1_000_000-1), nil
	case SecondOfMinute, MinuteOfHour:
		return FixedRange(0, 59), nil
	case SecondOfDay:
		return FixedRange(0, secondsPerDay-1), nil
	case MinuteOfDay:
		return FixedRange(0, 24*60-1), nil
	case HourOfAmPm:
		return FixedRange(0, 11), nil
	case ClockHourOfAmPm:
		return FixedRange(1, 12), nil
	case HourOfDay:
		return FixedRange(0, 23), nil
	case ClockHourOfDay:
		return FixedRange(1, 24), nil
	case AmPmOfDay:
		return FixedRange(0, 1), nil
	default:
		return ValueRange{}, &UnsupportedFieldError{Field: f.String()}
	}
}

func fieldRangeMax(f Field) ValueRange {
	switch f {
	case MicroOfSecond:
		return FixedRange(0, 999_999)
	case MilliOfSecond:
		return FixedRange(0, 999)
	default:
		return FixedRange(0, 999_999_999)
	}
}

// Get returns the value of f for t.
func (t LocalTime) Get(f Field) (int64, error) {
	if !t.IsSupported(f) {
		return 0, &UnsupportedFieldError{Field: f.String()}
	}
	switch f {
	case NanoOfSecond:
		return int64(t.Nano()), nil
	case NanoOfDay:
		return t.nanoOfDay, nil
	case MicroOfSecond:
		return int64(t.Nano() / 1000), nil
	case MicroOfDay:
		return t.nanoOfDay / 1000, nil
	case MilliOfSecond:
		return int64(t.Nano() / 1_000_000), nil
	case MilliOfDay:
		return t.nanoOfDay / 1_000_000, nil
	case SecondOfMinute:
		return int64(t.Second()), nil
	case SecondOfDay:
		return int64(t.SecondOfDay()), nil
	case MinuteOfHour:
		return int64(t.Minute()), nil
	case MinuteOfDay:
		return int64(t.Hour()*60 + t.Minute()), nil
	case HourOfAmPm:
		return int64(t.Hour() % 12), nil
	case ClockHourOfAmPm:
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return int64(h), nil
	case HourOfDay:
		return int64(t.Hour()), nil
	case ClockHourOfDay:
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return int64(h), nil
	case AmPmOfDay:
		return int64(t.Hour() / 12), nil
	default:
		return 0, &UnsupportedFieldError{Field: f.String()}
	}
}

// With returns a copy of t with f set to value.
func (t LocalTime) With(f Field, value int64) (LocalTime, error) {
	r, err := t.Range(f)
	if err != nil {
		return LocalTime{}, err
	}
	if err := r.CheckValue(f, value); err != nil {
		return LocalTime{}, err
	}
	switch f {
	case NanoOfSecond:
		return LocalTimeFromNanoOfDay(t.nanoOfDay - int64(t.Nano()) + value)
	case NanoOfDay:
		return LocalTimeFromNanoOfDay(value)
	case MicroOfSecond:
		return LocalTimeFromNanoOfDay(t.nanoOfDay - int64(t.Nano()) + value*1000)
	case MicroOfDay:
		return LocalTimeFromNanoOfDay(value * 1000)
	case MilliOfSecond:
		return LocalTimeFromNanoOfDay(t.nanoOfDay - int64(t.Nano()) + value*1_000_000)
	case MilliOfDay:
		return LocalTimeFromNanoOfDay(value * 1_000_000)
	case SecondOfMinute:
		return NewLocalTime(t.Hour(), t.Minute(), int(value), t.Nano())
	case SecondOfDay:
		return LocalTimeFromSecondOfDay(int(value), t.Nano())
	case MinuteOfHour:
		return NewLocalTime(t.Hour(), int(value), t.Second(), t.Nano())
	case MinuteOfDay:
		return NewLocalTime(int(value/60), int(value%60), t.Second(), t.Nano())
	case HourOfAmPm:
		return NewLocalTime(t.Hour()/12*12+int(value), t.Minute(), t.Second(), t.Nano())
	case ClockHourOfAmPm:
		h := int(value)
		if h == 12 {
			h = 0
		}
		return NewLocalTime(t.Hour()/12*12+h, t.Minute(), t.Second(), t.Nano())
	case HourOfDay:
		return NewLocalTime(int(value), t.Minute(), t.Second(), t.Nano())
	case ClockHourOfDay:
		h := int(value)
		if h == 24 {
			h = 0
		}
		return NewLocalTime(h, t.Minute(), t.Second(), t.Nano())
	case AmPmOfDay:
		return NewLocalTime(t.Hour()%12+int(value)*12, t.Minute(), t.Second(), t.Nano())
	default:
		return LocalTime{}, &UnsupportedFieldError{Field: f.String()}
	}
}

func (t LocalTime) String() string {
	h, m, s, n := t.Hour(), t.Minute(), t.Second(), t.Nano()
	base := fmt.Sprintf("%02d:%02d", h, m)
	if s == 0 && n == 0 {
		return base
	}
	base += fmt.Sprintf(":%02d", s)
	if n == 0 {
		return base
	}
	frac := fmt.Sprintf("%09d", n)
	frac = trimTrailingZeros(frac)
	return base + "." + frac
}
