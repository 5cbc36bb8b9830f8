package civil

import "time"

// DateAdjuster transforms a LocalDate into another, e.g. "the first day of
// the month" or "the next Monday". LocalDate.Adjust applies one.
type DateAdjuster func(LocalDate) (LocalDate, error)

// Adjust returns the result of applying adjuster to d.
func (d LocalDate) Adjust(adjuster DateAdjuster) (LocalDate, error) { return adjuster(d) }

// FirstDayOfMonth adjusts to the 1st of the current month.
func FirstDayOfMonth(d LocalDate) (LocalDate, error) {
	return NewLocalDate(d.Year(), d.Month(), 1)
}

// LastDayOfMonth adjusts to the last day of the current month.
func LastDayOfMonth(d LocalDate) (LocalDate, error) {
	return NewLocalDate(d.Year(), d.Month(), d.LengthOfMonth())
}

// FirstDayOfNextMonth adjusts to the 1st of the month following the current
// one.
func FirstDayOfNextMonth(d LocalDate) (LocalDate, error) {
	first, err := NewLocalDate(d.Year(), d.Month(), 1)
	if err != nil {
		return LocalDate{}, err
	}
	return first.PlusMonths(1)
}

// FirstDayOfYear adjusts to January 1st of the current year.
func FirstDayOfYear(d LocalDate) (LocalDate, error) {
	return NewLocalDate(d.Year(), time.January, 1)
}

// LastDayOfYear adjusts to December 31st of the current year.
func LastDayOfYear(d LocalDate) (LocalDate, error) {
	return NewLocalDate(d.Year(), time.December, 31)
}

// FirstDayOfNextYear adjusts to January 1st of the year following the
// current one.
func FirstDayOfNextYear(d LocalDate) (LocalDate, error) {
	return NewLocalDate(d.Year()+1, time.January, 1)
}

// FirstInMonth returns an adjuster to the first occurrence of dow within the
// current month.
func FirstInMonth(dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) {
		return dayOfWeekInMonth(d, 1, dow)
	}
}

// LastInMonth returns an adjuster to the last occurrence of dow within the
// current month.
func LastInMonth(dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) {
		return dayOfWeekInMonth(d, -1, dow)
	}
}

// DayOfWeekInMonth returns an adjuster to the nth occurrence of dow within
// the current month. A positive ordinal counts from the start of the month
// (1 = first), a negative ordinal counts from the end (-1 = last).
func DayOfWeekInMonth(ordinal int, dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) {
		return dayOfWeekInMonth(d, ordinal, dow)
	}
}

func dayOfWeekInMonth(d LocalDate, ordinal int, dow time.Weekday) (LocalDate, error) {
	if ordinal >= 0 {
		first, err := NewLocalDate(d.Year(), d.Month(), 1)
		if err != nil {
			return LocalDate{}, err
		}
		delta := int64(dow) - int64(first.Weekday())
		if delta < 0 {
			delta += 7
		}
		offset := int64(ordinal-1)*7 + delta
		return first.PlusDays(offset)
	}
	last, err := NewLocalDate(d.Year(), d.Month(), d.LengthOfMonth())
	if err != nil {
		return LocalDate{}, err
	}
	delta := int64(last.Weekday()) - int64(dow)
	if delta < 0 {
		delta += 7
	}
	offset := int64(ordinal+1)*7 - delta
	return last.PlusDays(offset)
}

// Next returns an adjuster to the next date (strictly after d) that falls on
// dow.
func Next(dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) { return relativeDayOfWeek(d, dow, false) }
}

// NextOrSame returns an adjuster to d itself if it already falls on dow, or
// otherwise the next date that does.
func NextOrSame(dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) { return relativeDayOfWeek(d, dow, true) }
}

// Previous returns an adjuster to the previous date (strictly before d) that
// falls on dow.
func Previous(dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) { return relativePreviousDayOfWeek(d, dow, false) }
}

// PreviousOrSame returns an adjuster to d itself if it already falls on dow,
// or otherwise the previous date that does.
func PreviousOrSame(dow time.Weekday) DateAdjuster {
	return func(d LocalDate) (LocalDate, error) { return relativePreviousDayOfWeek(d, dow, true) }
}

func relativeDayOfWeek(d LocalDate, dow time.Weekday, orSame bool) (LocalDate, error) {
	delta := int64(dow) - int64(d.Weekday())
	if delta < 0 {
		delta += 7
	}
	if delta == 0 && !orSame {
		delta = 7
	}
	return d.PlusDays(delta)
}

func relativePreviousDayOfWeek(d LocalDate, dow time.Weekday, orSame bool) (LocalDate, error) {
	delta := int64(d.Weekday()) - int64(dow)
	if delta < 0 {
		delta += 7
	}
	if delta == 0 && !orSame {
		delta = 7
	}
	return d.PlusDays(-delta)
}

// NextNonWeekendDay adjusts d to the next later day that is not a Saturday
// or Sunday: the following Monday from a Friday, Saturday, or Sunday, and
// the following day otherwise.
func NextNonWeekendDay(d LocalDate) (LocalDate, error) {
	switch d.Weekday() {
	case time.Friday:
		return d.PlusDays(3)
	case time.Saturday:
		return d.PlusDays(2)
	default:
		return d.PlusDays(1)
	}
}
