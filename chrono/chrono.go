// Package chrono defines a calendar-chronology plug-in protocol: a
// Chronology reparameterizes the year/era axis of the proleptic Gregorian
// calendar while leaving month-length and day-of-week rules untouched.
// Minguo and ThaiBuddhist are implemented in full because the original
// source shows them to be pure year-offset variants; Japanese and Hijrah
// are declared with their era tables but return ErrUnsupported from the
// conversion methods, since full era-transition tracking and the lunar
// Hijrah calculation are out of scope here.
package chrono

import (
	"errors"
	"fmt"
	"time"

	"github.com/civiltime/civiltime/civil"
)

// ErrUnsupported is returned by a Chronology whose era model is declared but
// not fully implemented.
var ErrUnsupported = errors.New("chrono: chronology not fully implemented")

// Era names one of a chronology's eras, ordered oldest-first.
type Era struct {
	Name  string
	Value int
}

// Chronology reparameterizes the ISO proleptic Gregorian calendar's
// year/era axis. Month length and day-of-week rules are always those of the
// underlying civil.LocalDate.
type Chronology interface {
	// Name returns the chronology's identifier, e.g. "Minguo".
	Name() string
	// Eras returns the chronology's eras, oldest first.
	Eras() []Era
	// IsLeapYear reports whether prolepticYear (in this chronology's own
	// year numbering) is a leap year.
	IsLeapYear(prolepticYear int) bool
	// DaysInMonth returns the length of month in prolepticYear.
	DaysInMonth(prolepticYear int, month int) (int, error)
	// ToISO converts an (era, yearOfEra, month, day) in this chronology to
	// the equivalent civil.LocalDate.
	ToISO(era Era, yearOfEra, month, day int) (civil.LocalDate, error)
	// FromISO converts d to this chronology's (era, yearOfEra, month, day).
	FromISO(d civil.LocalDate) (era Era, yearOfEra, month, day int, err error)
}

// yearOffsetChronology implements Chronology for calendars that are a pure
// additive offset over the ISO proleptic year, with a single era boundary at
// isoEraStartYear (the ISO year in which yearOfEra 1 of the modern era
// begins). Month lengths and leap years follow the ISO calendar exactly,
// since Minguo and ThaiBuddhist (per original_source's MinguoChronology.java
// and ThaiBuddhistChronology.java) both delegate leap-year and month-length
// computation straight through to the ISO calendar.
type yearOffsetChronology struct {
	name            string
	isoEraStartYear int
	eraBefore       string
	eraCurrent      string
}

func (c yearOffsetChronology) Name() string { return c.name }

func (c yearOffsetChronology) Eras() []Era {
	return []Era{{Name: c.eraBefore, Value: 0}, {Name: c.eraCurrent, Value: 1}}
}

func (c yearOffsetChronology) IsLeapYear(prolepticYear int) bool {
	isoYear := prolepticYear + c.isoEraStartYear - 1
	return isoYear%4 == 0 && (isoYear%100 != 0 || isoYear%400 == 0)
}

func (c yearOffsetChronology) DaysInMonth(prolepticYear int, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, &civil.ValueOutOfRangeError{Field: "MonthOfYear", Value: int64(month), Min: 1, Max: 12}
	}
	isoYear := prolepticYear + c.isoEraStartYear - 1
	d, err := civil.NewLocalDate(isoYear, time.Month(month), 1)
	if err != nil {
		return 0, err
	}
	return d.LengthOfMonth(), nil
}

func (c yearOffsetChronology) ToISO(era Era, yearOfEra, month, day int) (civil.LocalDate, error) {
	prolepticYear := yearOfEra
	if era.Value == 0 {
		prolepticYear = 1 - yearOfEra
	}
	isoYear := prolepticYear + c.isoEraStartYear - 1
	return civil.NewLocalDate(isoYear, time.Month(month), day)
}

func (c yearOffsetChronology) FromISO(d civil.LocalDate) (Era, int, int, int, error) {
	prolepticYear := d.Year() - c.isoEraStartYear + 1
	eras := c.Eras()
	era := eras[1]
	yearOfEra := prolepticYear
	if prolepticYear <= 0 {
		era = eras[0]
		yearOfEra = 1 - prolepticYear
	}
	return era, yearOfEra, int(d.Month()), d.Day(), nil
}

// Minguo is the Republic of China calendar: yearOfEra 1 of the "minguo" era
// corresponds to ISO year 1912; years before that fall in the "before-roc"
// era (grounded on original_source's MinguoChronology.java /
// MinguoEra.java, which model this as a fixed 1911-year offset).
var Minguo Chronology = yearOffsetChronology{
	name:            "Minguo",
	isoEraStartYear: 1912,
	eraBefore:       "before-roc",
	eraCurrent:      "minguo",
}

// ThaiBuddhist is the Buddhist Era calendar: yearOfEra N corresponds to ISO
// year N-543 (grounded on original_source's ThaiBuddhistChronology.java /
// ThaiBuddhistEra.java).
var ThaiBuddhist Chronology = yearOffsetChronology{
	name:            "ThaiBuddhist",
	isoEraStartYear: -542,
	eraBefore:       "before-be",
	eraCurrent:      "be",
}

// unsupportedChronology backs Japanese, Hijrah and Coptic: it carries an era
// table (grounded on original_source's JapaneseEra.java / HijrahEra.java)
// but does not implement conversion: Japanese eras change at emperor
// succession dates
// that require an actively maintained table, and Hijrah is a lunar
// calendar whose day boundaries are not a function of the proleptic
// Gregorian day count alone.
type unsupportedChronology struct {
	name string
	eras []Era
}

func (c unsupportedChronology) Name() string { return c.name }
func (c unsupportedChronology) Eras() []Era  { return c.eras }

func (c unsupportedChronology) IsLeapYear(int) bool { return false }

func (c unsupportedChronology) DaysInMonth(int, int) (int, error) {
	return 0, fmt.Errorf("chrono: %s.DaysInMonth: %w", c.name, ErrUnsupported)
}

func (c unsupportedChronology) ToISO(Era, int, int, int) (civil.LocalDate, error) {
	return civil.LocalDate{}, fmt.Errorf("chrono: %s.ToISO: %w", c.name, ErrUnsupported)
}

func (c unsupportedChronology) FromISO(civil.LocalDate) (Era, int, int, int, error) {
	return Era{}, 0, 0, 0, fmt.Errorf("chrono: %s.FromISO: %w", c.name, ErrUnsupported)
}

// Japanese carries the modern Japanese-era table (Meiji onward); conversion
// is unimplemented (see unsupportedChronology's doc comment).
var Japanese Chronology = unsupportedChronology{
	name: "Japanese",
	eras: []Era{
		{Name: "meiji", Value: -1},
		{Name: "taisho", Value: 0},
		{Name: "showa", Value: 1},
		{Name: "heisei", Value: 2},
		{Name: "reiwa", Value: 3},
	},
}

// Hijrah carries the single-era Islamic-calendar table; conversion is
// unimplemented (see unsupportedChronology's doc comment).
var Hijrah Chronology = unsupportedChronology{
	name: "Hijrah",
	eras: []Era{{Name: "ah", Value: 1}},
}

// Coptic carries the Era-of-the-Martyrs table (grounded on
// original_source's CopticDate.java, which documents "before-am"/"am" as
// its two eras); conversion is unimplemented because the Coptic calendar's
// own 13-month, 5-or-6-day-final-month layout is not a reparameterization
// of the Gregorian month/day axis the way Minguo and ThaiBuddhist are.
var Coptic Chronology = unsupportedChronology{
	name: "Coptic",
	eras: []Era{
		{Name: "before-am", Value: 0},
		{Name: "am", Value: 1},
	},
}
