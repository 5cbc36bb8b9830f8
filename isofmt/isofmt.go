// Package isofmt implements the ISO-8601 text forms: local date, offset
// date, local time, offset time, local date-time, offset date-time, zoned
// date-time, ordinal date, week date, and basic date — plus RFC 1123. Each
// form is both a Format and a Parse function operating on the civil and tz
// value types; parsing is strict, matching the range checks the
// constructors already perform.
package isofmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/tz"
)

// FormatLocalDate renders d as "YYYY-MM-DD", expanding to a signed form when
// the year falls outside [0, 9999].
func FormatLocalDate(d civil.LocalDate) string {
	return d.String()
}

// ParseLocalDate parses the iso_local_date form.
func ParseLocalDate(s string) (civil.LocalDate, error) {
	year, month, day, rest, err := scanDate(s)
	if err != nil {
		return civil.LocalDate{}, err
	}
	if rest != "" {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest), "unexpected trailing input")
	}
	return civil.NewLocalDate(year, month, day)
}

// FormatBasicISODate renders d as "YYYYMMDD". Only years
// within [0, 9999] are representable in this fixed-width form.
func FormatBasicISODate(d civil.LocalDate) (string, error) {
	if d.Year() < 0 || d.Year() > 9999 {
		return "", parseErr(d.String(), 0, "basic ISO date requires a 4-digit year")
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year(), int(d.Month()), d.Day()), nil
}

// ParseBasicISODate parses the "YYYYMMDD" form.
func ParseBasicISODate(s string) (civil.LocalDate, error) {
	if len(s) != 8 {
		return civil.LocalDate{}, parseErr(s, 0, "expected 8 digits")
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return civil.LocalDate{}, parseErr(s, 0, "invalid year")
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil {
		return civil.LocalDate{}, parseErr(s, 4, "invalid month")
	}
	day, err := strconv.Atoi(s[6:8])
	if err != nil {
		return civil.LocalDate{}, parseErr(s, 6, "invalid day")
	}
	return civil.NewLocalDate(year, time.Month(month), day)
}

// FormatOrdinalDate renders d as "YYYY-DDD".
func FormatOrdinalDate(d civil.LocalDate) string {
	return fmt.Sprintf("%s-%03d", yearField(d.Year()), d.DayOfYear())
}

// ParseOrdinalDate parses the "YYYY-DDD" form.
func ParseOrdinalDate(s string) (civil.LocalDate, error) {
	year, rest, err := scanYear(s)
	if err != nil {
		return civil.LocalDate{}, err
	}
	if len(rest) < 4 || rest[0] != '-' {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest), "expected '-DDD'")
	}
	doy, err := strconv.Atoi(rest[1:4])
	if err != nil {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+1, "invalid day-of-year")
	}
	if len(rest) != 4 {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+4, "unexpected trailing input")
	}
	jan1, err := civil.NewLocalDate(year, time.January, 1)
	if err != nil {
		return civil.LocalDate{}, err
	}
	if doy < 1 || doy > jan1.LengthOfYear() {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+1, "day-of-year out of range")
	}
	return jan1.PlusDays(int64(doy - 1))
}

// FormatWeekDate renders d as "YYYY-Www-D", using the ISO week-numbering
// year (which may differ from the calendar year near January 1 / December
// 31).
func FormatWeekDate(d civil.LocalDate) string {
	weekYear, week, dow := isoWeek(d)
	return fmt.Sprintf("%s-W%02d-%d", yearField(weekYear), week, dow)
}

// ParseWeekDate parses the "YYYY-Www-D" form.
func ParseWeekDate(s string) (civil.LocalDate, error) {
	year, rest, err := scanYear(s)
	if err != nil {
		return civil.LocalDate{}, err
	}
	if len(rest) < 6 || rest[0] != '-' || (rest[1] != 'W' && rest[1] != 'w') {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest), "expected '-Www-D'")
	}
	week, err := strconv.Atoi(rest[2:4])
	if err != nil {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+2, "invalid week")
	}
	if rest[4] != '-' {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+4, "expected '-'")
	}
	dow, err := strconv.Atoi(rest[5:6])
	if err != nil || dow < 1 || dow > 7 {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+5, "invalid weekday")
	}
	if len(rest) != 6 {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+6, "unexpected trailing input")
	}
	d, err := dateFromISOWeek(year, week, dow)
	if err != nil {
		return civil.LocalDate{}, err
	}
	if wy, w, _ := isoWeek(d); wy != year || w != week {
		return civil.LocalDate{}, parseErr(s, len(s)-len(rest)+2, "week out of range")
	}
	return d, nil
}

// FormatLocalTime renders t as "HH:MM[:SS[.fffffffff]]" — seconds are always
// printed if nonzero or fractional, fractional digits elided when zero
//.
func FormatLocalTime(t civil.LocalTime) string {
	return t.String()
}

// ParseLocalTime parses the iso_local_time form.
func ParseLocalTime(s string) (civil.LocalTime, error) {
	hour, minute, second, nano, rest, err := scanTime(s)
	if err != nil {
		return civil.LocalTime{}, err
	}
	if rest != "" {
		return civil.LocalTime{}, parseErr(s, len(s)-len(rest), "unexpected trailing input")
	}
	return civil.NewLocalTime(hour, minute, second, nano)
}

// FormatOffset renders o using ZoneOffset.ID.
func FormatOffset(o civil.ZoneOffset) string { return o.ID() }

// ParseOffset parses a canonical offset ID.
func ParseOffset(s string) (civil.ZoneOffset, error) { return civil.ParseZoneOffset(s) }

// FormatOffsetTime renders t and o as "HH:MM:SS±HH:MM".
func FormatOffsetTime(t civil.LocalTime, o civil.ZoneOffset) string {
	s := t.String()
	if t.Second() == 0 && t.Nano() == 0 {
		s += ":00"
	}
	return s + o.ID()
}

// ParseOffsetTime parses the iso_offset_time form.
func ParseOffsetTime(s string) (civil.LocalTime, civil.ZoneOffset, error) {
	hour, minute, second, nano, rest, err := scanTime(s)
	if err != nil {
		return civil.LocalTime{}, civil.ZoneOffset{}, err
	}
	offset, err := ParseOffset(rest)
	if err != nil {
		return civil.LocalTime{}, civil.ZoneOffset{}, err
	}
	t, err := civil.NewLocalTime(hour, minute, second, nano)
	if err != nil {
		return civil.LocalTime{}, civil.ZoneOffset{}, err
	}
	return t, offset, nil
}

// FormatOffsetDate renders d and o as "YYYY-MM-DD±HH:MM".
func FormatOffsetDate(d civil.LocalDate, o civil.ZoneOffset) string {
	return d.String() + o.ID()
}

// ParseOffsetDate parses the iso_offset_date form.
func ParseOffsetDate(s string) (civil.LocalDate, civil.ZoneOffset, error) {
	year, month, day, rest, err := scanDate(s)
	if err != nil {
		return civil.LocalDate{}, civil.ZoneOffset{}, err
	}
	offset, err := ParseOffset(rest)
	if err != nil {
		return civil.LocalDate{}, civil.ZoneOffset{}, err
	}
	d, err := civil.NewLocalDate(year, month, day)
	if err != nil {
		return civil.LocalDate{}, civil.ZoneOffset{}, err
	}
	return d, offset, nil
}

// FormatLocalDateTime renders dt as "YYYY-MM-DDTHH:MM[:SS[.fffffffff]]"
//.
func FormatLocalDateTime(dt civil.LocalDateTime) string {
	return dt.String()
}

// ParseLocalDateTime parses the iso_local_date_time form.
func ParseLocalDateTime(s string) (civil.LocalDateTime, error) {
	year, month, day, rest, err := scanDate(s)
	if err != nil {
		return civil.LocalDateTime{}, err
	}
	if rest == "" || (rest[0] != 'T' && rest[0] != 't') {
		return civil.LocalDateTime{}, parseErr(s, len(s)-len(rest), "expected 'T'")
	}
	hour, minute, second, nano, rest2, err := scanTime(rest[1:])
	if err != nil {
		return civil.LocalDateTime{}, err
	}
	if rest2 != "" {
		return civil.LocalDateTime{}, parseErr(s, len(s)-len(rest2), "unexpected trailing input")
	}
	d, err := civil.NewLocalDate(year, month, day)
	if err != nil {
		return civil.LocalDateTime{}, err
	}
	t, err := civil.NewLocalTime(hour, minute, second, nano)
	if err != nil {
		return civil.LocalDateTime{}, err
	}
	return civil.NewLocalDateTime(d, t), nil
}

// FormatOffsetDateTime renders o as "YYYY-MM-DDTHH:MM:SS±HH:MM".
func FormatOffsetDateTime(o civil.OffsetDateTime) string {
	t := o.Time()
	s := t.String()
	if t.Second() == 0 && t.Nano() == 0 {
		s += ":00"
	}
	return o.Date().String() + "T" + s + o.Offset().ID()
}

// ParseOffsetDateTime parses the iso_offset_date_time form.
func ParseOffsetDateTime(s string) (civil.OffsetDateTime, error) {
	local, offsetText, err := splitLocalAndOffset(s)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	ldt, err := ParseLocalDateTime(local)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	offset, err := ParseOffset(offsetText)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return civil.NewOffsetDateTime(ldt, offset), nil
}

// FormatZonedDateTime renders z as "YYYY-MM-DDTHH:MM:SS±HH:MM[ZoneId]"
//.
func FormatZonedDateTime(z tz.ZonedDateTime) string {
	return z.String()
}

// ParseZonedDateTime parses the iso_zoned_date_time form.
func ParseZonedDateTime(s string) (tz.ZonedDateTime, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return tz.ZonedDateTime{}, parseErr(s, 0, "expected trailing '[ZoneId]'")
	}
	odt, err := ParseOffsetDateTime(s[:open])
	if err != nil {
		return tz.ZonedDateTime{}, err
	}
	zoneText := s[open+1 : len(s)-1]
	zone, err := tz.ParseZoneID(zoneText)
	if err != nil {
		return tz.ZonedDateTime{}, err
	}
	return tz.OfOffsetDateTime(odt, zone)
}

var rfc1123Months = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var rfc1123Days = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatRFC1123 renders o as "EEE, dd MMM yyyy HH:mm:ss Z". Only years
// within [0, 9999] are supported.
func FormatRFC1123(o civil.OffsetDateTime) (string, error) {
	year := o.Date().Year()
	if year < 0 || year > 9999 {
		return "", parseErr(o.String(), 0, "RFC 1123 requires a 4-digit year")
	}
	dow := rfc1123Days[o.Date().Weekday()]
	month := rfc1123Months[int(o.Date().Month())-1]
	zone := "Z"
	if o.Offset().TotalSeconds() != 0 {
		zone = o.Offset().ID()
	}
	return fmt.Sprintf("%s, %02d %s %04d %02d:%02d:%02d %s",
		dow, o.Date().Day(), month, year, o.Time().Hour(), o.Time().Minute(), o.Time().Second(), zone), nil
}

// ParseRFC1123 parses the RFC 1123 form, accepting case-insensitive day and
// month names.
func ParseRFC1123(s string) (civil.OffsetDateTime, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return civil.OffsetDateTime{}, parseErr(s, 0, "expected 6 space-separated fields")
	}
	dayStr := strings.TrimSuffix(fields[0], ",")
	if !containsFold(rfc1123Days[:], dayStr) {
		return civil.OffsetDateTime{}, parseErr(s, 0, "unrecognized weekday")
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return civil.OffsetDateTime{}, parseErr(s, 0, "invalid day")
	}
	month := indexFold(rfc1123Months[:], fields[2])
	if month < 0 {
		return civil.OffsetDateTime{}, parseErr(s, 0, "unrecognized month")
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return civil.OffsetDateTime{}, parseErr(s, 0, "invalid year")
	}
	hour, minute, second, _, _, err := scanTime(fields[4] + "Z")
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	var offset civil.ZoneOffset
	if fields[5] == "Z" || fields[5] == "GMT" || fields[5] == "UT" {
		offset = civil.UTC
	} else {
		offset, err = civil.ParseZoneOffset(fields[5])
		if err != nil {
			return civil.OffsetDateTime{}, err
		}
	}
	d, err := civil.NewLocalDate(year, time.Month(month+1), day)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	t, err := civil.NewLocalTime(hour, minute, second, 0)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return civil.NewOffsetDateTime(civil.NewLocalDateTime(d, t), offset), nil
}

func containsFold(names []string, s string) bool { return indexFold(names, s) >= 0 }

func indexFold(names []string, s string) int {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i
		}
	}
	return -1
}

func parseErr(input string, index int, msg string) error {
	return &civil.ParseError{Input: input, ErrorIndex: index, Message: msg}
}

func yearField(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	if year > 9999 {
		return fmt.Sprintf("+%d", year)
	}
	return fmt.Sprintf("%04d", year)
}
