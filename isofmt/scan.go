package isofmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/civiltime/civiltime/civil"
)

// scanYear consumes a leading signed or expanded year field ("2008",
// "-0044", "+999999999") and returns it with the unconsumed remainder.
func scanYear(s string) (year int, rest string, err error) {
	if s == "" {
		return 0, s, parseErr(s, 0, "empty input")
	}
	i := 0
	sign := 1
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i-start < 4 {
		return 0, s, parseErr(s, start, "year requires at least 4 digits")
	}
	y, convErr := strconv.Atoi(s[start:i])
	if convErr != nil {
		return 0, s, parseErr(s, start, "invalid year")
	}
	return sign * y, s[i:], nil
}

// scanDate consumes "YYYY-MM-DD" (with the year field per scanYear) and
// returns the unconsumed remainder.
func scanDate(s string) (year int, month time.Month, day int, rest string, err error) {
	year, rest, err = scanYear(s)
	if err != nil {
		return 0, 0, 0, s, err
	}
	if len(rest) < 6 || rest[0] != '-' {
		return 0, 0, 0, s, parseErr(s, len(s)-len(rest), "expected '-MM-DD'")
	}
	m, convErr := strconv.Atoi(rest[1:3])
	if convErr != nil || rest[3] != '-' {
		return 0, 0, 0, s, parseErr(s, len(s)-len(rest)+1, "invalid month")
	}
	d, convErr := strconv.Atoi(rest[4:6])
	if convErr != nil {
		return 0, 0, 0, s, parseErr(s, len(s)-len(rest)+4, "invalid day")
	}
	return year, time.Month(m), d, rest[6:], nil
}

// scanTime consumes "HH:MM[:SS[.fffffffff]]" and returns the unconsumed
// remainder (which may hold a following offset or zone suffix).
func scanTime(s string) (hour, minute, second, nano int, rest string, err error) {
	if len(s) < 5 || s[2] != ':' {
		return 0, 0, 0, 0, s, parseErr(s, 0, "expected 'HH:MM'")
	}
	hour, convErr := strconv.Atoi(s[0:2])
	if convErr != nil {
		return 0, 0, 0, 0, s, parseErr(s, 0, "invalid hour")
	}
	minute, convErr = strconv.Atoi(s[3:5])
	if convErr != nil {
		return 0, 0, 0, 0, s, parseErr(s, 3, "invalid minute")
	}
	rest = s[5:]
	if len(rest) >= 3 && rest[0] == ':' && isDigit(rest[1]) && isDigit(rest[2]) {
		second, convErr = strconv.Atoi(rest[1:3])
		if convErr != nil {
			return 0, 0, 0, 0, s, parseErr(s, len(s)-len(rest)+1, "invalid second")
		}
		rest = rest[3:]
		if len(rest) > 1 && rest[0] == '.' {
			j := 1
			for j < len(rest) && isDigit(rest[j]) {
				j++
			}
			digits := rest[1:j]
			if len(digits) == 0 {
				return 0, 0, 0, 0, s, parseErr(s, len(s)-len(rest)+1, "expected fractional digits")
			}
			for len(digits) < 9 {
				digits += "0"
			}
			digits = digits[:9]
			n, convErr := strconv.Atoi(digits)
			if convErr != nil {
				return 0, 0, 0, 0, s, parseErr(s, len(s)-len(rest)+1, "invalid fraction")
			}
			nano = n
			rest = rest[j:]
		}
	}
	return hour, minute, second, nano, rest, nil
}

// splitLocalAndOffset splits an offset-date-time string into its local
// date-time prefix and offset suffix, honoring "Z" and "±HH:MM[:SS]".
func splitLocalAndOffset(s string) (local, offset string, err error) {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return s[:len(s)-1], "Z", nil
	}
	idx := strings.LastIndexAny(s, "+-")
	// The date portion may itself start with '-' or '+' for expanded years;
	// only consider a sign after the 'T' separator as the offset boundary.
	t := strings.IndexAny(s, "Tt")
	if t < 0 || idx <= t {
		return "", "", parseErr(s, 0, "expected an offset suffix")
	}
	return s[:idx], s[idx:], nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isoWeek returns the ISO week-numbering year, week number (1..53), and
// ISO weekday (1=Monday..7=Sunday) for d.
func isoWeek(d civil.LocalDate) (weekYear, week, isoDow int) {
	dow := int(d.Weekday())
	if dow == 0 {
		dow = 7
	}
	// Move to the Thursday of this ISO week; its calendar year is the ISO
	// week-numbering year.
	thursday, _ := d.PlusDays(int64(4 - dow))
	weekYear = thursday.Year()
	jan1, _ := civil.NewLocalDate(weekYear, time.January, 1)
	week = int((thursday.ToEpochDay()-jan1.ToEpochDay())/7) + 1
	return weekYear, week, dow
}

// dateFromISOWeek is the inverse of isoWeek.
func dateFromISOWeek(weekYear, week, isoDow int) (civil.LocalDate, error) {
	jan4, err := civil.NewLocalDate(weekYear, time.January, 4)
	if err != nil {
		return civil.LocalDate{}, err
	}
	jan4Dow := int(jan4.Weekday())
	if jan4Dow == 0 {
		jan4Dow = 7
	}
	weekOneMonday, err := jan4.PlusDays(int64(1 - jan4Dow))
	if err != nil {
		return civil.LocalDate{}, err
	}
	return weekOneMonday.PlusDays(int64((week-1)*7 + (isoDow - 1)))
}
