// Package tzexpand resolves tzdata's day-of-month indicators ("lastSun",
// "Sun>=8", "Sun<=25", a bare day number) into concrete calendar dates, and
// expands a rule's open FROM/TO year range into one concrete RuleLine per
// occurrence within a bounded window. zonebuild uses both to materialize
// the explicit, historical portion of a zone's offset history.
package tzexpand

import (
	"fmt"
	"sort"
	"time"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/internal/unixtime"
	"github.com/civiltime/civiltime/tzdata"
)

// Earliest returns the epoch second of the earliest instant consistent
// with u, treating any missing trailing fields as their earliest possible
// value (per tzdata's own rule for UNTIL columns).
func Earliest(u tzdata.Until) int64 {
	e := earliest(u)
	d := e.Time.Duration
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	return unixtime.FromDateTime(e.Year, int(e.Month), e.Day.Num, hours, minutes, seconds)
}

func earliest(u tzdata.Until) tzdata.Until {
	if !u.Defined {
		return u
	}

	if !u.Parts.Has(tzdata.UntilMonthOnly) {
		u.Month = time.January
		u.Parts = u.Parts.Set(tzdata.UntilMonthOnly)
	}

	if u.Parts.Has(tzdata.UntilDayOnly) {
		if u.Day.Form != tzdata.DayFormDayNum {
			var num int
			u.Year, u.Month, num = DayOfMonth(u.Year, u.Month, u.Day)
			u.Day = tzdata.Day{Form: tzdata.DayFormDayNum, Num: num}
		}
	} else {
		u.Day = tzdata.Day{Form: tzdata.DayFormDayNum, Num: 1}
		u.Parts = u.Parts.Set(tzdata.UntilDayOnly)
	}

	if !u.Parts.Has(tzdata.UntilTimeOnly) {
		u.Time = tzdata.Time{Duration: 0, Form: tzdata.WallClock}
		u.Parts = u.Parts.Set(tzdata.UntilTimeOnly)
	}

	return u
}

// DayOfMonth resolves d, tzdata's day-of-month indicator, into a concrete
// (year, month, day) for the given (year, month). The year and month can
// change when d.Form is DayFormAfter or DayFormBefore and the resolved
// weekday crosses a month boundary (e.g. "lastSun" logic never does, but
// "Sun>=29" in a 30-day month can, since civil.NextOrSame searches forward
// from the indicated day).
func DayOfMonth(year int, month time.Month, d tzdata.Day) (y int, m time.Month, day int) {
	switch d.Form {
	case tzdata.DayFormDayNum:
		return year, month, d.Num
	case tzdata.DayFormLast:
		first, err := civil.NewLocalDate(year, month, 1)
		if err != nil {
			panic(fmt.Errorf("tzexpand: %w", err))
		}
		last, err := first.Adjust(civil.LastInMonth(d.Day))
		if err != nil {
			panic(fmt.Errorf("tzexpand: %w", err))
		}
		return last.Year(), last.Month(), last.Day()
	case tzdata.DayFormAfter:
		start, err := civil.NewLocalDate(year, month, d.Num)
		if err != nil {
			panic(fmt.Errorf("tzexpand: %w", err))
		}
		found, err := start.Adjust(civil.NextOrSame(d.Day))
		if err != nil {
			panic(fmt.Errorf("tzexpand: %w", err))
		}
		return found.Year(), found.Month(), found.Day()
	case tzdata.DayFormBefore:
		start, err := civil.NewLocalDate(year, month, d.Num)
		if err != nil {
			panic(fmt.Errorf("tzexpand: %w", err))
		}
		found, err := start.Adjust(civil.PreviousOrSame(d.Day))
		if err != nil {
			panic(fmt.Errorf("tzexpand: %w", err))
		}
		return found.Year(), found.Month(), found.Day()
	}
	panic(fmt.Errorf("tzexpand: invalid DayForm: %v", d.Form))
}

var (
	// EpochMin is the earliest moment zonebuild materializes explicit
	// history for, chosen to match the lower bound of the 32-bit UNIX
	// epoch (mirroring what zic itself uses when a rule's FROM is "min").
	EpochMin = Moment{Year: 1902, Month: time.January, Day: 1, Time: tzdata.Time{Form: tzdata.WallClock}}
	// Epoch0 is the UNIX epoch.
	Epoch0 = Moment{Year: 1970, Month: time.January, Day: 1, Time: tzdata.Time{Form: tzdata.WallClock}}
	// EpochMax is the latest moment zonebuild materializes explicit
	// history for, the upper bound of the 32-bit UNIX epoch.
	EpochMax = Moment{Year: 2038, Month: time.January, Day: 19, Time: tzdata.Time{Duration: 3*time.Hour + 14*time.Minute + 7*time.Second, Form: tzdata.WallClock}}
)

// Moment is a limit line with the year, month, and day expanded.
type Moment struct {
	Year  int
	Month time.Month
	Day   int
	Time  tzdata.Time
}

// ExpandRules expands every MinYear/MaxYear-bounded RuleLine in r into one
// concrete per-year RuleLine for each occurrence within [min, max],
// sorted by effective date.
func ExpandRules(min, max Moment, r []tzdata.RuleLine) []tzdata.RuleLine {
	var tr []tzdata.RuleLine
	for _, rule := range r {
		tr = append(tr, expandRule(min, max, rule)...)
	}

	sort.Slice(tr, func(i, j int) bool {
		if tr[i].From != tr[j].From {
			return tr[i].From < tr[j].From
		}
		if tr[i].In != tr[j].In {
			return tr[i].In < tr[j].In
		}
		return tr[i].On.Num < tr[j].On.Num
	})

	return tr
}

func expandRule(min, max Moment, rl tzdata.RuleLine) []tzdata.RuleLine {
	if rl.From == tzdata.MinYear {
		rl.From = tzdata.Year(min.Year)
	}
	if rl.To == tzdata.MaxYear {
		rl.To = tzdata.Year(max.Year)
	}

	var tr []tzdata.RuleLine
	for year := rl.From; year <= rl.To; year++ {
		y, m, d := DayOfMonth(int(year), rl.In, rl.On)
		r := tzdata.RuleLine{
			Name:   rl.Name,
			From:   tzdata.Year(y),
			To:     tzdata.Year(y),
			In:     m,
			On:     tzdata.Day{Form: tzdata.DayFormDayNum, Num: d},
			At:     rl.At,
			Save:   rl.Save,
			Letter: rl.Letter,
		}

		if int(r.From) < min.Year || int(r.From) > max.Year {
			continue
		}
		if int(r.From) == max.Year && r.In > max.Month {
			continue
		}
		if int(r.From) == min.Year && r.In < min.Month {
			continue
		}
		if int(r.From) == max.Year && r.In == max.Month && r.On.Num > max.Day {
			continue
		}
		if int(r.From) == min.Year && r.In == min.Month && r.On.Num < min.Day {
			continue
		}
		tr = append(tr, r)
	}
	return tr
}
