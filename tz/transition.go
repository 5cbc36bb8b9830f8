package tz

import (
	"fmt"
	"time"

	"github.com/civiltime/civiltime/civil"
)

// Transition is a single gap or overlap event: the boundary between two
// offset regimes for a zone. TransitionLocal is the last wall-clock moment
// just before the discontinuity, expressed at OffsetBefore.
type Transition struct {
	TransitionLocal civil.LocalDateTime
	OffsetBefore    civil.ZoneOffset
	OffsetAfter     civil.ZoneOffset
}

// Duration returns OffsetAfter - OffsetBefore, as a civil.Duration of whole
// seconds.
func (t Transition) Duration() civil.Duration {
	return civil.DurationOfSeconds(int64(t.OffsetAfter.TotalSeconds() - t.OffsetBefore.TotalSeconds()))
}

// IsGap reports whether the transition skips local time forward (spring
// DST onset or similar).
func (t Transition) IsGap() bool { return t.OffsetAfter.TotalSeconds() > t.OffsetBefore.TotalSeconds() }

// IsOverlap reports whether the transition repeats local time (autumn DST
// end or similar).
func (t Transition) IsOverlap() bool {
	return t.OffsetAfter.TotalSeconds() < t.OffsetBefore.TotalSeconds()
}

// Instant returns the UTC instant of the transition.
func (t Transition) Instant() civil.Instant {
	return civil.NewOffsetDateTime(t.TransitionLocal, t.OffsetBefore).ToInstant()
}

// DateTimeBefore returns the local date-time just before the transition, as
// seen under OffsetBefore. This equals TransitionLocal.
func (t Transition) DateTimeBefore() civil.LocalDateTime { return t.TransitionLocal }

// DateTimeAfter returns the local date-time just after the transition, as
// seen under OffsetAfter.
func (t Transition) DateTimeAfter() civil.LocalDateTime {
	d := t.Duration()
	after, err := t.TransitionLocal.Plus(d.Seconds(), civil.Seconds)
	if err != nil {
		panic(err)
	}
	return after
}

// Compare orders transitions by instant. Transitions with equal instants
// compare equal regardless of their offsets.
func (t Transition) Compare(other Transition) int {
	return t.Instant().Compare(other.Instant())
}

func (t Transition) String() string {
	kind := "transition"
	if t.IsGap() {
		kind = "gap"
	} else if t.IsOverlap() {
		kind = "overlap"
	}
	return fmt.Sprintf("%s %s %s->%s", kind, t.TransitionLocal, t.OffsetBefore, t.OffsetAfter)
}

// TimeDefinition declares how TransitionRule.LocalTime is to be interpreted
// when materializing a rule into a concrete Transition.
type TimeDefinition uint8

const (
	// TimeDefUTC interprets LocalTime as a UTC time-of-day.
	TimeDefUTC TimeDefinition = iota
	// TimeDefWall interprets LocalTime in the wall offset in force just
	// before the transition (OffsetBefore).
	TimeDefWall
	// TimeDefStandard interprets LocalTime in the zone's standard offset.
	TimeDefStandard
)

func (d TimeDefinition) String() string {
	switch d {
	case TimeDefUTC:
		return "UTC"
	case TimeDefWall:
		return "WALL"
	case TimeDefStandard:
		return "STANDARD"
	default:
		return "UNKNOWN"
	}
}

// TransitionRule is a template for a yearly recurring transition, used for
// the open-ended tail of a zone's rules beyond the last explicit
// transition.
type TransitionRule struct {
	Month int // 1..12

	// DayOfMonthIndicator selects the day: a positive value is that day
	// of the month; a negative value counts back from the month's last
	// day (-1 = last day, -2 = second-to-last, ...).
	DayOfMonthIndicator int

	// DayOfWeek is the weekday to adjust to; it applies only when HasDOW
	// is true, otherwise the rule fires on the exact day named by
	// DayOfMonthIndicator. When HasDOW is true and
	// DayOfMonthIndicator >= 0, the materialized day moves forward to
	// the next occurrence of DayOfWeek on or after the indicated day;
	// when DayOfMonthIndicator < 0, it moves backward to the occurrence
	// on or before.
	DayOfWeek time.Weekday
	HasDOW    bool

	LocalTime      civil.LocalTime
	TimeDefinition TimeDefinition

	StandardOffset civil.ZoneOffset
	OffsetBefore   civil.ZoneOffset
	OffsetAfter    civil.ZoneOffset
}

// MaterializeFor produces the concrete Transition that rule r produces in
// year y: resolve the day-of-month (honoring a negative indicator and an
// optional day-of-week adjustment), combine with the local time, then
// translate to the UTC-referenced TransitionLocal via the time
// definition.
func (r TransitionRule) MaterializeFor(year int) (Transition, error) {
	var day int
	if r.DayOfMonthIndicator < 0 {
		probe, err := civil.NewLocalDate(year, time.Month(r.Month), 1)
		if err != nil {
			return Transition{}, err
		}
		day = probe.LengthOfMonth() + 1 + r.DayOfMonthIndicator
	} else {
		day = r.DayOfMonthIndicator
	}
	date, err := civil.NewLocalDate(year, time.Month(r.Month), day)
	if err != nil {
		return Transition{}, err
	}
	if r.HasDOW {
		if r.DayOfMonthIndicator >= 0 {
			date, err = date.Adjust(civil.NextOrSame(r.DayOfWeek))
		} else {
			date, err = date.Adjust(civil.PreviousOrSame(r.DayOfWeek))
		}
		if err != nil {
			return Transition{}, err
		}
	}

	local := civil.NewLocalDateTime(date, r.LocalTime)

	// Translate local (interpreted per TimeDefinition) into the
	// TransitionLocal representation, which is always expressed at
	// OffsetBefore.
	var asOffsetBefore civil.LocalDateTime
	switch r.TimeDefinition {
	case TimeDefUTC:
		instant := civil.NewOffsetDateTime(local, civil.UTC).ToInstant()
		asOffsetBefore = instant.AtOffset(r.OffsetBefore).LocalDateTime()
	case TimeDefStandard:
		instant := civil.NewOffsetDateTime(local, r.StandardOffset).ToInstant()
		asOffsetBefore = instant.AtOffset(r.OffsetBefore).LocalDateTime()
	default: // TimeDefWall
		asOffsetBefore = local
	}

	return Transition{
		TransitionLocal: asOffsetBefore,
		OffsetBefore:    r.OffsetBefore,
		OffsetAfter:     r.OffsetAfter,
	}, nil
}
