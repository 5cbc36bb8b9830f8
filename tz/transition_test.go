package tz

import (
	"testing"
	"time"

	"github.com/civiltime/civiltime/civil"
)

func mustDate(t *testing.T, y, m, d int) civil.LocalDate {
	t.Helper()
	date, err := civil.NewLocalDate(y, time.Month(m), d)
	if err != nil {
		t.Fatalf("NewLocalDate(%d, %d, %d): %v", y, m, d, err)
	}
	return date
}

func mustTime(t *testing.T, h, m, s int) civil.LocalTime {
	t.Helper()
	lt, err := civil.NewLocalTime(h, m, s, 0)
	if err != nil {
		t.Fatalf("NewLocalTime(%d, %d, %d): %v", h, m, s, err)
	}
	return lt
}

func mustOffsetHours(t *testing.T, hours int) civil.ZoneOffset {
	t.Helper()
	off, err := civil.ZoneOffsetOfHours(hours)
	if err != nil {
		t.Fatalf("ZoneOffsetOfHours(%d): %v", hours, err)
	}
	return off
}

// A spring-forward gap: 2024-03-31 01:00 Europe/Paris-style, +1:00 -> +2:00.
func springGap(t *testing.T) Transition {
	local := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 0, 0))
	return Transition{
		TransitionLocal: local,
		OffsetBefore:    mustOffsetHours(t, 1),
		OffsetAfter:     mustOffsetHours(t, 2),
	}
}

// An autumn overlap: 2024-10-27 03:00 -> 02:00, +2:00 -> +1:00.
func autumnOverlap(t *testing.T) Transition {
	local := civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 3, 0, 0))
	return Transition{
		TransitionLocal: local,
		OffsetBefore:    mustOffsetHours(t, 2),
		OffsetAfter:     mustOffsetHours(t, 1),
	}
}

func TestTransitionIsGapIsOverlap(t *testing.T) {
	gap := springGap(t)
	if !gap.IsGap() {
		t.Error("springGap.IsGap() = false, want true")
	}
	if gap.IsOverlap() {
		t.Error("springGap.IsOverlap() = true, want false")
	}

	overlap := autumnOverlap(t)
	if !overlap.IsOverlap() {
		t.Error("autumnOverlap.IsOverlap() = false, want true")
	}
	if overlap.IsGap() {
		t.Error("autumnOverlap.IsGap() = true, want false")
	}
}

func TestTransitionDuration(t *testing.T) {
	gap := springGap(t)
	if got := gap.Duration().Seconds(); got != 3600 {
		t.Errorf("springGap.Duration().Seconds() = %d, want 3600", got)
	}
	overlap := autumnOverlap(t)
	if got := overlap.Duration().Seconds(); got != -3600 {
		t.Errorf("autumnOverlap.Duration().Seconds() = %d, want -3600", got)
	}
}

func TestTransitionDateTimeAfter(t *testing.T) {
	gap := springGap(t)
	// 2024-03-31 02:00 + 1h -> 03:00.
	want := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 3, 0, 0))
	if got := gap.DateTimeAfter(); !got.Equal(want) {
		t.Errorf("springGap.DateTimeAfter() = %v, want %v", got, want)
	}

	overlap := autumnOverlap(t)
	// 2024-10-27 03:00 - 1h -> 02:00.
	want = civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 2, 0, 0))
	if got := overlap.DateTimeAfter(); !got.Equal(want) {
		t.Errorf("autumnOverlap.DateTimeAfter() = %v, want %v", got, want)
	}
}

func TestTransitionCompareByInstant(t *testing.T) {
	gap := springGap(t)
	overlap := autumnOverlap(t)
	if gap.Compare(overlap) >= 0 {
		t.Error("springGap should compare before autumnOverlap")
	}
	if overlap.Compare(gap) <= 0 {
		t.Error("autumnOverlap should compare after springGap")
	}
	if gap.Compare(gap) != 0 {
		t.Error("gap.Compare(gap) != 0")
	}
}

func TestTransitionRuleMaterializeForLastSundayInMonth(t *testing.T) {
	// Last Sunday in March, 01:00 UTC: the classic EU spring-forward rule.
	rule := TransitionRule{
		Month:               3,
		DayOfMonthIndicator: -1,
		DayOfWeek:           time.Sunday,
		HasDOW:              true,
		LocalTime:           mustTime(t, 1, 0, 0),
		TimeDefinition:      TimeDefUTC,
		OffsetBefore:        mustOffsetHours(t, 1),
		OffsetAfter:         mustOffsetHours(t, 2),
	}
	transition, err := rule.MaterializeFor(2024)
	if err != nil {
		t.Fatal(err)
	}
	// 2024-03-31 is the last Sunday of March 2024. 01:00 UTC = 02:00 at
	// OffsetBefore (+1:00).
	want := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 0, 0))
	if !transition.TransitionLocal.Equal(want) {
		t.Errorf("TransitionLocal = %v, want %v", transition.TransitionLocal, want)
	}
}

func TestTransitionRuleMaterializeForLastSundayInOctober(t *testing.T) {
	rule := TransitionRule{
		Month:               10,
		DayOfMonthIndicator: -1,
		DayOfWeek:           time.Sunday,
		HasDOW:              true,
		LocalTime:           mustTime(t, 1, 0, 0),
		TimeDefinition:      TimeDefUTC,
		OffsetBefore:        mustOffsetHours(t, 2),
		OffsetAfter:         mustOffsetHours(t, 1),
	}
	transition, err := rule.MaterializeFor(2024)
	if err != nil {
		t.Fatal(err)
	}
	// 2024-10-27 is the last Sunday of October 2024. 01:00 UTC = 03:00 at
	// OffsetBefore (+2:00).
	want := civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 3, 0, 0))
	if !transition.TransitionLocal.Equal(want) {
		t.Errorf("TransitionLocal = %v, want %v", transition.TransitionLocal, want)
	}
	if !transition.IsOverlap() {
		t.Error("expected an overlap transition")
	}
}

func TestTransitionRuleMaterializeForWallTimeDefinition(t *testing.T) {
	// US-style: second Sunday in March, 02:00 wall clock (interpreted at
	// OffsetBefore directly, no translation needed).
	rule := TransitionRule{
		Month:               3,
		DayOfMonthIndicator: 8,
		DayOfWeek:           time.Sunday,
		HasDOW:              true,
		LocalTime:           mustTime(t, 2, 0, 0),
		TimeDefinition:      TimeDefWall,
		OffsetBefore:        mustOffsetHours(t, -5),
		OffsetAfter:         mustOffsetHours(t, -4),
	}
	transition, err := rule.MaterializeFor(2024)
	if err != nil {
		t.Fatal(err)
	}
	// Second Sunday of March 2024 is March 10.
	want := civil.NewLocalDateTime(mustDate(t, 2024, 3, 10), mustTime(t, 2, 0, 0))
	if !transition.TransitionLocal.Equal(want) {
		t.Errorf("TransitionLocal = %v, want %v", transition.TransitionLocal, want)
	}
}

func TestTimeDefinitionString(t *testing.T) {
	if got := TimeDefUTC.String(); got != "UTC" {
		t.Errorf("TimeDefUTC.String() = %q, want UTC", got)
	}
	if got := TimeDefinition(99).String(); got != "UNKNOWN" {
		t.Errorf("String() = %q, want UNKNOWN", got)
	}
}
