package tz

import (
	"testing"
	"time"

	"github.com/civiltime/civiltime/civil"
)

func mustInstant(t *testing.T, epochSecond int64) civil.Instant {
	t.Helper()
	i, err := civil.InstantFromEpochSecond(epochSecond, 0)
	if err != nil {
		t.Fatalf("InstantFromEpochSecond(%d): %v", epochSecond, err)
	}
	return i
}

func TestFixedRules(t *testing.T) {
	offset := mustOffsetHours(t, 5)
	r := FixedRules(offset)
	if !r.IsFixedOffset() {
		t.Error("IsFixedOffset() = false, want true")
	}
	if got := r.FixedOffset(); !got.Equal(offset) {
		t.Errorf("FixedOffset() = %v, want %v", got, offset)
	}
	if got := r.OffsetAtInstant(mustInstant(t, 0)); !got.Equal(offset) {
		t.Errorf("OffsetAtInstant() = %v, want %v", got, offset)
	}
	local := civil.NewLocalDateTime(mustDate(t, 2024, 1, 1), mustTime(t, 0, 0, 0))
	valid := r.ValidOffsets(local)
	if len(valid) != 1 || !valid[0].Equal(offset) {
		t.Errorf("ValidOffsets() = %v, want [%v]", valid, offset)
	}
}

func TestNewRulesLengthValidation(t *testing.T) {
	off1 := mustOffsetHours(t, 1)
	off2 := mustOffsetHours(t, 2)
	if _, err := NewRules(nil, []civil.ZoneOffset{off1, off2}, nil, []civil.ZoneOffset{off1}, nil); err == nil {
		t.Error("expected error for mismatched standardOffsets length")
	}
	if _, err := NewRules(nil, []civil.ZoneOffset{off1}, nil, []civil.ZoneOffset{off1, off2}, nil); err == nil {
		t.Error("expected error for mismatched wallOffsets length")
	}
}

func TestNewRulesTransitionOrderValidation(t *testing.T) {
	off1 := mustOffsetHours(t, 1)
	off2 := mustOffsetHours(t, 2)
	off3 := mustOffsetHours(t, 3)
	_, err := NewRules(nil, []civil.ZoneOffset{off1},
		[]int64{100, 100}, []civil.ZoneOffset{off1, off2, off3}, nil)
	if err == nil {
		t.Error("expected error for non-increasing savingsTransitions")
	}
}

// explicitOnlyRules builds a synthetic zone with one explicit DST-onset
// transition at 2024-03-31T01:00:00Z (+1:00 -> +2:00) and no recurring tail.
func explicitOnlyRules(t *testing.T) *Rules {
	t.Helper()
	off1 := mustOffsetHours(t, 1)
	off2 := mustOffsetHours(t, 2)
	r, err := NewRules(nil, []civil.ZoneOffset{off1}, []int64{1711846800}, []civil.ZoneOffset{off1, off2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRulesValidOffsetsAroundExplicitGap(t *testing.T) {
	r := explicitOnlyRules(t)

	before := civil.NewLocalDateTime(mustDate(t, 2024, 1, 15), mustTime(t, 12, 0, 0))
	if valid := r.ValidOffsets(before); len(valid) != 1 || !valid[0].Equal(mustOffsetHours(t, 1)) {
		t.Errorf("ValidOffsets(before) = %v, want [+01:00]", valid)
	}

	inGap := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 30, 0))
	if valid := r.ValidOffsets(inGap); len(valid) != 0 {
		t.Errorf("ValidOffsets(inGap) = %v, want empty", valid)
	}

	after := civil.NewLocalDateTime(mustDate(t, 2024, 6, 1), mustTime(t, 12, 0, 0))
	if valid := r.ValidOffsets(after); len(valid) != 1 || !valid[0].Equal(mustOffsetHours(t, 2)) {
		t.Errorf("ValidOffsets(after) = %v, want [+02:00]", valid)
	}
}

func TestRulesTransitionAtGap(t *testing.T) {
	r := explicitOnlyRules(t)
	inGap := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 30, 0))
	tr, ok := r.TransitionAt(inGap)
	if !ok {
		t.Fatal("TransitionAt(inGap) ok = false, want true")
	}
	if !tr.IsGap() {
		t.Error("TransitionAt(inGap) is not a gap")
	}

	outside := civil.NewLocalDateTime(mustDate(t, 2024, 1, 1), mustTime(t, 0, 0, 0))
	if _, ok := r.TransitionAt(outside); ok {
		t.Error("TransitionAt(outside) ok = true, want false")
	}
}

func TestRulesOffsetAtInstantExplicit(t *testing.T) {
	r := explicitOnlyRules(t)
	beforeTransition := mustInstant(t, 1711846800-1)
	if got := r.OffsetAtInstant(beforeTransition); !got.Equal(mustOffsetHours(t, 1)) {
		t.Errorf("OffsetAtInstant(before) = %v, want +01:00", got)
	}
	atOrAfterTransition := mustInstant(t, 1711846800)
	if got := r.OffsetAtInstant(atOrAfterTransition); !got.Equal(mustOffsetHours(t, 2)) {
		t.Errorf("OffsetAtInstant(at) = %v, want +02:00", got)
	}
}

func TestRulesNextTransition(t *testing.T) {
	r := explicitOnlyRules(t)
	before := mustInstant(t, 1711846800-1)
	tr, ok := r.NextTransition(before)
	if !ok {
		t.Fatal("NextTransition(before) ok = false, want true")
	}
	if tr.Instant().EpochSecond() != 1711846800 {
		t.Errorf("NextTransition instant = %d, want 1711846800", tr.Instant().EpochSecond())
	}

	after := mustInstant(t, 1711846800+1)
	if _, ok := r.NextTransition(after); ok {
		t.Error("NextTransition(after) ok = true, want false (no lastRules)")
	}
}

// recurringOnlyRules builds a synthetic EU-style zone with no explicit
// transitions, only a recurring last-Sunday-in-March/October tail.
func recurringOnlyRules(t *testing.T) *Rules {
	t.Helper()
	off1 := mustOffsetHours(t, 1)
	off2 := mustOffsetHours(t, 2)
	springRule := TransitionRule{
		Month: 3, DayOfMonthIndicator: -1, DayOfWeek: time.Sunday, HasDOW: true,
		LocalTime: mustTime(t, 1, 0, 0), TimeDefinition: TimeDefUTC,
		OffsetBefore: off1, OffsetAfter: off2,
	}
	fallRule := TransitionRule{
		Month: 10, DayOfMonthIndicator: -1, DayOfWeek: time.Sunday, HasDOW: true,
		LocalTime: mustTime(t, 1, 0, 0), TimeDefinition: TimeDefUTC,
		OffsetBefore: off2, OffsetAfter: off1,
	}
	r, err := NewRules(nil, []civil.ZoneOffset{off1}, nil, []civil.ZoneOffset{off1}, []TransitionRule{springRule, fallRule})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRulesOffsetAtInstantFromLastRules(t *testing.T) {
	r := recurringOnlyRules(t)

	winter := mustInstant(t, 1705320000) // 2024-01-15T12:00:00Z
	if got := r.OffsetAtInstant(winter); !got.Equal(mustOffsetHours(t, 1)) {
		t.Errorf("OffsetAtInstant(winter) = %v, want +01:00", got)
	}

	summer := mustInstant(t, 1719835200) // 2024-07-01T12:00:00Z
	if got := r.OffsetAtInstant(summer); !got.Equal(mustOffsetHours(t, 2)) {
		t.Errorf("OffsetAtInstant(summer) = %v, want +02:00", got)
	}
}

func TestRulesValidOffsetsFromLastRules(t *testing.T) {
	r := recurringOnlyRules(t)

	summerLocal := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	valid := r.ValidOffsets(summerLocal)
	if len(valid) != 1 || !valid[0].Equal(mustOffsetHours(t, 2)) {
		t.Errorf("ValidOffsets(summerLocal) = %v, want [+02:00]", valid)
	}

	winterLocal := civil.NewLocalDateTime(mustDate(t, 2024, 1, 15), mustTime(t, 12, 0, 0))
	valid = r.ValidOffsets(winterLocal)
	if len(valid) != 1 || !valid[0].Equal(mustOffsetHours(t, 1)) {
		t.Errorf("ValidOffsets(winterLocal) = %v, want [+01:00]", valid)
	}

	// 2024-10-27 02:00-03:00 is the autumn overlap (occurs twice).
	overlapLocal := civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 2, 30, 0))
	valid = r.ValidOffsets(overlapLocal)
	if len(valid) != 2 {
		t.Errorf("ValidOffsets(overlapLocal) = %v, want two offsets", valid)
	}
}

func TestRulesStandardOffset(t *testing.T) {
	r := explicitOnlyRules(t)
	if got := r.StandardOffset(mustInstant(t, 0)); !got.Equal(mustOffsetHours(t, 1)) {
		t.Errorf("StandardOffset() = %v, want +01:00", got)
	}
}

func TestRulesTransitionRecords(t *testing.T) {
	r := explicitOnlyRules(t)
	records := r.SavingsTransitionRecords()
	if len(records) != 1 {
		t.Fatalf("len(SavingsTransitionRecords()) = %d, want 1", len(records))
	}
	if records[0].EpochSecond != 1711846800 {
		t.Errorf("EpochSecond = %d, want 1711846800", records[0].EpochSecond)
	}
	if !records[0].Before.Equal(mustOffsetHours(t, 1)) || !records[0].After.Equal(mustOffsetHours(t, 2)) {
		t.Errorf("Before/After = %v/%v, want +01:00/+02:00", records[0].Before, records[0].After)
	}

	fixed := FixedRules(mustOffsetHours(t, 0))
	if got := fixed.SavingsTransitionRecords(); got != nil {
		t.Errorf("SavingsTransitionRecords() on fixed rules = %v, want nil", got)
	}
}
