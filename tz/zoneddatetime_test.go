package tz

import (
	"testing"

	"github.com/civiltime/civiltime/civil"
)

func euZone(t *testing.T) ID {
	t.Helper()
	LoadRegistry(map[string]*Rules{"Test/EU": recurringOnlyRules(t)})
	return UnsafeZoneID("Test/EU")
}

func TestOfUnambiguousLocal(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	if !z.Offset().Equal(mustOffsetHours(t, 2)) {
		t.Errorf("Offset() = %v, want +02:00", z.Offset())
	}
	if !z.Local().Equal(local) {
		t.Errorf("Local() = %v, want %v", z.Local(), local)
	}
}

func TestOfGapWithStrictResolverFails(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 30, 0))
	if _, err := Of(local, zone, StrictResolver); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*DateTimeNonexistentError); !ok {
		t.Errorf("error type = %T, want *DateTimeNonexistentError", err)
	}
}

func TestOfGapWithPushForwardResolver(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 30, 0))
	z, err := Of(local, zone, PushForwardResolver)
	if err != nil {
		t.Fatal(err)
	}
	if !z.Offset().Equal(mustOffsetHours(t, 2)) {
		t.Errorf("Offset() = %v, want +02:00", z.Offset())
	}
	want := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 3, 30, 0))
	if !z.Local().Equal(want) {
		t.Errorf("Local() = %v, want %v", z.Local(), want)
	}
}

func TestOfInstant(t *testing.T) {
	zone := euZone(t)
	z, err := OfInstant(mustInstant(t, 1719835200), zone) // 2024-07-01T12:00:00Z
	if err != nil {
		t.Fatal(err)
	}
	if !z.Offset().Equal(mustOffsetHours(t, 2)) {
		t.Errorf("Offset() = %v, want +02:00", z.Offset())
	}
}

func TestOfOffsetDateTimeValidAndInvalid(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))

	valid := civil.NewOffsetDateTime(local, mustOffsetHours(t, 2))
	if _, err := OfOffsetDateTime(valid, zone); err != nil {
		t.Fatal(err)
	}

	invalid := civil.NewOffsetDateTime(local, mustOffsetHours(t, 5))
	if _, err := OfOffsetDateTime(invalid, zone); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*OffsetInvalidForZoneError); !ok {
		t.Errorf("error type = %T, want *OffsetInvalidForZoneError", err)
	}

	gapLocal := civil.NewLocalDateTime(mustDate(t, 2024, 3, 31), mustTime(t, 2, 30, 0))
	gapOdt := civil.NewOffsetDateTime(gapLocal, mustOffsetHours(t, 1))
	if _, err := OfOffsetDateTime(gapOdt, zone); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*DateTimeNonexistentError); !ok {
		t.Errorf("error type = %T, want *DateTimeNonexistentError", err)
	}
}

func TestWithZoneSameInstant(t *testing.T) {
	zone := euZone(t)
	utc := OfOffset(civil.UTC)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}

	converted, err := z.WithZoneSameInstant(utc)
	if err != nil {
		t.Fatal(err)
	}
	if !converted.ToInstant().Equal(z.ToInstant()) {
		t.Error("WithZoneSameInstant changed the instant")
	}
	wantLocal := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 10, 0, 0))
	if !converted.Local().Equal(wantLocal) {
		t.Errorf("converted.Local() = %v, want %v", converted.Local(), wantLocal)
	}
}

func TestWithZoneSameLocalRetainsOffsetWhenValid(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	same, err := z.WithZoneSameLocal(zone)
	if err != nil {
		t.Fatal(err)
	}
	if !same.Local().Equal(local) || !same.Offset().Equal(z.Offset()) {
		t.Errorf("WithZoneSameLocal(same zone) = %v, want unchanged", same)
	}
}

func TestWithEarlierAndLaterOffsetAtOverlap(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 2, 30, 0))
	odt := civil.NewOffsetDateTime(local, mustOffsetHours(t, 2))
	z, err := OfOffsetDateTime(odt, zone)
	if err != nil {
		t.Fatal(err)
	}

	earlier, err := z.WithEarlierOffsetAtOverlap()
	if err != nil {
		t.Fatal(err)
	}
	if !earlier.Offset().Equal(mustOffsetHours(t, 2)) {
		t.Errorf("WithEarlierOffsetAtOverlap() offset = %v, want +02:00", earlier.Offset())
	}

	later, err := z.WithLaterOffsetAtOverlap()
	if err != nil {
		t.Fatal(err)
	}
	if !later.Offset().Equal(mustOffsetHours(t, 1)) {
		t.Errorf("WithLaterOffsetAtOverlap() offset = %v, want +01:00", later.Offset())
	}
}

func TestZonedDateTimePlusDaysCrossesDSTEnd(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 10, 26), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	next, err := z.Plus(1, civil.Days)
	if err != nil {
		t.Fatal(err)
	}
	wantLocal := civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 12, 0, 0))
	if !next.Local().Equal(wantLocal) {
		t.Errorf("Plus(1, Days).Local() = %v, want %v", next.Local(), wantLocal)
	}
	if !next.Offset().Equal(mustOffsetHours(t, 1)) {
		t.Errorf("Plus(1, Days).Offset() = %v, want +01:00", next.Offset())
	}
}

func TestZonedDateTimePlusDurationCrossesDSTEnd(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 10, 26), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	next, err := z.PlusDuration(civil.DurationOfHours(24))
	if err != nil {
		t.Fatal(err)
	}
	wantLocal := civil.NewLocalDateTime(mustDate(t, 2024, 10, 27), mustTime(t, 11, 0, 0))
	if !next.Local().Equal(wantLocal) {
		t.Errorf("PlusDuration(24h).Local() = %v, want %v", next.Local(), wantLocal)
	}
	if !next.Offset().Equal(mustOffsetHours(t, 1)) {
		t.Errorf("PlusDuration(24h).Offset() = %v, want +01:00", next.Offset())
	}
}

func TestZonedDateTimeMinusUndoesPlus(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	forward, err := z.Plus(3, civil.Days)
	if err != nil {
		t.Fatal(err)
	}
	back, err := forward.Minus(3, civil.Days)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Local().Equal(z.Local()) {
		t.Errorf("Minus(Plus(x)) = %v, want %v", back.Local(), z.Local())
	}
}

func TestZonedDateTimeWith(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	changed, err := z.With(civil.DayOfMonth, 15)
	if err != nil {
		t.Fatal(err)
	}
	want := civil.NewLocalDateTime(mustDate(t, 2024, 7, 15), mustTime(t, 12, 0, 0))
	if !changed.Local().Equal(want) {
		t.Errorf("With(DayOfMonth, 15).Local() = %v, want %v", changed.Local(), want)
	}
}

func TestZonedDateTimeString(t *testing.T) {
	zone := euZone(t)
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	z, err := Of(local, zone, StrictResolver)
	if err != nil {
		t.Fatal(err)
	}
	want := "2024-07-01T12:00:00+02:00[Test/EU]"
	if got := z.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVerifyAndBuildRejectsInvalidOffset(t *testing.T) {
	zone := euZone(t)
	rules, err := zone.Rules()
	if err != nil {
		t.Fatal(err)
	}
	local := civil.NewLocalDateTime(mustDate(t, 2024, 7, 1), mustTime(t, 12, 0, 0))
	odt := civil.NewOffsetDateTime(local, mustOffsetHours(t, 9))
	if _, err := verifyAndBuild(odt, rules, zone); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*ResolverBrokenError); !ok {
		t.Errorf("error type = %T, want *ResolverBrokenError", err)
	}
}
