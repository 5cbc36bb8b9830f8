package civil

import (
	"testing"
	"time"
)

func TestOffsetDateTimeToInstantRoundTrip(t *testing.T) {
	local := mustLocalDateTime(t, 2024, time.June, 15, 13, 0, 0)
	offset, err := ZoneOffsetOfHours(2)
	if err != nil {
		t.Fatal(err)
	}
	odt := NewOffsetDateTime(local, offset)
	instant := odt.ToInstant()
	back := instant.AtOffset(offset)
	if !back.Equal(odt) {
		t.Errorf("round trip = %v, want %v", back, odt)
	}
}

func TestOffsetDateTimeWithOffsetSameInstant(t *testing.T) {
	local := mustLocalDateTime(t, 2024, time.June, 15, 13, 0, 0)
	utcOffset := UTC
	odt := NewOffsetDateTime(local, utcOffset)

	plusTwo, err := ZoneOffsetOfHours(2)
	if err != nil {
		t.Fatal(err)
	}
	shifted := odt.WithOffsetSameInstant(plusTwo)
	if !odt.IsEqualInstant(shifted) {
		t.Error("WithOffsetSameInstant should preserve the instant")
	}
	if got := shifted.Time().Hour(); got != 15 {
		t.Errorf("shifted.Time().Hour() = %d, want 15", got)
	}
}

func TestOffsetDateTimeWithOffsetSameLocal(t *testing.T) {
	local := mustLocalDateTime(t, 2024, time.June, 15, 13, 0, 0)
	odt := NewOffsetDateTime(local, UTC)
	plusTwo, err := ZoneOffsetOfHours(2)
	if err != nil {
		t.Fatal(err)
	}
	shifted := odt.WithOffsetSameLocal(plusTwo)
	if odt.IsEqualInstant(shifted) {
		t.Error("WithOffsetSameLocal should change the instant")
	}
	if shifted.Time().Hour() != 13 {
		t.Errorf("shifted.Time().Hour() = %d, want 13 (unchanged)", shifted.Time().Hour())
	}
}

func TestOffsetDateTimeCompareByInstant(t *testing.T) {
	local := mustLocalDateTime(t, 2024, time.June, 15, 13, 0, 0)
	plusTwo, _ := ZoneOffsetOfHours(2)
	a := NewOffsetDateTime(local, UTC)
	b := NewOffsetDateTime(local, plusTwo)
	// Same local time, but b is 2 hours behind a's instant since its
	// offset is larger, so b denotes an earlier instant.
	if a.Compare(b) <= 0 {
		t.Errorf("a.Compare(b) = %d, want > 0 (a denotes a later instant)", a.Compare(b))
	}
}

func TestOffsetDateTimeString(t *testing.T) {
	local := mustLocalDateTime(t, 2008, time.June, 30, 13, 45, 30)
	plusTwo, _ := ZoneOffsetOfHours(2)
	odt := NewOffsetDateTime(local, plusTwo)
	if got, want := odt.String(), "2008-06-30T13:45:30+02:00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
