package zonefile

import (
	"bytes"
	"testing"
	"time"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/tz"
)

func mustOffset(t *testing.T, hours, minutes int) civil.ZoneOffset {
	t.Helper()
	o, err := civil.ZoneOffsetOfHoursMinutes(hours, minutes)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestEncodeDecodeFixedRules(t *testing.T) {
	in := map[string]*tz.Rules{
		"Etc/UTC": tz.FixedRules(civil.UTC),
	}
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := out["Etc/UTC"]
	if !ok {
		t.Fatal("missing Etc/UTC after round trip")
	}
	if !r.IsFixedOffset() {
		t.Fatal("expected fixed rules")
	}
	if r.FixedOffset() != civil.UTC {
		t.Errorf("FixedOffset() = %v, want UTC", r.FixedOffset())
	}
}

func TestEncodeDecodeHistoricalRules(t *testing.T) {
	cet := mustOffset(t, 1, 0)
	cest := mustOffset(t, 2, 0)

	// No historical transitions: the whole offset history comes from a
	// recurring EU-style DST tail (spring forward/fall back on the last
	// Sunday of March/October).
	lastSpring := tz.TransitionRule{
		Month:               3,
		DayOfMonthIndicator: -1,
		DayOfWeek:           time.Sunday,
		HasDOW:              true,
		LocalTime:           mustLocalTime(t, 1, 0),
		TimeDefinition:      tz.TimeDefUTC,
		StandardOffset:      cet,
		OffsetBefore:        cet,
		OffsetAfter:         cest,
	}
	lastAutumn := tz.TransitionRule{
		Month:               10,
		DayOfMonthIndicator: -1,
		DayOfWeek:           time.Sunday,
		HasDOW:              true,
		LocalTime:           mustLocalTime(t, 1, 0),
		TimeDefinition:      tz.TimeDefUTC,
		StandardOffset:      cet,
		OffsetBefore:        cest,
		OffsetAfter:         cet,
	}

	rules, err := tz.NewRules(
		nil, []civil.ZoneOffset{cet},
		nil, []civil.ZoneOffset{cet},
		[]tz.TransitionRule{lastSpring, lastAutumn},
	)
	if err != nil {
		t.Fatal(err)
	}

	in := map[string]*tz.Rules{"Europe/Testland": rules}
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := out["Europe/Testland"]
	if !ok {
		t.Fatal("missing Europe/Testland after round trip")
	}

	winter := civil.NewOffsetDateTime(civil.NewLocalDateTime(mustDate(t, 2020, time.January, 15), mustLocalTime(t, 12, 0)), cet).ToInstant()
	if got := got.OffsetAtInstant(winter); got != cet {
		t.Errorf("OffsetAtInstant(winter) = %v, want CET", got)
	}
	summer := civil.NewOffsetDateTime(civil.NewLocalDateTime(mustDate(t, 2020, time.July, 15), mustLocalTime(t, 12, 0)), cest).ToInstant()
	if got := got.OffsetAtInstant(summer); got != cest {
		t.Errorf("OffsetAtInstant(summer) = %v, want CEST", got)
	}
	if got := len(got.LastRules()); got != 2 {
		t.Errorf("len(LastRules()) = %d, want 2", got)
	}
}

func mustDate(t *testing.T, y int, m time.Month, d int) civil.LocalDate {
	t.Helper()
	date, err := civil.NewLocalDate(y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return date
}

func mustLocalTime(t *testing.T, hour, minute int) civil.LocalTime {
	t.Helper()
	lt, err := civil.NewLocalTime(hour, minute, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return lt
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(Magic[:])
	buf.WriteByte(0xFF)
	if _, err := Decode(&buf); err == nil {
		t.Fatal("expected error for unknown major version")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("NOPE")
	if _, err := Decode(&buf); err == nil {
		t.Fatal("expected error for bad magic")
	}
}
