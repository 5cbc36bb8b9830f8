package zonebuild

import (
	"testing"
	"time"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/tzdata"
)

func day(form tzdata.DayForm, num int, w time.Weekday) tzdata.Day {
	return tzdata.Day{Form: form, Num: num, Day: w}
}

func wall(d time.Duration) tzdata.Time { return tzdata.Time{Duration: d, Form: tzdata.WallClock} }

func TestBuildFixedZone(t *testing.T) {
	f := tzdata.File{
		ZoneLines: []tzdata.ZoneLine{
			{Name: "Etc/UTC", Offset: 0, Rules: tzdata.ZoneRules{Form: tzdata.ZoneRulesStandard}, Format: "UTC"},
		},
	}
	result, err := Build(f, 2030)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := result.Zones["Etc/UTC"]
	if !ok {
		t.Fatal("missing Etc/UTC")
	}
	if !r.IsFixedOffset() {
		t.Fatalf("expected Etc/UTC to be fixed offset")
	}
	if r.FixedOffset() != civil.UTC {
		t.Errorf("FixedOffset() = %v, want UTC", r.FixedOffset())
	}
}

func TestBuildRecurringZone(t *testing.T) {
	f := tzdata.File{
		RuleLines: []tzdata.RuleLine{
			{
				Name: "EU", From: 1981, To: tzdata.MaxYear, In: time.March,
				On: day(tzdata.DayFormLast, 0, time.Sunday), At: wall(1 * time.Hour),
				Save: tzdata.Time{Duration: 1 * time.Hour, Form: tzdata.DaylightSavingTime},
			},
			{
				Name: "EU", From: 1996, To: tzdata.MaxYear, In: time.October,
				On: day(tzdata.DayFormLast, 0, time.Sunday), At: wall(1 * time.Hour),
				Save: tzdata.Time{Duration: 0, Form: tzdata.WallClock},
			},
		},
		ZoneLines: []tzdata.ZoneLine{
			{
				Name: "Europe/Testland", Offset: 1 * time.Hour,
				Rules: tzdata.ZoneRules{Form: tzdata.ZoneRulesName, Name: "EU"},
				Format: "CE%sT",
			},
		},
	}

	result, err := Build(f, 2030)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := result.Zones["Europe/Testland"]
	if !ok {
		t.Fatal("missing Europe/Testland")
	}
	if r.IsFixedOffset() {
		t.Fatal("expected non-fixed rules")
	}
	if got := len(r.LastRules()); got != 2 {
		t.Fatalf("len(LastRules()) = %d, want 2", got)
	}

	cet := mustOffset(t, 1, 0)
	cest := mustOffset(t, 2, 0)

	winter := civil.NewOffsetDateTime(
		civil.NewLocalDateTime(mustDate(t, 2020, time.January, 15), mustLocalTime(t, 12, 0)), cet,
	).ToInstant()
	if got := r.OffsetAtInstant(winter); got != cet {
		t.Errorf("OffsetAtInstant(winter) = %v, want CET", got)
	}

	summer := civil.NewOffsetDateTime(
		civil.NewLocalDateTime(mustDate(t, 2020, time.July, 15), mustLocalTime(t, 12, 0)), cest,
	).ToInstant()
	if got := r.OffsetAtInstant(summer); got != cest {
		t.Errorf("OffsetAtInstant(summer) = %v, want CEST", got)
	}
}

func TestBuildLinksBecomeAliases(t *testing.T) {
	f := tzdata.File{
		ZoneLines: []tzdata.ZoneLine{
			{Name: "Etc/UTC", Offset: 0, Rules: tzdata.ZoneRules{Form: tzdata.ZoneRulesStandard}, Format: "UTC"},
		},
		LinkLines: []tzdata.LinkLine{
			{From: "Etc/UTC", To: "Etc/UCT"},
		},
	}
	result, err := Build(f, 2030)
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Aliases["Etc/UCT"]; got != "Etc/UTC" {
		t.Errorf("Aliases[Etc/UCT] = %q, want Etc/UTC", got)
	}
}

func mustOffset(t *testing.T, hours, minutes int) civil.ZoneOffset {
	t.Helper()
	o, err := civil.ZoneOffsetOfHoursMinutes(hours, minutes)
	if err != nil {
		t.Fatal(err)
	}
	return o
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
