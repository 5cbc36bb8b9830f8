package isofmt

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/civiltime/civiltime/civil"
	"github.com/civiltime/civiltime/tz"
)

func mustDate(t *testing.T, y int, m time.Month, d int) civil.LocalDate {
	t.Helper()
	date, err := civil.NewLocalDate(y, m, d)
	if err != nil {
		t.Fatalf("NewLocalDate(%d, %v, %d): %v", y, m, d, err)
	}
	return date
}

func TestFormatLocalDate(t *testing.T) {
	tests := []struct {
		name string
		date civil.LocalDate
		want string
	}{
		{"ordinary", mustDate(t, 2008, time.June, 30), "2008-06-30"},
		{"expanded positive", mustDate(t, 999999999, time.August, 6), "+999999999-08-06"},
		{"negative", mustDate(t, -44, time.March, 15), "-0044-03-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLocalDate(tt.date); got != tt.want {
				t.Errorf("FormatLocalDate() = %q, want %q", got, tt.want)
			}
			parsed, err := ParseLocalDate(tt.want)
			if err != nil {
				t.Fatalf("ParseLocalDate(%q): %v", tt.want, err)
			}
			if !parsed.Equal(tt.date) {
				t.Errorf("round trip: got %v, want %v", parsed, tt.date)
			}
		})
	}
}

func TestFormatBasicISODate(t *testing.T) {
	date := mustDate(t, 2008, time.June, 30)
	got, err := FormatBasicISODate(date)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20080630" {
		t.Errorf("FormatBasicISODate() = %q, want %q", got, "20080630")
	}
	parsed, err := ParseBasicISODate(got)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(date) {
		t.Errorf("round trip: got %v, want %v", parsed, date)
	}
}

func TestOrdinalDate(t *testing.T) {
	date := mustDate(t, 2008, time.June, 3)
	if got, want := date.DayOfYear(), 155; got != want {
		t.Fatalf("DayOfYear() = %d, want %d", got, want)
	}
	parsed, err := ParseOrdinalDate("2008-155")
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(date) {
		t.Errorf("ParseOrdinalDate(\"2008-155\") = %v, want %v", parsed, date)
	}
	if got := FormatOrdinalDate(date); got != "2008-155" {
		t.Errorf("FormatOrdinalDate() = %q, want %q", got, "2008-155")
	}
}

func TestWeekDate(t *testing.T) {
	date := mustDate(t, 2004, time.January, 27)
	got := FormatWeekDate(date)
	if got != "2004-W05-2" {
		t.Errorf("FormatWeekDate() = %q, want %q", got, "2004-W05-2")
	}
	parsed, err := ParseWeekDate(got)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(date) {
		t.Errorf("round trip: got %v, want %v", parsed, date)
	}
}

func TestLocalTimeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		h, m, s, n int
		want string
	}{
		{"minute precision", 13, 45, 0, 0, "13:45"},
		{"second precision", 13, 45, 30, 0, "13:45:30"},
		{"nano precision", 13, 45, 30, 123456789, "13:45:30.123456789"},
		{"trims trailing zeros", 13, 45, 30, 500000000, "13:45:30.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt, err := civil.NewLocalTime(tt.h, tt.m, tt.s, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if got := FormatLocalTime(lt); got != tt.want {
				t.Errorf("FormatLocalTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOffsetDateTimeRoundTrip(t *testing.T) {
	date := mustDate(t, 2008, time.June, 30)
	lt, err := civil.NewLocalTime(13, 45, 30, 123000000)
	if err != nil {
		t.Fatal(err)
	}
	offset, err := civil.ZoneOffsetOfHoursMinutes(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	odt := civil.NewOffsetDateTime(civil.NewLocalDateTime(date, lt), offset)
	got := FormatOffsetDateTime(odt)
	want := "2008-06-30T13:45:30.123+02:00"
	if got != want {
		t.Errorf("FormatOffsetDateTime() = %q, want %q", got, want)
	}
	parsed, err := ParseOffsetDateTime(got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(odt, parsed, cmp.AllowUnexported(civil.OffsetDateTime{}, civil.LocalDateTime{}, civil.LocalDate{}, civil.LocalTime{}, civil.ZoneOffset{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOffsetDateTimeUTCSuffix(t *testing.T) {
	date := mustDate(t, 2008, time.June, 3)
	lt, err := civil.NewLocalTime(11, 5, 30, 0)
	if err != nil {
		t.Fatal(err)
	}
	odt := civil.NewOffsetDateTime(civil.NewLocalDateTime(date, lt), civil.UTC)
	got := FormatOffsetDateTime(odt)
	if got != "2008-06-03T11:05:30Z" {
		t.Errorf("FormatOffsetDateTime() = %q, want %q", got, "2008-06-03T11:05:30Z")
	}
	parsed, err := ParseOffsetDateTime(got)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(odt) {
		t.Errorf("round trip: got %v, want %v", parsed, odt)
	}
}

func TestFormatRFC1123(t *testing.T) {
	date := mustDate(t, 2008, time.June, 3)
	lt, err := civil.NewLocalTime(11, 5, 30, 0)
	if err != nil {
		t.Fatal(err)
	}
	odt := civil.NewOffsetDateTime(civil.NewLocalDateTime(date, lt), civil.UTC)
	got, err := FormatRFC1123(odt)
	if err != nil {
		t.Fatal(err)
	}
	want := "Tue, 03 Jun 2008 11:05:30 Z"
	if got != want {
		t.Errorf("FormatRFC1123() = %q, want %q", got, want)
	}
	parsed, err := ParseRFC1123(got)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(odt) {
		t.Errorf("round trip: got %v, want %v", parsed, odt)
	}
}

func TestParseZonedDateTime(t *testing.T) {
	tz.LoadRegistry(map[string]*tz.Rules{
		"Europe/London": tz.FixedRules(civil.UTC),
	})
	z, err := ParseZonedDateTime("2008-06-30T13:45:30+00:00[Europe/London]")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatZonedDateTime(z); got != "2008-06-30T13:45:30Z[Europe/London]" {
		t.Errorf("FormatZonedDateTime() = %q", got)
	}
}
