package chrono

import (
	"errors"
	"testing"
	"time"

	"github.com/civiltime/civiltime/civil"
)

func mustDate(t *testing.T, y int, m time.Month, d int) civil.LocalDate {
	t.Helper()
	date, err := civil.NewLocalDate(y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return date
}

func TestMinguoToISO(t *testing.T) {
	// yearOfEra 1 of the "minguo" era is ISO year 1912.
	got, err := Minguo.ToISO(Era{Name: "minguo", Value: 1}, 1, int(time.January), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := mustDate(t, 1912, time.January, 1)
	if got != want {
		t.Errorf("ToISO = %v, want %v", got, want)
	}

	got, err = Minguo.ToISO(Era{Name: "before-roc", Value: 0}, 1, int(time.January), 1)
	if err != nil {
		t.Fatal(err)
	}
	want = mustDate(t, 1911, time.January, 1)
	if got != want {
		t.Errorf("ToISO(before-roc) = %v, want %v", got, want)
	}
}

func TestMinguoFromISO(t *testing.T) {
	era, yearOfEra, month, day, err := Minguo.FromISO(mustDate(t, 2024, time.June, 15))
	if err != nil {
		t.Fatal(err)
	}
	if era.Name != "minguo" || yearOfEra != 113 || month != int(time.June) || day != 15 {
		t.Errorf("FromISO = (%v, %d, %d, %d), want (minguo, 113, 6, 15)", era, yearOfEra, month, day)
	}

	era, yearOfEra, _, _, err = Minguo.FromISO(mustDate(t, 1900, time.January, 1))
	if err != nil {
		t.Fatal(err)
	}
	if era.Name != "before-roc" || yearOfEra != 12 {
		t.Errorf("FromISO(1900) = (%v, %d), want (before-roc, 12)", era, yearOfEra)
	}
}

func TestThaiBuddhistRoundTrip(t *testing.T) {
	iso := mustDate(t, 2024, time.June, 15)
	era, yearOfEra, month, day, err := ThaiBuddhist.FromISO(iso)
	if err != nil {
		t.Fatal(err)
	}
	if era.Name != "be" || yearOfEra != 2567 {
		t.Errorf("FromISO = (%v, %d), want (be, 2567)", era, yearOfEra)
	}
	got, err := ThaiBuddhist.ToISO(era, yearOfEra, month, day)
	if err != nil {
		t.Fatal(err)
	}
	if got != iso {
		t.Errorf("ToISO round trip = %v, want %v", got, iso)
	}
}

func TestYearOffsetChronologyLeapYearAndDaysInMonth(t *testing.T) {
	// ISO 2024 is a leap year; Minguo year 113 maps to it.
	if !Minguo.IsLeapYear(113) {
		t.Error("Minguo.IsLeapYear(113) = false, want true")
	}
	days, err := Minguo.DaysInMonth(113, int(time.February))
	if err != nil {
		t.Fatal(err)
	}
	if days != 29 {
		t.Errorf("DaysInMonth(Feb) = %d, want 29", days)
	}

	if _, err := Minguo.DaysInMonth(113, 13); err == nil {
		t.Error("DaysInMonth(13) should error")
	}
}

func TestUnsupportedChronologiesReturnErrUnsupported(t *testing.T) {
	for _, c := range []Chronology{Japanese, Hijrah, Coptic} {
		if _, err := c.DaysInMonth(1, 1); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s.DaysInMonth error = %v, want ErrUnsupported", c.Name(), err)
		}
		if _, err := c.ToISO(c.Eras()[0], 1, 1, 1); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s.ToISO error = %v, want ErrUnsupported", c.Name(), err)
		}
		if _, _, _, _, err := c.FromISO(mustDate(t, 2000, time.January, 1)); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s.FromISO error = %v, want ErrUnsupported", c.Name(), err)
		}
		if len(c.Eras()) == 0 {
			t.Errorf("%s.Eras() is empty", c.Name())
		}
	}
}
