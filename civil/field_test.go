package civil

import "testing"

func TestFieldString(t *testing.T) {
	if got := DayOfMonth.String(); got != "DayOfMonth" {
		t.Errorf("String() = %q, want %q", got, "DayOfMonth")
	}
	if got := Field(-1).String(); got != "UnknownField" {
		t.Errorf("String() = %q, want UnknownField", got)
	}
}

func TestFieldBaseUnit(t *testing.T) {
	if got := HourOfDay.baseUnit(); got != Hours {
		t.Errorf("HourOfDay.baseUnit() = %v, want Hours", got)
	}
	if got := Era.baseUnit(); got != Eras {
		t.Errorf("Era.baseUnit() = %v, want Eras", got)
	}
}
