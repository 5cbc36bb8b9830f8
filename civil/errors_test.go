package civil

import "testing"

func TestValueOutOfRangeErrorMessage(t *testing.T) {
	err := &ValueOutOfRangeError{Field: "HourOfDay", Value: 25, Min: 0, Max: 23}
	want := "HourOfDay: value 25 not in range [0, 23]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDateNotValidErrorMessage(t *testing.T) {
	err := &DateNotValidError{Year: 2023, Month: 2, Day: 29}
	want := "invalid date 2023-02-29"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewLocalDateReturnsTypedErrors(t *testing.T) {
	if _, err := NewLocalDate(MaxYear+1, 1, 1); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*ValueOutOfRangeError); !ok {
		t.Errorf("error type = %T, want *ValueOutOfRangeError", err)
	}
	if _, err := NewLocalDate(2023, 2, 29); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*DateNotValidError); !ok {
		t.Errorf("error type = %T, want *DateNotValidError", err)
	}
}
