package civil

import "testing"

func TestFixedRange(t *testing.T) {
	r := FixedRange(1, 12)
	if r.Min() != 1 || r.Max() != 12 {
		t.Errorf("Min/Max = (%d, %d), want (1, 12)", r.Min(), r.Max())
	}
	if !r.IsValidValue(6) {
		t.Error("IsValidValue(6) = false, want true")
	}
	if r.IsValidValue(13) {
		t.Error("IsValidValue(13) = true, want false")
	}
}

func TestVariableMaxRange(t *testing.T) {
	r := VariableMaxRange(1, 28, 31)
	if r.Max() != 31 {
		t.Errorf("Max() = %d, want 31", r.Max())
	}
}

func TestCheckValue(t *testing.T) {
	r := FixedRange(0, 23)
	if err := r.CheckValue(HourOfDay, 25); err == nil {
		t.Error("CheckValue(25) should error")
	}
	if err := r.CheckValue(HourOfDay, 12); err != nil {
		t.Errorf("CheckValue(12): %v", err)
	}
}
