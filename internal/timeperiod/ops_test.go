package timeperiod

import (
	"slices"
	"testing"
)

func TestConsolidate(t *testing.T) {
	input := []Period{
		MustNew(KindBusy, At(13, 0), At(14, 0), Monday),
		MustNew(KindBusy, At(9, 0), At(10, 0), Tuesday),
		MustNew(KindBusy, At(9, 0), At(11, 0), Monday),
		MustNew(KindBusy, At(10, 0), At(12, 0), Monday),
		MustNew(KindBusy, At(12, 0), At(12, 30), Monday),
	}
	original := slices.Clone(input)

	got, err := Consolidate(input)
	if err != nil {
		t.Fatalf("Consolidate() unexpected error: %v", err)
	}
	want := []Period{
		MustNew(KindBusy, At(9, 0), At(12, 30), Monday),
		MustNew(KindBusy, At(13, 0), At(14, 0), Monday),
		MustNew(KindBusy, At(9, 0), At(10, 0), Tuesday),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Consolidate() = %v, want %v", got, want)
	}
	if !slices.Equal(input, original) {
		t.Error("Consolidate() modified its input")
	}
}

func TestComplement(t *testing.T) {
	bounds := Bounds{Start: At(8, 0), End: At(18, 0), Days: []Day{Monday, Tuesday}}
	busy := []Period{
		MustNew(KindBusy, At(7, 0), At(9, 0), Monday),
		MustNew(KindBusy, At(12, 0), At(14, 0), Monday),
		MustNew(KindBusy, At(17, 0), At(20, 0), Monday),
		MustNew(KindBusy, At(10, 0), At(11, 0), Wednesday),
	}

	got, err := Complement(busy, bounds)
	if err != nil {
		t.Fatalf("Complement() unexpected error: %v", err)
	}
	want := []Period{
		MustNew(KindFree, At(9, 0), At(12, 0), Monday),
		MustNew(KindFree, At(14, 0), At(17, 0), Monday),
		MustNew(KindFree, At(8, 0), At(18, 0), Tuesday),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Complement() = %v, want %v", got, want)
	}
}

func TestComplementFullyBusy(t *testing.T) {
	bounds := Bounds{Start: At(8, 0), End: At(18, 0), Days: []Day{Monday}}
	busy := []Period{MustNew(KindBusy, StartOfDay, EndOfDay, Monday)}

	got, err := Complement(busy, bounds)
	if err != nil {
		t.Fatalf("Complement() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Complement() = %v, want no free time", got)
	}
}

func TestComplementInvalidBounds(t *testing.T) {
	bounds := Bounds{Start: At(18, 0), End: At(8, 0), Days: []Day{Monday}}
	if _, err := Complement(nil, bounds); err == nil {
		t.Error("Complement() expected error for inverted bounds")
	}
}

func TestIntersectAll(t *testing.T) {
	a := []Period{
		MustNew(KindFree, At(9, 0), At(12, 0), Monday),
		MustNew(KindFree, At(14, 0), At(17, 0), Monday),
		MustNew(KindFree, At(8, 0), At(10, 0), Tuesday),
	}
	b := []Period{
		MustNew(KindFree, At(11, 0), At(15, 0), Monday),
		MustNew(KindFree, At(16, 0), At(18, 0), Monday),
		MustNew(KindFree, At(10, 0), At(12, 0), Tuesday),
	}

	got := IntersectAll(a, b)
	want := []Period{
		MustNew(KindFree, At(11, 0), At(12, 0), Monday),
		MustNew(KindFree, At(14, 0), At(15, 0), Monday),
		MustNew(KindFree, At(16, 0), At(17, 0), Monday),
	}
	if !slices.Equal(got, want) {
		t.Errorf("IntersectAll() = %v, want %v", got, want)
	}
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays("mon, Wednesday ,4")
	if err != nil {
		t.Fatalf("ParseDays() unexpected error: %v", err)
	}
	want := []Day{Monday, Wednesday, Friday}
	if !slices.Equal(days, want) {
		t.Errorf("ParseDays() = %v, want %v", days, want)
	}
	if FormatDays(want) != "Mon,Wed,Fri" {
		t.Errorf("FormatDays() = %q", FormatDays(want))
	}
	if _, err := ParseDays("funday"); err == nil {
		t.Error("ParseDays() expected error for unknown day")
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("14:30")
	if err != nil || c != At(14, 30) {
		t.Errorf("ParseClock(14:30) = %v, %v", c, err)
	}
	if c, err := ParseClock("24:00"); err != nil || c != EndOfDay {
		t.Errorf("ParseClock(24:00) = %v, %v", c, err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Error("ParseClock(25:00) expected error")
	}
}
