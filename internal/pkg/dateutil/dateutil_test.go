package dateutil

import (
	"testing"
	"time"
)

func TestParseDisplayFormat(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"15.11.2025", time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), true},
		{"01.01.2026", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"29.02.2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), true},
		{"29.02.2025", time.Time{}, false}, // not a leap year
		{"31.04.2025", time.Time{}, false},
		{"15.13.2025", time.Time{}, false},
		{"15.11", time.Time{}, false}, // two parts
		{"15.11.2025.1", time.Time{}, false},
		{"ab.cd.efgh", time.Time{}, false},
		{"", time.Time{}, false},
		{"   ", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := Parse(c.input)
		if ok != c.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseISOFormat(t *testing.T) {
	got, ok := Parse("2025-11-15")
	if !ok {
		t.Fatal("Parse(2025-11-15) failed")
	}
	want := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse(2025-11-15) = %v, want %v", got, want)
	}

	if _, ok := Parse("2025-13-01"); ok {
		t.Error("Parse(2025-13-01) should fail")
	}
}

func TestFormatAlwaysDisplayForm(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), "15.11.2025"},
		{time.Date(2026, 1, 1, 13, 45, 0, 0, time.UTC), "01.01.2026"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Formatting a parsed display date and re-parsing must land on the same
// calendar day, whichever format the input arrived in.
func TestRoundTrip(t *testing.T) {
	inputs := []string{"15.11.2025", "01.02.2024", "31.12.2025", "2025-06-30"}
	for _, s := range inputs {
		first, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) failed", s)
		}
		second, ok := Parse(Format(first))
		if !ok {
			t.Fatalf("re-Parse(Format(%q)) failed", s)
		}
		if !SameDay(first, second) {
			t.Errorf("round trip of %q: %v != %v", s, first, second)
		}
	}
}

func TestDay(t *testing.T) {
	in := time.Date(2025, 11, 15, 18, 30, 12, 500, time.UTC)
	want := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	if got := Day(in); !got.Equal(want) {
		t.Errorf("Day(%v) = %v, want %v", in, got, want)
	}
}

func TestValidYearMonth(t *testing.T) {
	if err := ValidYearMonth(2025, 12); err != nil {
		t.Errorf("ValidYearMonth(2025, 12) = %v", err)
	}
	if err := ValidYearMonth(2025, 0); err == nil {
		t.Error("ValidYearMonth(2025, 0) should fail")
	}
	if err := ValidYearMonth(2025, 13); err == nil {
		t.Error("ValidYearMonth(2025, 13) should fail")
	}
}
