package dividend

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Date
	}{
		{"iso", "2025-03-14", NewDate(2025, time.March, 14)},
		{"single digit month and day", "2025-3-4", NewDate(2025, time.March, 4)},
		{"export timestamp", "2025-03-14 09:30:00", NewDate(2025, time.March, 14)},
		{"slashes", "2025/03/14", NewDate(2025, time.March, 14)},
		{"dots", "2025.03.14", NewDate(2025, time.March, 14)},
		{"surrounding spaces", "  2025-03-14  ", NewDate(2025, time.March, 14)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "14-03", "2025-13-40지급"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should fail", input)
		}
	}
}

func TestCoerceDate_Sentinel(t *testing.T) {
	if d := coerceDate("garbage"); !d.IsZero() {
		t.Errorf("coerceDate(garbage) = %s, want the zero sentinel", d)
	}
	if d := coerceDate("2025-03-14"); d.IsZero() {
		t.Errorf("coerceDate on a valid date must not be zero")
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParse("2025-03-14")
	b := MustParse("2025-03-15")
	if !a.Before(b) || !b.After(a) {
		t.Errorf("ordering broken between %s and %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date is neither before nor after itself")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	want := MustParse("2025-03-14")
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-03-14"` {
		t.Errorf("marshalled as %s", data)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %s, want %s", got, want)
	}
}
