package dataset

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2022, time.March, 4, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		input string
		ok    bool
	}{
		{"03/04/2022", true},
		{"3/4/2022", true},
		{"2022-03-04", true},
		{"2022-03-04T00:00:00Z", true},
		{"", false},
		{"Not Available", false},
		{"2022/03/04", false},
	}

	for _, tt := range tests {
		got, ok := parseDate(tt.input)
		if ok != tt.ok {
			t.Errorf("parseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, want)
		}
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		input string
		value bool
		known bool
	}{
		{"Yes", true, true},
		{"Y", true, true},
		{" true ", true, true},
		{"No", false, true},
		{"0", false, true},
		{"", false, false},
		{"Maybe", false, false},
	}

	for _, tt := range tests {
		value, known := parseFlag(tt.input)
		if value != tt.value || known != tt.known {
			t.Errorf("parseFlag(%q) = (%v, %v), want (%v, %v)", tt.input, value, known, tt.value, tt.known)
		}
	}
}

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		input   string
		value   float64
		missing bool
		invalid bool
	}{
		{"93.4", 93.4, false, false},
		{"93.4%", 93.4, false, false},
		{"Not Available", 0, true, false},
		{"-", 0, true, false},
		{"", 0, true, false},
		{"Less than 11", 0, true, true},
	}

	for _, tt := range tests {
		v, missing, invalid := parseMeasure(tt.input)
		if v != tt.value || missing != tt.missing || invalid != tt.invalid {
			t.Errorf("parseMeasure(%q) = (%v, %v, %v), want (%v, %v, %v)",
				tt.input, v, missing, invalid, tt.value, tt.missing, tt.invalid)
		}
	}
}
