package util

import (
	"testing"
)

func TestCleanIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strips excel formula wrapper", input: `="011500"`, want: "011500"},
		{name: "strips quotes only", input: `"451234"`, want: "451234"},
		{name: "trims whitespace", input: "  017014 ", want: "017014"},
		{name: "leaves clean id", input: "017014", want: "017014"},
		{name: "handles empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanIdentifier(tt.input)
			if got != tt.want {
				t.Errorf("CleanIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "removes HTML tags",
			input: "<ul><li>Hello</li></ul> World",
			want:  "Hello World",
		},
		{
			name:  "decodes amp entity",
			input: "A &amp; B",
			want:  "A & B",
		},
		{
			name:  "decodes lt gt entities",
			input: "&lt;div&gt;",
			want:  "<div>",
		},
		{
			name:  "decodes quote entities",
			input: "&quot;quoted&#39;",
			want:  `"quoted'`,
		},
		{
			name:  "removes nbsp",
			input: "Hello&nbsp;World",
			want:  "Hello World",
		},
		{
			name:  "normalizes whitespace",
			input: "Hello   \n   World",
			want:  "Hello World",
		},
		{
			name:  "handles empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			if got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanMeasureLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Payment for heart attack patients", want: "heart attack"},
		{input: "Payment for hip/knee replacement patients", want: "hip/knee replacement"},
		{input: "Payment for pneumonia patients", want: "pneumonia"},
		{input: "", want: ""},
	}
	for _, tt := range tests {
		if got := CleanMeasureLabel(tt.input); got != tt.want {
			t.Errorf("CleanMeasureLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeMeasureQuery(t *testing.T) {
	if got := NormalizeMeasureQuery("Heart Failure Measure"); got != "heart failure" {
		t.Errorf("NormalizeMeasureQuery = %q", got)
	}
	if got := NormalizeMeasureQuery("  pneumonia "); got != "pneumonia" {
		t.Errorf("NormalizeMeasureQuery = %q", got)
	}
}

func TestIsNotAvailable(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "Not Available", want: true},
		{input: "not available", want: true},
		{input: "", want: true},
		{input: "  ", want: true},
		{input: "-", want: true},
		{input: "N/A", want: true},
		{input: "$12,000", want: false},
		{input: "0", want: false},
	}
	for _, tt := range tests {
		if got := IsNotAvailable(tt.input); got != tt.want {
			t.Errorf("IsNotAvailable(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHashKey(t *testing.T) {
	a := HashKey("home_health", "data/hh.csv", "12")
	b := HashKey("HOME_HEALTH", " data/hh.csv ", "12")
	if a != b {
		t.Errorf("HashKey should normalize case and whitespace: %s != %s", a, b)
	}
	if a == HashKey("home_health", "data/hh.csv", "13") {
		t.Errorf("HashKey should change with its parts")
	}
	if len(a) != 32 {
		t.Errorf("HashKey length = %d, want 32", len(a))
	}
}
