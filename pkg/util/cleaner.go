package util

import (
	"regexp"
	"strings"
)

var (
	// htmlTagPattern matches HTML tags like <b>, </li>, <br/>.
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	// multiSpacePattern matches multiple consecutive whitespace characters
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// CleanIdentifier strips the spreadsheet artefacts CMS exports wrap around
// certification numbers (e.g. ="011500" or "011500") and trims whitespace.
func CleanIdentifier(id string) string {
	id = strings.ReplaceAll(id, `"`, "")
	id = strings.ReplaceAll(id, "=", "")
	return strings.TrimSpace(id)
}

// CleanText removes HTML remnants and normalizes whitespace in free text
// returned by upstream services (article titles, descriptions, author lists).
func CleanText(s string) string {
	if s == "" {
		return ""
	}

	// 1. Remove HTML tags
	s = htmlTagPattern.ReplaceAllString(s, " ")

	// 2. Decode common HTML entities
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&nbsp;", " ")

	// 3. Collapse whitespace
	s = multiSpacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanMeasureLabel turns a hospital payment measure name into the short
// label shown in the measure selector:
// "Payment for heart attack patients" -> "heart attack".
func CleanMeasureLabel(name string) string {
	name = strings.ReplaceAll(name, "Payment for ", "")
	name = strings.ReplaceAll(name, "patients", "")
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(name, " "))
}

// NormalizeMeasureQuery lowercases a measure selector and drops a trailing
// "Measure" word so it can be used as a substring filter.
func NormalizeMeasureQuery(q string) string {
	q = strings.ReplaceAll(q, "Measure", "")
	return strings.ToLower(strings.TrimSpace(q))
}

// IsNotAvailable reports whether a cell holds the CMS missing-value marker.
func IsNotAvailable(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "Not Available") || s == "-" || strings.EqualFold(s, "N/A")
}
