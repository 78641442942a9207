package dataset

import (
	"strings"
	"time"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/util"
)

var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseDate tries the date layouts CMS exports use.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseFlag maps a yes/no cell to a bool. known is false for blanks and
// values outside the yes/no vocabulary.
func parseFlag(raw string) (value, known bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1":
		return true, true
	case "no", "n", "false", "0":
		return false, true
	}
	return false, false
}

// parseMeasure converts a numeric cell. missing is true for CMS missing
// markers; invalid is true for text that is neither a number nor a marker.
func parseMeasure(raw string) (v float64, missing, invalid bool) {
	if util.IsNotAvailable(raw) {
		return 0, true, false
	}
	v, err := util.ParseNumber(raw)
	if err != nil {
		return 0, true, true
	}
	return v, false, false
}
