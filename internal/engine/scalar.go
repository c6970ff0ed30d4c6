package engine

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-funnel-dashboard/internal/model"
)

// ------------------- Number Parsing -------------------

// Brazilian format: "1.234,56" (dot groups thousands, comma is the decimal).
// English format:   "1,234.56" (comma groups thousands, dot is the decimal).
var (
	brNumberPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})*(,\d+)?$`)
	enNumberPattern = regexp.MustCompile(`^\d{1,3}(,\d{3})*(\.\d+)?$`)
	trailingDecimal = regexp.MustCompile(`,\d{1,2}$`)
	currencyPrefix  = regexp.MustCompile(`^(R\$|\$|€)\s*`)
)

// ParseNumber converts a loosely formatted value into a float64.
// Accepts numbers, numeric strings, and currency-prefixed strings, and
// disambiguates Brazilian vs English separators. The second return is false
// on empty input, unsupported types, or unparseable strings, never NaN/Inf.
func ParseNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parseNumberString(v)
	default:
		return 0, false
	}
}

func parseNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	s = currencyPrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	matchesBR := brNumberPattern.MatchString(s) || trailingDecimal.MatchString(s)
	matchesEN := enNumberPattern.MatchString(s)

	var cleaned string
	switch {
	case matchesBR && !matchesEN:
		// BR: drop grouping dots, comma becomes the decimal point.
		cleaned = strings.ReplaceAll(s, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case matchesEN:
		// EN: drop grouping commas.
		cleaned = strings.ReplaceAll(s, ",", "")
	default:
		// Ambiguous or plain. A trailing ",dd" is a BR decimal; any other
		// comma is treated as grouping.
		cleaned = strings.Join(strings.Fields(s), "")
		if trailingDecimal.MatchString(cleaned) {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseCurrency parses a monetary value. Currency symbols are handled by
// ParseNumber directly, so this is a straight alias kept for call-site
// clarity.
func ParseCurrency(value interface{}) (float64, bool) {
	return ParseNumber(value)
}

// ------------------- Percent Parsing -------------------

// ParsePercent parses a percent cell into the 0–1 range. When scale is
// Scale0to100 the parsed value is divided by 100; the default scale is
// Scale0to1 (value passed through).
func ParsePercent(value interface{}, scale model.PercentScale) (float64, bool) {
	f, ok := ParseNumber(value)
	if !ok {
		return 0, false
	}
	if scale == model.Scale0to100 {
		return f / 100, true
	}
	return f, true
}

// DetectPercentScale decides whether a percent column arrives as fractions
// or 0–100 values. The median resists outliers better than max or mean here:
// a single 250% conversion spike must not flip a fractional column.
func DetectPercentScale(values []float64) model.PercentScale {
	if len(values) == 0 {
		return model.Scale0to1
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	if median > 1.2 {
		return model.Scale0to100
	}
	return model.Scale0to1
}

// ------------------- Date Parsing -------------------

// millisecond timestamps are > 1e11; anything smaller is taken as seconds.
const unixMillisThreshold = 1e11

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006", // DD/MM/YYYY
	"02-01-2006", // DD-MM-YYYY
}

// ParseDate converts a value into a time.Time. Accepts time.Time, UNIX
// timestamps (seconds or milliseconds), and strings in ISO or Brazilian
// day-first formats. Returns false on anything unparseable; callers never
// see a zero "invalid" date as a success.
func ParseDate(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case float64:
		return parseUnixTimestamp(v)
	case int:
		return parseUnixTimestamp(float64(v))
	case int64:
		return parseUnixTimestamp(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func parseUnixTimestamp(f float64) (time.Time, bool) {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	if f > unixMillisThreshold {
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return time.Unix(int64(f), 0).UTC(), true
}
