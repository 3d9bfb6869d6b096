// Package parse contains the local parsers for the free-text monetary and
// date fields the AI analysis returns. The model is instructed to answer in
// Romanian, so amounts arrive in formats like "1.234,56 RON" and dates as
// DD.MM.YYYY more often than not.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dayFirstDot   = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
	yearFirst     = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	dayFirstSlash = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
)

// Amount extracts a numeric value from a display string such as
// "1.234,56 RON" or "-500 lei". Both Romanian (dot thousands, comma decimal)
// and plain formats are accepted. Returns 0 when no number can be recovered.
func Amount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.234,56 — dots are thousands separators, comma is decimal.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case lastComma >= 0 && lastDot >= 0:
		// 1,234.56 — commas are thousands separators.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastComma >= 0 && strings.Count(cleaned, ",") == 1:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return leadingFloat(cleaned)
	}
	return f
}

// leadingFloat returns the longest parseable numeric prefix, or 0.
func leadingFloat(s string) float64 {
	for i := len(s); i > 0; i-- {
		if f, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return f
		}
	}
	return 0
}

// Date recovers a calendar date from a display string, trying DD.MM.YYYY,
// YYYY-MM-DD and DD/MM/YYYY in that order. The patterns match anywhere in
// the string, so trailing text ("01.05.2024, ora 12") is tolerated.
// The second return value is false when no format matches.
func Date(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if m := dayFirstDot.FindStringSubmatch(s); m != nil {
		return dateOf(m[3], m[2], m[1]), true
	}
	if m := yearFirst.FindStringSubmatch(s); m != nil {
		return dateOf(m[1], m[2], m[3]), true
	}
	if m := dayFirstSlash.FindStringSubmatch(s); m != nil {
		return dateOf(m[3], m[2], m[1]), true
	}
	return time.Time{}, false
}

func dateOf(year, month, day string) time.Time {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
}

// FileSize renders a byte count for display ("1.5 MB").
func FileSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*10) / 10
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
