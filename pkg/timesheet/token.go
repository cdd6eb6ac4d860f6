package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TokenKind classifies a fragment extracted from a table cell.
type TokenKind int

const (
	// TimeToken carries a normalized HH:MM value.
	TimeToken TokenKind = iota
	// LabelToken carries IN or OUT.
	LabelToken
)

// Token is one classified unit from a timesheet row, in reading order.
type Token struct {
	Kind  TokenKind
	Value string
}

// Literal corrections for fragments Tesseract/Textract reliably garble the
// same way on these sheets.
var literalTimes = map[string]string{
	"to": "10:00",
	"ii": "11:00",
	"/1": "11:00",
	">":  "07:00",
}

// OCR confusion substitutions applied to the lower-cased fragment before
// structural matching. Pipe/bang/i/l read as 1, o as 0, stray punctuation
// as the colon it usually was.
var confusionReplacer = strings.NewReplacer(
	"|", "1",
	"!", "1",
	"i", "1",
	"l", "1",
	"o", "0",
	".", ":",
	",", ":",
	";", ":",
)

var (
	colonTimeRE  = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	fourDigitRE  = regexp.MustCompile(`^\d{4}$`)
	threeDigitRE = regexp.MustCompile(`^\d{3}$`)
	bareHourRE   = regexp.MustCompile(`^\d{1,2}$`)
)

// Normalize maps a raw noisy fragment to a canonical HH:MM string.
// Returns ok=false when no pattern matches or the hour/minute is out of
// range; that is a normal outcome for non-time fragments, never an error.
func Normalize(raw string) (string, bool) {
	low := strings.ToLower(strings.TrimSpace(raw))
	if fixed, ok := literalTimes[low]; ok {
		return fixed, true
	}
	s := confusionReplacer.Replace(low)

	switch {
	case colonTimeRE.MatchString(s):
		parts := strings.SplitN(s, ":", 2)
		h, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		return formatClock(h, m)
	case fourDigitRE.MatchString(s):
		h, _ := strconv.Atoi(s[:2])
		m, _ := strconv.Atoi(s[2:])
		return formatClock(h, m)
	case threeDigitRE.MatchString(s):
		h, _ := strconv.Atoi(s[:1])
		m, _ := strconv.Atoi(s[1:])
		return formatClock(h, m)
	case bareHourRE.MatchString(s):
		h, _ := strconv.Atoi(s)
		if h >= 1 && h <= 23 {
			return fmt.Sprintf("%02d:00", h), true
		}
	}
	return "", false
}

func formatClock(h, m int) (string, bool) {
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}
