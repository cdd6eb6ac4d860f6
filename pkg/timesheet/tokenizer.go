package timesheet

import (
	"regexp"
	"strings"
)

// cleanRE strips everything except alphanumerics, whitespace and colon.
var cleanRE = regexp.MustCompile(`[^0-9A-Za-z\s:]`)

// scanRE finds, left to right: colon times, 3-4 digit runs, bare 1-12
// hours, IN/OUT labels and their common misreads, slash-prefixed digits.
var scanRE = regexp.MustCompile(`\b\d{1,2}:\d{2}\b|\b\d{3,4}\b|\b(?:1[0-2]|[1-9])\b|\b(?:IN|OUT|II|TO)\b|/\d{1,2}\b`)

// TokenizeRow turns a row's cell texts (name column excluded, in column
// order) into an ordered token sequence. Fragments that neither normalize
// to a time nor read as a label come back in rejected so the caller can
// surface them; they never stop the row.
func TokenizeRow(cells []string) (tokens []Token, rejected []string) {
	for _, raw := range cells {
		// A lone ">" is a known misread of a handwritten 7.
		cleaned := cleanRE.ReplaceAllString(strings.ReplaceAll(raw, ">", "07:00"), "")
		cleaned = strings.ToUpper(cleaned)
		if strings.TrimSpace(cleaned) == "" {
			continue
		}
		for _, part := range scanRE.FindAllString(cleaned, -1) {
			if fixed, ok := Normalize(part); ok {
				tokens = append(tokens, Token{Kind: TimeToken, Value: fixed})
				continue
			}
			switch part {
			case "IN", "OUT":
				tokens = append(tokens, Token{Kind: LabelToken, Value: part})
			default:
				rejected = append(rejected, part)
			}
		}
	}
	return tokens, rejected
}
