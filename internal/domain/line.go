package domain

import (
	"regexp"
	"strings"
)

// LineTag classifies one line of raw bulletin text.
type LineTag int

const (
	LineContent LineTag = iota
	LineBlank
	LineDTG
)

// dtgLineRe matches a line that is, in its entirety, a date-time group.
// A DTG-shaped token sharing its line with other text (e.g. inside a
// CANCEL clause) stays LineContent and can never look like a boundary.
var dtgLineRe = regexp.MustCompile(`^\d{6}Z [A-Z]{3} \d{2}$`)

// ClassifyLine tags one raw input line as DTG, blank, or content.
// End-of-transmission trailers ("NNNN", "=NNNN") count as blank filler.
func ClassifyLine(line string) LineTag {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "" || trimmed == "NNNN" || trimmed == "=NNNN":
		return LineBlank
	case dtgLineRe.MatchString(trimmed):
		return LineDTG
	default:
		return LineContent
	}
}
