package domain

import (
	"regexp"
	"time"
)

// Cancellation is one resolved CANCEL clause: a reference to another
// message's identifier, or a self-cancellation deadline ("THIS MSG"
// plus a DTG). When the clause embeds a DTG-shaped token, the token
// substring is re-parsed on its own; the full line never reaches the
// line classifier's boundary detection.
type Cancellation struct {
	Reference string     `json:"reference"`
	DTG       *time.Time `json:"dtg,omitempty"`
}

var (
	// cancelRe captures the referenced identifier or deadline after the
	// CANCEL keyword. Bare "n/yy" references ("CANCEL 47/18") occur in
	// NAVAREA traffic and are kept as-is.
	cancelRe = regexp.MustCompile(`CANCEL ((?:HYDROARC|NAVAREA [IVXLCDM]+|NAVWARN) \d+/\d+|THIS (?:MSG|MESSAGE) \d{6}Z [A-Z]{3} \d{2}|\d+/\d+)`)

	embeddedDTGRe = regexp.MustCompile(`\d{6}Z [A-Z]{3} \d{2}`)
)

// ExtractCancellations finds every CANCEL clause in the segment text,
// in order of appearance. Zero matches is a normal outcome.
func ExtractCancellations(text string, pivotYear int) []Cancellation {
	var out []Cancellation
	for _, m := range cancelRe.FindAllStringSubmatch(text, -1) {
		c := Cancellation{Reference: m[1]}
		if tok := embeddedDTGRe.FindString(m[1]); tok != "" {
			if t, err := ParseDTG(tok, pivotYear); err == nil {
				c.DTG = &t
			}
		}
		out = append(out, c)
	}
	return out
}
