package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnrecognizedIdentifier reports a segment whose text carries no
// recognizable message identifier. Local to the field: the record's
// message id stays absent and processing continues.
var ErrUnrecognizedIdentifier = errors.New("unrecognized message identifier")

var (
	// msgIDRe captures an identifier anywhere in the segment text:
	// "HYDROARC 136/25(15)", "NAVAREA XIII 95/18", "NAVWARN 12/25".
	msgIDRe = regexp.MustCompile(`((?:HYDROARC|NAVAREA [IVXLCDM]+|NAVWARN) \d+/\d+(?:\([^)]+\))?)`)

	// headerLineRe recognizes a header-shaped line: the identifier alone
	// at the start of a line, optionally closed by a period. Used by the
	// segmenter as the split trigger, so it is stricter than msgIDRe.
	headerLineRe = regexp.MustCompile(`^(?:HYDROARC|NAVAREA [IVXLCDM]+|NAVWARN) \d+/\d+(?:\([^)]+\))?\.?$`)

	// idSuffixRe strips the trailing parenthesised repeat suffix.
	idSuffixRe = regexp.MustCompile(`\([^)]*\)$`)
)

// ExtractMessageID returns the first message identifier token found in
// the segment text, verbatim (repeat suffix included).
func ExtractMessageID(text string) (string, error) {
	id := msgIDRe.FindString(text)
	if id == "" {
		return "", fmt.Errorf("%w in %q", ErrUnrecognizedIdentifier, firstLine(text))
	}
	return id, nil
}

// NormalizeMessageID strips the trailing parenthesised repeat suffix,
// "HYDROARC 136/25(15)" → "HYDROARC 136/25". Deterministic and
// idempotent: normalizing an already-normalized id returns it unchanged.
func NormalizeMessageID(id string) string {
	return idSuffixRe.ReplaceAllString(strings.TrimSpace(id), "")
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return strings.TrimSpace(text)
}
