package domain

import "strings"

// MessageSegment is one inferred bulletin within a batch: a contiguous
// span of input lines plus the standalone DTG lines found inside it.
// Segments never overlap and are never mutated after creation; the
// per-field extractors read them and produce separate facts.
type MessageSegment struct {
	StartLine int    // 0-based index of the first non-blank line
	EndLine   int    // 0-based index of the last non-blank line, inclusive
	RawText   string // original span, verbatim modulo surrounding blanks
	DTGLines  []string
}

// Segmenter states. A segment is "closed enough to split" only in
// hasDTG: the split happens immediately before a header-shaped content
// line, and only once the current segment has consumed its own
// standalone DTG line. That gate prevents splitting in the middle of a
// still-open message whose DTG has not appeared yet.
type segState int

const (
	awaitingHeader segState = iota
	inBody
	hasDTG
)

// SegmentBatch partitions a raw bulletin batch into per-message
// segments. Splitting is deliberately conservative:
//
//   - a standalone DTG line never opens a segment; it is absorbed into
//     the one being built (a DTG embedded in prose is content, per
//     ClassifyLine, and cannot trigger a split at all)
//   - blank lines and transmission trailers are absorbed
//   - end of input always flushes the current segment, even when it
//     never saw a header or a DTG
//
// An empty or blank-only batch yields no segments; a batch holding a
// single bulletin yields exactly one.
func SegmentBatch(text string) []MessageSegment {
	lines := strings.Split(text, "\n")

	var segs []MessageSegment
	var cur []string
	var dtgs []string
	curStart := -1
	state := awaitingHeader

	flush := func() {
		if curStart == -1 {
			return
		}
		end := curStart
		for i := len(cur) - 1; i >= 0; i-- {
			if ClassifyLine(cur[i]) != LineBlank {
				end = curStart + i
				break
			}
		}
		segs = append(segs, MessageSegment{
			StartLine: curStart,
			EndLine:   end,
			RawText:   strings.TrimSpace(strings.Join(cur, "\n")),
			DTGLines:  dtgs,
		})
	}

	for i, raw := range lines {
		tag := ClassifyLine(raw)
		if curStart == -1 && tag == LineBlank {
			continue
		}
		switch tag {
		case LineDTG:
			if curStart == -1 {
				curStart = i
			}
			cur = append(cur, raw)
			dtgs = append(dtgs, strings.TrimSpace(raw))
			if state == inBody {
				state = hasDTG
			}
		case LineContent:
			header := headerLineRe.MatchString(strings.TrimSpace(raw))
			if header && state == hasDTG {
				flush()
				cur, dtgs = nil, nil
				curStart = i
				state = inBody
				cur = append(cur, raw)
				continue
			}
			if curStart == -1 {
				curStart = i
			}
			cur = append(cur, raw)
			if header && state == awaitingHeader {
				state = inBody
			}
		case LineBlank:
			cur = append(cur, raw)
		}
	}
	flush()
	return segs
}
