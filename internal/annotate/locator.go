package annotate

import "strings"

// Span reports where a generated block's markers occur within a text.
// Indices refer to the first occurrence of each marker, or -1 if absent.
type Span struct {
	Present bool
	Start   int
	End     int
}

// Inverted reports whether both markers occur but the end marker precedes
// the start marker. Such a file is never rewritten via the replace path.
func (s Span) Inverted() bool {
	return s.Present && s.End < s.Start
}

// BlockLocator scans text for a paired start/end marker.
type BlockLocator interface {
	Locate(text string) Span
}

// blockLocator implements BlockLocator for two fixed marker literals.
type blockLocator struct {
	start string
	end   string
}

// NewBlockLocator creates a BlockLocator for the given marker literals.
func NewBlockLocator(start, end string) BlockLocator {
	return &blockLocator{start: start, end: end}
}

// Locate finds the first occurrence of each marker. Present is true only
// when both markers occur; a text with a single marker falls through to
// the insertion path rather than being parsed as a partial block.
func (l *blockLocator) Locate(text string) Span {
	start := strings.Index(text, l.start)
	end := strings.Index(text, l.end)
	return Span{
		Present: start >= 0 && end >= 0,
		Start:   start,
		End:     end,
	}
}
