package annotate

import "strings"

// RemoveMarkers strips a previously generated block down to plain
// content by deleting the full line containing each marker. Interior
// lines are left in place; this is a light-touch marker cleanup, not a
// full block removal. Running it on text without markers is a no-op.
func (e *Engine) RemoveMarkers(text string) string {
	if !strings.Contains(text, e.start) && !strings.Contains(text, e.end) {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, e.start) || strings.Contains(line, e.end) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
