package annotate

// ChangeGate decides whether a candidate text is worth persisting.
// Comparison is a pure byte comparison with no normalization, so
// re-running the pipeline on unchanged content performs zero writes and
// triggers no downstream file-watchers.
type ChangeGate struct{}

// NewChangeGate creates a ChangeGate.
func NewChangeGate() *ChangeGate {
	return &ChangeGate{}
}

// Changed reports whether candidate differs from original.
func (g *ChangeGate) Changed(original, candidate string) bool {
	return original != candidate
}
