package annotate

import (
	"strings"

	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// Action classifies what an upsert did to the text.
type Action int

const (
	// ActionNone means the text was returned unchanged.
	ActionNone Action = iota
	// ActionReplaced means an existing block was rewritten in place.
	ActionReplaced
	// ActionInserted means a new block was inserted before the class
	// declaration.
	ActionInserted
)

// Reason explains an ActionNone result.
type Reason int

const (
	// ReasonNone means the action carries no skip reason.
	ReasonNone Reason = iota
	// ReasonEmptyPayload means there was nothing to annotate.
	ReasonEmptyPayload
	// ReasonAnchorNotFound means no block exists and the class
	// declaration anchor could not be located.
	ReasonAnchorNotFound
)

// Result is the typed outcome of a single upsert.
type Result struct {
	Action Action
	Reason Reason
}

// Engine combines source text, a class name, and a tag payload into new
// text. The transformation is stateless: idempotency comes from marker
// detection alone, not from any record of prior runs.
type Engine struct {
	locator BlockLocator
	start   string
	end     string
}

// NewEngine creates an Engine using the standard ormdoc markers.
func NewEngine() *Engine {
	return NewEngineWithMarkers(ormdoc.StartMarker, ormdoc.EndMarker)
}

// NewEngineWithMarkers creates an Engine with explicit marker literals.
func NewEngineWithMarkers(start, end string) *Engine {
	return &Engine{
		locator: NewBlockLocator(start, end),
		start:   start,
		end:     end,
	}
}

// Upsert produces the candidate new text for one class.
//
// An empty payload, or a missing declaration anchor on the insert path,
// yields ActionNone with the original text: the caller must not write.
// A file where both markers occur but the end marker precedes the start
// marker is rejected with ormdoc.ErrMarkerOrder rather than rewritten.
//
// Each payload line is expected to already carry the comment-continuation
// prefix and a trailing newline.
func (e *Engine) Upsert(text, className, payload string) (string, Result, error) {
	if payload == "" {
		return text, Result{Action: ActionNone, Reason: ReasonEmptyPayload}, nil
	}

	span := e.locator.Locate(text)
	if span.Present {
		if span.Inverted() {
			return text, Result{Action: ActionNone}, ormdoc.ErrMarkerOrder
		}
		return e.replace(text, span, payload), Result{Action: ActionReplaced}, nil
	}

	return e.insert(text, className, payload)
}

// replace rewrites the first start..end span in place. With both markers
// present and ordered, the first end marker is also the first one after
// the start marker, so this substitutes exactly the shortest span. Any
// further marker pairs are left alone.
func (e *Engine) replace(text string, span Span, payload string) string {
	return text[:span.Start] + e.renderInterior(payload) + text[span.End+len(e.end):]
}

// insert prepends a full docblock immediately before the declaration
// anchor. The anchor requires the "extends" clause so that passing
// mentions of the class name, and non-extending declarations, are never
// mis-anchored.
func (e *Engine) insert(text, className, payload string) (string, Result, error) {
	anchor := "class " + className + " extends"
	idx := strings.Index(text, anchor)
	if idx == -1 {
		return text, Result{Action: ActionNone, Reason: ReasonAnchorNotFound}, nil
	}

	block := ormdoc.DocBlockOpen + "\n" +
		ormdoc.CommentContinuation + e.renderInterior(payload) + "\n" +
		ormdoc.DocBlockClose + "\n"

	return text[:idx] + block + text[idx:], Result{Action: ActionInserted}, nil
}

// renderInterior builds the marker-to-marker content: start marker, blank
// comment line, payload, blank comment line, end marker. The surrounding
// comment construct is supplied by the existing file (replace path) or by
// insert.
func (e *Engine) renderInterior(payload string) string {
	return e.start + "\n" +
		ormdoc.CommentContinuation + "\n" +
		payload +
		ormdoc.CommentContinuation + "\n" +
		ormdoc.CommentContinuation + e.end
}
