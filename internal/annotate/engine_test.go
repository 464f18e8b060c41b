package annotate

import (
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

const annotatedFoo = "/**\n" +
	" * StartGeneratedWithOrmdoc\n" +
	" * \n" +
	" * @property string $Title\n" +
	" * \n" +
	" * EndGeneratedWithOrmdoc\n" +
	" */\n" +
	"class Foo extends DataObject {\n}\n"

func TestEngine_Upsert_InsertsBeforeDeclaration(t *testing.T) {
	engine := NewEngine()

	text := "class Foo extends DataObject {\n}\n"
	payload := " * @property string $Title\n"

	got, result, err := engine.Upsert(text, "Foo", payload)
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if result.Action != ActionInserted {
		t.Errorf("Action = %v, expected ActionInserted", result.Action)
	}
	if got != annotatedFoo {
		t.Errorf("Upsert() = %q, expected %q", got, annotatedFoo)
	}
}

func TestEngine_Upsert_InsertionPreservesSurroundingContent(t *testing.T) {
	engine := NewEngine()

	prefix := "<?php\n\nuse App\\Entity;\n\n"
	suffix := "class Foo extends DataObject {\n    private $x;\n}\n"
	payload := " * @property int $Count\n"

	got, result, err := engine.Upsert(prefix+suffix, "Foo", payload)
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if result.Action != ActionInserted {
		t.Fatalf("Action = %v, expected ActionInserted", result.Action)
	}

	if !strings.HasPrefix(got, prefix) {
		t.Error("content before insertion point was modified")
	}
	if !strings.HasSuffix(got, suffix) {
		t.Error("content from the declaration onward was modified")
	}

	blockIdx := strings.Index(got, ormdoc.StartMarker)
	anchorIdx := strings.Index(got, "class Foo extends")
	if blockIdx == -1 || anchorIdx == -1 || blockIdx > anchorIdx {
		t.Errorf("generated block does not strictly precede the declaration (block=%d anchor=%d)", blockIdx, anchorIdx)
	}
}

func TestEngine_Upsert_Idempotent(t *testing.T) {
	engine := NewEngine()

	text := "class Foo extends DataObject {\n}\n"
	payload := " * @property string $Title\n"

	once, result, err := engine.Upsert(text, "Foo", payload)
	if err != nil {
		t.Fatalf("first Upsert() error: %v", err)
	}
	if result.Action != ActionInserted {
		t.Fatalf("first Action = %v, expected ActionInserted", result.Action)
	}

	twice, result, err := engine.Upsert(once, "Foo", payload)
	if err != nil {
		t.Fatalf("second Upsert() error: %v", err)
	}
	if result.Action != ActionReplaced {
		t.Errorf("second Action = %v, expected ActionReplaced", result.Action)
	}
	if twice != once {
		t.Errorf("re-running with identical payload changed the text:\nfirst:  %q\nsecond: %q", once, twice)
	}
}

func TestEngine_Upsert_ReplacesStalePayload(t *testing.T) {
	engine := NewEngine()

	text := "class Foo extends DataObject {\n}\n"
	stale, _, err := engine.Upsert(text, "Foo", " * @property string $OldName\n")
	if err != nil {
		t.Fatalf("setup Upsert() error: %v", err)
	}

	got, result, err := engine.Upsert(stale, "Foo", " * @property string $Title\n")
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if result.Action != ActionReplaced {
		t.Errorf("Action = %v, expected ActionReplaced", result.Action)
	}
	if got != annotatedFoo {
		t.Errorf("Upsert() = %q, expected %q", got, annotatedFoo)
	}
	if strings.Contains(got, "$OldName") {
		t.Error("stale payload survived replacement")
	}
}

func TestEngine_Upsert_EmptyPayloadIsNoOp(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		text string
	}{
		{name: "Plain declaration", text: "class Foo extends DataObject {\n}\n"},
		{name: "Already annotated", text: annotatedFoo},
		{name: "Empty file", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result, err := engine.Upsert(tt.text, "Foo", "")
			if err != nil {
				t.Fatalf("Upsert() error: %v", err)
			}
			if result.Action != ActionNone || result.Reason != ReasonEmptyPayload {
				t.Errorf("result = %+v, expected ActionNone/ReasonEmptyPayload", result)
			}
			if got != tt.text {
				t.Errorf("text changed on empty payload: %q", got)
			}
		})
	}
}

func TestEngine_Upsert_AnchorNotFound(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		text string
	}{
		{name: "Declaration without extends", text: "class Foo implements Baz {\n}\n"},
		{name: "Class name only mentioned", text: "// Foo is configured elsewhere\nclass Bar extends Foo {\n}\n"},
		{name: "Empty file", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result, err := engine.Upsert(tt.text, "Foo", " * @property string $Title\n")
			if err != nil {
				t.Fatalf("Upsert() error: %v", err)
			}
			if result.Action != ActionNone || result.Reason != ReasonAnchorNotFound {
				t.Errorf("result = %+v, expected ActionNone/ReasonAnchorNotFound", result)
			}
			if got != tt.text {
				t.Errorf("text changed despite missing anchor: %q", got)
			}
		})
	}
}

func TestEngine_Upsert_ReplacementConfinement(t *testing.T) {
	engine := NewEngine()

	prefix := "<?php\n/**\n * "
	interior := ormdoc.StartMarker + "\nARBITRARY INTERIOR\nnot even a comment\n" + ormdoc.EndMarker
	suffix := "\n */\nclass Foo extends DataObject {\n}\n"

	got, result, err := engine.Upsert(prefix+interior+suffix, "Foo", " * @property string $Title\n")
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if result.Action != ActionReplaced {
		t.Fatalf("Action = %v, expected ActionReplaced", result.Action)
	}
	if !strings.HasPrefix(got, prefix) {
		t.Error("content before the start marker was modified")
	}
	if !strings.HasSuffix(got, suffix) {
		t.Error("content after the end marker was modified")
	}
	if strings.Contains(got, "ARBITRARY INTERIOR") {
		t.Error("interior content survived replacement")
	}
}

func TestEngine_Upsert_InvertedMarkersRejected(t *testing.T) {
	engine := NewEngine()

	text := " * " + ormdoc.EndMarker + "\n * " + ormdoc.StartMarker + "\nclass Foo extends DataObject {\n}\n"

	got, result, err := engine.Upsert(text, "Foo", " * @property string $Title\n")
	if !errors.Is(err, ormdoc.ErrMarkerOrder) {
		t.Fatalf("error = %v, expected ErrMarkerOrder", err)
	}
	if result.Action != ActionNone {
		t.Errorf("Action = %v, expected ActionNone", result.Action)
	}
	if got != text {
		t.Errorf("text changed despite inverted markers: %q", got)
	}
}

// A lone marker is deliberately treated as "no block present": the engine
// falls through to insertion rather than attempting a partial replace.
// The stray marker survives, which can leave duplicate markers in the
// file; that inherited behavior is pinned here.
func TestEngine_Upsert_SingleMarkerFallsThroughToInsert(t *testing.T) {
	engine := NewEngine()

	stray := "// " + ormdoc.StartMarker + " left behind by a broken merge\n"
	text := stray + "class Foo extends DataObject {\n}\n"

	got, result, err := engine.Upsert(text, "Foo", " * @property string $Title\n")
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if result.Action != ActionInserted {
		t.Fatalf("Action = %v, expected ActionInserted", result.Action)
	}
	if !strings.HasPrefix(got, stray) {
		t.Error("stray marker line was modified")
	}
	if strings.Count(got, ormdoc.StartMarker) != 2 {
		t.Errorf("expected duplicate start markers after fall-through insert, got %d occurrences", strings.Count(got, ormdoc.StartMarker))
	}
}

func TestEngine_Upsert_OnlyFirstBlockRewritten(t *testing.T) {
	engine := NewEngine()

	first := ormdoc.StartMarker + "\nfirst\n" + ormdoc.EndMarker
	second := ormdoc.StartMarker + "\nsecond\n" + ormdoc.EndMarker
	text := "/** " + first + " */\n/** " + second + " */\nclass Foo extends DataObject {\n}\n"

	got, result, err := engine.Upsert(text, "Foo", " * @property string $Title\n")
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if result.Action != ActionReplaced {
		t.Fatalf("Action = %v, expected ActionReplaced", result.Action)
	}
	if strings.Contains(got, "first") {
		t.Error("first block interior survived replacement")
	}
	if !strings.Contains(got, second) {
		t.Error("second block was modified; only the first may be rewritten")
	}
}
