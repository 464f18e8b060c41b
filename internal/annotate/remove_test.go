package annotate

import (
	"strings"
	"testing"

	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

func TestEngine_RemoveMarkers(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No markers is a no-op",
			input:    "class Foo extends Bar {\n}\n",
			expected: "class Foo extends Bar {\n}\n",
		},
		{
			name:     "Empty text",
			input:    "",
			expected: "",
		},
		{
			name: "One marker pair strips exactly the two marker lines",
			input: "/**\n" +
				" * " + ormdoc.StartMarker + "\n" +
				" * \n" +
				" * @property string $Title\n" +
				" * \n" +
				" * " + ormdoc.EndMarker + "\n" +
				" */\n" +
				"class Foo extends DataObject {\n}\n",
			expected: "/**\n" +
				" * \n" +
				" * @property string $Title\n" +
				" * \n" +
				" */\n" +
				"class Foo extends DataObject {\n}\n",
		},
		{
			name:     "Lone marker line removed",
			input:    "// " + ormdoc.StartMarker + "\nclass Foo extends Bar {}\n",
			expected: "class Foo extends Bar {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.RemoveMarkers(tt.input)
			if got != tt.expected {
				t.Errorf("RemoveMarkers() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestEngine_RemoveMarkers_Idempotent(t *testing.T) {
	engine := NewEngine()

	annotated, _, err := engine.Upsert("class Foo extends DataObject {\n}\n", "Foo", " * @property string $Title\n")
	if err != nil {
		t.Fatalf("setup Upsert() error: %v", err)
	}

	once := engine.RemoveMarkers(annotated)
	if strings.Contains(once, ormdoc.StartMarker) || strings.Contains(once, ormdoc.EndMarker) {
		t.Fatal("markers survived removal")
	}
	if !strings.Contains(once, "@property string $Title") {
		t.Error("interior payload should survive marker cleanup")
	}

	twice := engine.RemoveMarkers(once)
	if twice != once {
		t.Errorf("second removal changed the text:\nfirst:  %q\nsecond: %q", once, twice)
	}
}
