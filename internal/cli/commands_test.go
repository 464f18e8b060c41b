package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

func resetAnnotateFlags() {
	annotateClass = ""
	annotateDryRun = false
	annotateForce = false
}

func resetRemoveFlags() {
	removeClass = ""
	removeForce = false
}

// writeProject lays out a minimal annotatable project in a temp dir.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"ormdoc.yaml": "enabled: true\nmodules:\n  - app\n",
		"ormdoc-classes.yaml": `classes:
  - name: Member
    module: app
    file: src/Member.php
    tags:
      - "@property string $Email"
  - name: MemberExtension
    module: app
    kind: extension
    file: src/MemberExtension.php
    tags:
      - "@property bool $Subscribed"
`,
		"src/Member.php":          "<?php\n\nclass Member extends DataObject {\n}\n",
		"src/MemberExtension.php": "<?php\n\nclass MemberExtension extends Extension {\n}\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// Keep runs hermetic regardless of the host environment
	t.Setenv("ORMDOC_ENABLED", "")
	t.Setenv("ORMDOC_MANIFEST", "")
	t.Setenv("ORMDOC_NON_INTERACTIVE", "1")

	return dir
}

func TestAnnotateCmd_ArgsValidation(t *testing.T) {
	err := annotateCmd.Args(annotateCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	if err := annotateCmd.Args(annotateCmd, []string{"a", "b"}); err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestAnnotateCmd_EndToEnd(t *testing.T) {
	resetAnnotateFlags()
	dir := writeProject(t)
	annotateForce = true

	if err := runAnnotate(annotateCmd, []string{dir}); err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, ormdoc.StartMarker) || !strings.Contains(text, ormdoc.EndMarker) {
		t.Errorf("expected generated block in file, got:\n%s", text)
	}
	if !strings.Contains(text, "@property string $Email") {
		t.Errorf("expected tag payload in file, got:\n%s", text)
	}

	// Second run must not rewrite anything (file content stable).
	if err := runAnnotate(annotateCmd, []string{dir}); err != nil {
		t.Fatalf("second annotate failed: %v", err)
	}
	again, err := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != text {
		t.Error("second run changed a file that was already up to date")
	}
}

func TestAnnotateCmd_DryRunWritesNothing(t *testing.T) {
	resetAnnotateFlags()
	dir := writeProject(t)
	annotateDryRun = true

	before, _ := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	if err := runAnnotate(annotateCmd, []string{dir}); err != nil {
		t.Fatalf("dry-run failed: %v", err)
	}
	after, _ := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	if string(before) != string(after) {
		t.Error("dry-run modified a file")
	}
}

func TestAnnotateCmd_SingleClass(t *testing.T) {
	resetAnnotateFlags()
	dir := writeProject(t)
	annotateForce = true
	annotateClass = "Member"

	if err := runAnnotate(annotateCmd, []string{dir}); err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	other, _ := os.ReadFile(filepath.Join(dir, "src", "MemberExtension.php"))
	if strings.Contains(string(other), ormdoc.StartMarker) {
		t.Error("class not selected by --class was annotated")
	}
}

func TestAnnotateCmd_UnknownClass(t *testing.T) {
	resetAnnotateFlags()
	dir := writeProject(t)
	annotateClass = "Nope"

	err := runAnnotate(annotateCmd, []string{dir})
	if err == nil {
		t.Fatal("Expected error for class missing from manifest")
	}
	if code := ormdoc.ExitCodeForError(err); code != ormdoc.ExitConfigError {
		t.Errorf("Expected exit code %d, got %d for: %v", ormdoc.ExitConfigError, code, err)
	}
}

func TestAnnotateCmd_MissingConfig(t *testing.T) {
	resetAnnotateFlags()
	dir := t.TempDir()
	t.Setenv("ORMDOC_ENABLED", "")

	err := runAnnotate(annotateCmd, []string{dir})
	if err == nil {
		t.Fatal("Expected error for missing ormdoc.yaml")
	}
	if code := ormdoc.ExitCodeForError(err); code != ormdoc.ExitConfigError {
		t.Errorf("Expected exit code %d, got %d for: %v", ormdoc.ExitConfigError, code, err)
	}
}

func TestAnnotateCmd_DisabledProject(t *testing.T) {
	resetAnnotateFlags()
	dir := writeProject(t)
	if err := os.WriteFile(filepath.Join(dir, "ormdoc.yaml"),
		[]byte("enabled: false\nmodules:\n  - app\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runAnnotate(annotateCmd, []string{dir})
	if err == nil {
		t.Fatal("Expected error for disabled project")
	}
	if code := ormdoc.ExitCodeForError(err); code != ormdoc.ExitConfigError {
		t.Errorf("Expected exit code %d, got %d for: %v", ormdoc.ExitConfigError, code, err)
	}
}

func TestAnnotateCmd_EnvOverrideEnables(t *testing.T) {
	resetAnnotateFlags()
	dir := writeProject(t)
	if err := os.WriteFile(filepath.Join(dir, "ormdoc.yaml"),
		[]byte("enabled: false\nmodules:\n  - app\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORMDOC_ENABLED", "1")
	annotateForce = true

	if err := runAnnotate(annotateCmd, []string{dir}); err != nil {
		t.Fatalf("annotate with ORMDOC_ENABLED=1 failed: %v", err)
	}
}

func TestStatusCmd_DoesNotWrite(t *testing.T) {
	statusClass = ""
	dir := writeProject(t)

	before, _ := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	if err := runStatus(statusCmd, []string{dir}); err != nil {
		t.Fatalf("status failed: %v", err)
	}
	after, _ := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	if string(before) != string(after) {
		t.Error("status modified a file")
	}
}

func TestRemoveCmd_StripsMarkers(t *testing.T) {
	resetAnnotateFlags()
	resetRemoveFlags()
	dir := writeProject(t)

	annotateForce = true
	if err := runAnnotate(annotateCmd, []string{dir}); err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	removeForce = true
	if err := runRemove(removeCmd, []string{dir}); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "src", "Member.php"))
	text := string(data)
	if strings.Contains(text, ormdoc.StartMarker) || strings.Contains(text, ormdoc.EndMarker) {
		t.Errorf("expected markers stripped, got:\n%s", text)
	}
	// Interior tag lines survive cleanup.
	if !strings.Contains(text, "@property string $Email") {
		t.Errorf("expected tag lines to survive, got:\n%s", text)
	}

	// Removing again is a no-op.
	if err := runRemove(removeCmd, []string{dir}); err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
}
