package manifest

import (
	"path"
	"strings"

	"github.com/vvka-141/ormdoc/internal/files/filesystem"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// Resolver implements the orchestrator's FileResolver and TagSource
// boundaries on top of a loaded manifest.
type Resolver struct {
	manifest *Manifest
	fsys     filesystem.Provider
	root     string
}

// NewResolver creates a Resolver rooted at the project directory.
func NewResolver(m *Manifest, fsys filesystem.Provider, root string) *Resolver {
	return &Resolver{manifest: m, fsys: fsys, root: root}
}

// ResolvePath resolves a class to its writable declaring file. A class
// with no file entry, a missing file, or a non-writable file yields
// ok=false; all of these are silent skips, not errors.
func (r *Resolver) ResolvePath(class ormdoc.ClassDescriptor) (string, bool) {
	entry, found := r.manifest.Lookup(class.Name)
	if !found || entry.File == "" {
		return "", false
	}

	full := path.Join(r.root, entry.File)
	info, err := r.fsys.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	if info.Mode().Perm()&0200 == 0 {
		return "", false
	}
	return full, true
}

// Tags renders the class's tag lines into the embeddable payload: each
// tag on its own comment-continuation line, in manifest order. A class
// with no tags yields the empty payload, meaning nothing to annotate.
func (r *Resolver) Tags(class ormdoc.ClassDescriptor) string {
	entry, found := r.manifest.Lookup(class.Name)
	if !found {
		return ""
	}

	var b strings.Builder
	for _, tag := range entry.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		b.WriteString(ormdoc.CommentContinuation)
		b.WriteString(tag)
		b.WriteString("\n")
	}
	return b.String()
}
