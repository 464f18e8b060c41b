package manifest

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ormdoc/internal/files/filesystem"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// Load reads and validates a class manifest from the given path.
// A missing file is reported as ormdoc.ErrManifestNotFound so callers can
// map it to the dedicated exit code.
func Load(fsys filesystem.Provider, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ormdoc.ErrManifestNotFound)
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
