package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ormdoc/internal/files/filesystem"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the per-project ormdoc configuration, loaded from
// ormdoc.yaml in the project root. It is passed explicitly into the
// orchestrator; there is no process-wide mutable state.
type ProjectConfig struct {
	// Enabled switches annotation generation on for this project
	Enabled bool `yaml:"enabled"`

	// Modules is the module allow list; only listed modules are touched
	Modules []string `yaml:"modules"`

	// Classes optionally restricts annotation to the named classes.
	// Empty means every class of an allowed module.
	Classes []string `yaml:"classes,omitempty"`

	// Manifest is the class manifest file, relative to the project root.
	// Defaults to ormdoc-classes.yaml.
	Manifest string `yaml:"manifest,omitempty"`
}

// Load reads ormdoc.yaml from the project root.
func Load(fsys filesystem.Provider, sourcePath string) (*ProjectConfig, error) {
	configPath := path.Join(sourcePath, ormdoc.ConfigFileName)
	data, err := fsys.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", configPath, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return &cfg, nil
}

// ManifestPath returns the manifest location for a project root, applying
// the default file name when the config leaves it unset.
func (c *ProjectConfig) ManifestPath(sourcePath string) string {
	name := c.Manifest
	if name == "" {
		name = ormdoc.DefaultManifestName
	}
	return path.Join(sourcePath, name)
}
