package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/ormdoc/internal/config"
	"github.com/vvka-141/ormdoc/internal/files/filesystem"
	"github.com/vvka-141/ormdoc/internal/logging"
	"github.com/vvka-141/ormdoc/internal/manifest"
	"github.com/vvka-141/ormdoc/internal/permission"
	"github.com/vvka-141/ormdoc/internal/services"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// project bundles everything a command needs for one run.
type project struct {
	cfg       *config.ProjectConfig
	manifest  *manifest.Manifest
	annotator *services.Annotator
	worklist  []ormdoc.ClassDescriptor
	logger    ormdoc.Logger
}

// loadProject loads .env, configuration, and the class manifest, then
// assembles the annotator with its collaborators. onlyClass, when set,
// restricts the worklist to a single class.
func loadProject(sourcePath, onlyClass string, verbose bool) (*project, error) {
	// Best effort; a missing .env is fine
	_ = godotenv.Load()

	fsys := filesystem.NewOSFileSystem()

	cfg, err := config.Load(fsys, sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("no %s in %s: %w", ormdoc.ConfigFileName, sourcePath, ormdoc.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%v: %w", err, ormdoc.ErrInvalidConfig)
	}
	applyEnvOverrides(cfg)

	if !cfg.Enabled {
		return nil, fmt.Errorf("project %s: %w", sourcePath, ormdoc.ErrAnnotationsDisabled)
	}

	m, err := manifest.Load(fsys, cfg.ManifestPath(sourcePath))
	if err != nil {
		return nil, err
	}

	worklist := m.Worklist()
	if onlyClass != "" {
		worklist = filterWorklist(worklist, onlyClass)
		if len(worklist) == 0 {
			return nil, fmt.Errorf("class %q is not in the manifest: %w", onlyClass, ormdoc.ErrInvalidConfig)
		}
	}

	logger := logging.NewConsoleLogger(verbose)
	resolver := manifest.NewResolver(m, fsys, sourcePath)
	gate := permission.NewGate(cfg.Modules, cfg.Classes)

	return &project{
		cfg:       cfg,
		manifest:  m,
		annotator: services.NewAnnotator(gate, resolver, resolver, fsys, logger),
		worklist:  worklist,
		logger:    logger,
	}, nil
}

// applyEnvOverrides layers ORMDOC_* environment variables over the file
// configuration. Environment wins; this is how CI enables or disables
// runs without editing the project.
func applyEnvOverrides(cfg *config.ProjectConfig) {
	if v := os.Getenv("ORMDOC_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	switch os.Getenv("ORMDOC_ENABLED") {
	case "1", "true":
		cfg.Enabled = true
	case "0", "false":
		cfg.Enabled = false
	}
}

func filterWorklist(worklist []ormdoc.ClassDescriptor, name string) []ormdoc.ClassDescriptor {
	var out []ormdoc.ClassDescriptor
	for _, d := range worklist {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}
