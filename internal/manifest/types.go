package manifest

import (
	"errors"
	"fmt"

	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// Class is one manifest entry: a data-model class together with the file
// that declares it and the tag lines an IDE should see for it.
type Class struct {
	// Name is the class name as it appears in its declaration
	Name string `yaml:"name"`

	// Module is the owning module, checked against the module allow list
	Module string `yaml:"module"`

	// Kind is "entity" or "extension"; defaults to entity when omitted
	Kind ormdoc.ClassKind `yaml:"kind,omitempty"`

	// File is the declaring source file, relative to the project root.
	// Empty for classes with no writable file (abstract or framework
	// classes); those are silently skipped.
	File string `yaml:"file,omitempty"`

	// Tags are the raw annotation tags, e.g. "@property string $Title".
	// The comment-continuation prefix is added when the payload is
	// rendered, not here.
	Tags []string `yaml:"tags,omitempty"`
}

// Descriptor returns the class identifier used by the orchestrator.
func (c Class) Descriptor() ormdoc.ClassDescriptor {
	kind := c.Kind
	if kind == "" {
		kind = ormdoc.KindEntity
	}
	return ormdoc.ClassDescriptor{Name: c.Name, Module: c.Module, Kind: kind}
}

// Manifest is the externally supplied worklist of annotatable classes.
type Manifest struct {
	Classes []Class `yaml:"classes"`
}

// Validate checks manifest integrity: every class needs a name, names
// must be unique, and kinds must be known.
func (m *Manifest) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(m.Classes))

	for i, c := range m.Classes {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("classes[%d]: name is required: %w", i, ormdoc.ErrInvalidConfig))
			continue
		}
		if _, dup := seen[c.Name]; dup {
			errs = append(errs, fmt.Errorf("classes[%d]: duplicate class %q: %w", i, c.Name, ormdoc.ErrInvalidConfig))
		}
		seen[c.Name] = struct{}{}

		if err := c.Descriptor().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("classes[%d] (%s): %w", i, c.Name, err))
		}
	}

	return errors.Join(errs...)
}

// Worklist returns every class as a descriptor, entity classes first and
// extension classes after, preserving manifest order within each kind.
// The batch entry point processes exactly this sequence.
func (m *Manifest) Worklist() []ormdoc.ClassDescriptor {
	out := make([]ormdoc.ClassDescriptor, 0, len(m.Classes))
	for _, c := range m.Classes {
		if d := c.Descriptor(); d.Kind == ormdoc.KindEntity {
			out = append(out, d)
		}
	}
	for _, c := range m.Classes {
		if d := c.Descriptor(); d.Kind == ormdoc.KindExtension {
			out = append(out, d)
		}
	}
	return out
}

// Lookup returns the manifest entry for a class name.
func (m *Manifest) Lookup(name string) (Class, bool) {
	for _, c := range m.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}
