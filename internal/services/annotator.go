package services

import (
	"fmt"
	"strings"

	"github.com/vvka-141/ormdoc/internal/annotate"
	"github.com/vvka-141/ormdoc/internal/files/filesystem"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

// PermissionGate is consulted before any class is touched. Both
// predicates must pass; absence of permission is a silent skip.
type PermissionGate interface {
	ModuleAllowed(module string) bool
	ClassAllowed(class string) bool
}

// FileResolver resolves a class to its writable declaring file.
// ok=false means the class has no such file (abstract or
// framework-internal classes) and must be skipped.
type FileResolver interface {
	ResolvePath(class ormdoc.ClassDescriptor) (string, bool)
}

// TagSource supplies the ready-to-embed annotation payload for a class.
// An empty result means there is nothing to annotate.
type TagSource interface {
	Tags(class ormdoc.ClassDescriptor) string
}

// RunOptions controls a batch run.
type RunOptions struct {
	// DryRun reports what would change without writing any file
	DryRun bool
}

// Annotator orchestrates the per-class pipeline: permission check, file
// resolution, upsert, change gate, conditional write. Classes are
// processed strictly one at a time; a skip or failure of one class never
// aborts the batch.
type Annotator struct {
	gate     PermissionGate
	resolver FileResolver
	tags     TagSource
	fsys     filesystem.Provider
	engine   *annotate.Engine
	change   *annotate.ChangeGate
	logger   ormdoc.Logger
}

// NewAnnotator creates an Annotator with all collaborators injected.
// Nil dependencies are programmer errors and panic at construction time
// rather than surfacing as nil dereferences deep in a batch run.
func NewAnnotator(
	gate PermissionGate,
	resolver FileResolver,
	tags TagSource,
	fsys filesystem.Provider,
	logger ormdoc.Logger,
) *Annotator {
	if gate == nil {
		panic("gate cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if tags == nil {
		panic("tags cannot be nil")
	}
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &Annotator{
		gate:     gate,
		resolver: resolver,
		tags:     tags,
		fsys:     fsys,
		engine:   annotate.NewEngine(),
		change:   annotate.NewChangeGate(),
		logger:   logger,
	}
}

// Run processes the whole worklist and returns the batch report. A module
// that fails the module-level permission check is short-circuited: every
// class in it is recorded as skipped without further checks.
func (a *Annotator) Run(worklist []ormdoc.ClassDescriptor, opts RunOptions) *ormdoc.BatchReport {
	report := ormdoc.NewBatchReport()
	a.logger.Verbose("annotation run %s: %d classes", report.RunID, len(worklist))

	deniedModules := make(map[string]bool)
	for _, class := range worklist {
		if deniedModules[class.Module] {
			report.Results = append(report.Results, ormdoc.ClassResult{
				Class:   class,
				Outcome: ormdoc.OutcomeSkipped,
				Reason:  ormdoc.SkipModuleDenied,
			})
			continue
		}
		if !a.gate.ModuleAllowed(class.Module) {
			deniedModules[class.Module] = true
			a.logger.Verbose("module %s not allowed, skipping its classes", class.Module)
			report.Results = append(report.Results, ormdoc.ClassResult{
				Class:   class,
				Outcome: ormdoc.OutcomeSkipped,
				Reason:  ormdoc.SkipModuleDenied,
			})
			continue
		}

		report.Results = append(report.Results, a.AnnotateClass(class, opts))
	}

	return report
}

// AnnotateClass runs the pipeline for a single class. Assumes the
// module-level permission check has not yet been applied, so it is safe
// to call directly for one-off runs.
func (a *Annotator) AnnotateClass(class ormdoc.ClassDescriptor, opts RunOptions) ormdoc.ClassResult {
	result := ormdoc.ClassResult{Class: class}

	if !a.gate.ModuleAllowed(class.Module) {
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipModuleDenied
		return result
	}
	if !a.gate.ClassAllowed(class.Name) {
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipClassDenied
		return result
	}

	path, ok := a.resolver.ResolvePath(class)
	if !ok {
		a.logger.Verbose("%s: no writable declaring file", class)
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipNoFile
		return result
	}
	result.Path = path

	original, err := a.fsys.ReadFile(path)
	if err != nil {
		result.Outcome = ormdoc.OutcomeFailed
		result.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return result
	}

	candidate, upsert, err := a.engine.Upsert(string(original), class.Name, a.tags.Tags(class))
	if err != nil {
		a.logger.Error("%s: %v", class, err)
		result.Outcome = ormdoc.OutcomeFailed
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}

	switch upsert.Reason {
	case annotate.ReasonEmptyPayload:
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipNoPayload
		return result
	case annotate.ReasonAnchorNotFound:
		a.logger.Verbose("%s: declaration anchor not found in %s", class, path)
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipAnchorNotFound
		return result
	}

	return a.persist(result, original, candidate, upsert.Action, opts, "Annotated")
}

// RemoveClass strips the generated markers from a class's file, leaving
// interior content in place. Gating and change detection match the
// annotation path.
func (a *Annotator) RemoveClass(class ormdoc.ClassDescriptor, opts RunOptions) ormdoc.ClassResult {
	result := ormdoc.ClassResult{Class: class}

	if !a.gate.ModuleAllowed(class.Module) {
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipModuleDenied
		return result
	}
	if !a.gate.ClassAllowed(class.Name) {
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipClassDenied
		return result
	}

	path, ok := a.resolver.ResolvePath(class)
	if !ok {
		result.Outcome = ormdoc.OutcomeSkipped
		result.Reason = ormdoc.SkipNoFile
		return result
	}
	result.Path = path

	original, err := a.fsys.ReadFile(path)
	if err != nil {
		result.Outcome = ormdoc.OutcomeFailed
		result.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return result
	}

	candidate := a.engine.RemoveMarkers(string(original))
	return a.persist(result, original, candidate, annotate.ActionReplaced, opts, "Cleaned")
}

// RunRemove applies RemoveClass across the worklist.
func (a *Annotator) RunRemove(worklist []ormdoc.ClassDescriptor, opts RunOptions) *ormdoc.BatchReport {
	report := ormdoc.NewBatchReport()
	a.logger.Verbose("marker cleanup run %s: %d classes", report.RunID, len(worklist))

	for _, class := range worklist {
		report.Results = append(report.Results, a.RemoveClass(class, opts))
	}
	return report
}

// persist applies the change gate and, outside dry-run mode, writes the
// candidate back. Only a real byte difference counts as a change.
func (a *Annotator) persist(result ormdoc.ClassResult, original []byte, candidate string, action annotate.Action, opts RunOptions, verb string) ormdoc.ClassResult {
	if !a.change.Changed(string(original), candidate) {
		result.Outcome = ormdoc.OutcomeUnchanged
		return result
	}

	if action == annotate.ActionInserted {
		result.Outcome = ormdoc.OutcomeInserted
	} else {
		result.Outcome = ormdoc.OutcomeUpdated
	}

	if opts.DryRun {
		a.logger.Info("Would have %s %s (%s)", strings.ToLower(verb), result.Class, result.Path)
		return result
	}

	if err := a.fsys.WriteFile(result.Path, []byte(candidate)); err != nil {
		result.Outcome = ormdoc.OutcomeFailed
		result.Err = fmt.Errorf("failed to write %s: %w", result.Path, err)
		return result
	}

	a.logger.Info("%s %s (%s)", verb, result.Class, result.Path)
	return result
}
