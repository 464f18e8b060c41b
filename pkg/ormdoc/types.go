package ormdoc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ClassKind distinguishes the two flavors of data-model classes ormdoc
// annotates.
type ClassKind string

const (
	// KindEntity is a class representing a persisted data-model record.
	KindEntity ClassKind = "entity"

	// KindExtension is a class that augments an entity's behavior or
	// fields without subclassing it.
	KindExtension ClassKind = "extension"
)

// ClassDescriptor identifies one class in the annotation worklist.
// The name doubles as the textual anchor: the engine locates the literal
// substring "class <Name> extends" in the declaring file.
type ClassDescriptor struct {
	// Name is the class name as it appears in its declaration
	Name string

	// Module is the module the class belongs to, used for module-level
	// permission gating
	Module string

	// Kind is the class flavor (entity or extension)
	Kind ClassKind
}

// String returns "module/Name" for log and report output.
func (d ClassDescriptor) String() string {
	if d.Module == "" {
		return d.Name
	}
	return d.Module + "/" + d.Name
}

// Validate checks the descriptor has the required fields.
func (d ClassDescriptor) Validate() error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, fmt.Errorf("class name is required: %w", ErrInvalidConfig))
	}

	if d.Kind != "" && d.Kind != KindEntity && d.Kind != KindExtension {
		errs = append(errs, fmt.Errorf("unknown class kind %q: %w", d.Kind, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Outcome classifies the result of processing one class.
type Outcome int

const (
	// OutcomeUnchanged means the generated block is already up to date;
	// no bytes were written.
	OutcomeUnchanged Outcome = iota

	// OutcomeInserted means a new block was inserted before the class
	// declaration.
	OutcomeInserted

	// OutcomeUpdated means an existing block was replaced in place.
	OutcomeUpdated

	// OutcomeSkipped means the class was left untouched for one of the
	// silent-skip reasons (see SkipReason).
	OutcomeSkipped

	// OutcomeFailed means processing aborted with an error (filesystem
	// failure or malformed marker pair). The batch continues.
	OutcomeFailed
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// SkipReason explains why a class was skipped. Skips are expected
// conditions, not errors.
type SkipReason int

const (
	// SkipNone means the class was not skipped.
	SkipNone SkipReason = iota

	// SkipModuleDenied means the module-level permission check failed.
	SkipModuleDenied

	// SkipClassDenied means the class-level permission check failed.
	SkipClassDenied

	// SkipNoFile means no writable declaring file could be resolved.
	SkipNoFile

	// SkipNoPayload means the tag source had nothing to annotate.
	SkipNoPayload

	// SkipAnchorNotFound means no generated block exists and the class
	// declaration anchor could not be located, so there is nowhere to
	// insert one.
	SkipAnchorNotFound
)

// String returns a human-readable skip reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipModuleDenied:
		return "module not allowed"
	case SkipClassDenied:
		return "class not allowed"
	case SkipNoFile:
		return "no writable file"
	case SkipNoPayload:
		return "nothing to annotate"
	case SkipAnchorNotFound:
		return "class declaration anchor not found"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// ClassResult is the typed outcome of processing a single class.
type ClassResult struct {
	// Class is the descriptor that was processed
	Class ClassDescriptor

	// Path is the resolved declaring file, empty if resolution failed
	Path string

	// Outcome classifies what happened
	Outcome Outcome

	// Reason is set when Outcome is OutcomeSkipped
	Reason SkipReason

	// Err is set when Outcome is OutcomeFailed
	Err error
}

// BatchReport aggregates the results of one annotation run.
type BatchReport struct {
	// RunID uniquely identifies this batch run in logs and reports
	RunID uuid.UUID

	// Results holds one entry per processed class, in worklist order
	Results []ClassResult
}

// NewBatchReport creates an empty report with a fresh run ID.
func NewBatchReport() *BatchReport {
	return &BatchReport{RunID: uuid.New()}
}

// Count returns the number of results with the given outcome.
func (r *BatchReport) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Changed returns the number of classes whose files were (or, in dry-run
// mode, would be) rewritten.
func (r *BatchReport) Changed() int {
	return r.Count(OutcomeInserted) + r.Count(OutcomeUpdated)
}
