package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ormdoc/internal/services"
	"github.com/vvka-141/ormdoc/internal/tui"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <project_path>",
	Short: "Upsert generated annotation blocks for all manifest classes",
	Long: `Annotate processes every entity and extension class in the project's
class manifest, in manifest order (entities first).

For each class it:
1. Consults the module and class allow lists from ormdoc.yaml
2. Resolves the declaring file (classes without one are skipped)
3. Replaces the existing generated block, or inserts a new one
   immediately before the class declaration
4. Writes the file only when its content actually changed

Classes with nothing to annotate, and files whose declaration anchor
cannot be found, are silently skipped; the batch always runs to the end.

Examples:
  # Annotate everything the manifest and allow lists permit
  ormdoc annotate ./myproject

  # Preview without writing
  ormdoc annotate ./myproject --dry-run

  # Annotate a single class
  ormdoc annotate ./myproject --class Member

  # Skip the interactive confirmation (CI does this implicitly)
  ormdoc annotate ./myproject --force`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

var (
	annotateClass  string
	annotateDryRun bool
	annotateForce  bool
)

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().StringVar(&annotateClass, "class", "",
		"Restrict the run to a single class from the manifest")
	annotateCmd.Flags().BoolVar(&annotateDryRun, "dry-run", false,
		"Report what would change without writing any file")
	annotateCmd.Flags().BoolVar(&annotateForce, "force", false,
		"Write without asking for confirmation")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	proj, err := loadProject(args[0], annotateClass, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	// Preview pass: the engine is idempotent, so probing and then
	// writing produces the same text as writing directly.
	preview := proj.annotator.Run(proj.worklist, services.RunOptions{DryRun: true})
	if annotateDryRun {
		printSummary(preview, true)
		return failureError(preview)
	}

	if preview.Changed() == 0 {
		printSummary(preview, false)
		return failureError(preview)
	}

	if !annotateForce {
		ok, err := tui.ConfirmWrite(
			fmt.Sprintf("Write annotations for %d class(es)?", preview.Changed()),
			pendingClasses(preview)...)
		if err != nil {
			return err
		}
		if !ok {
			return ormdoc.ErrApprovalDenied
		}
	}

	report := proj.annotator.Run(proj.worklist, services.RunOptions{})
	printSummary(report, false)
	return failureError(report)
}

// pendingClasses lists the classes a preview run would change.
func pendingClasses(report *ormdoc.BatchReport) []string {
	var out []string
	for _, r := range report.Results {
		if r.Outcome == ormdoc.OutcomeInserted || r.Outcome == ormdoc.OutcomeUpdated {
			out = append(out, r.Class.String())
		}
	}
	return out
}

// failureError maps per-class failures to the batch exit status. Failed
// classes never abort the batch, but the process must not exit zero.
func failureError(report *ormdoc.BatchReport) error {
	if n := report.Count(ormdoc.OutcomeFailed); n > 0 {
		return fmt.Errorf("%d class(es) failed", n)
	}
	return nil
}

// printSummary renders the one-line batch summary to stdout.
func printSummary(report *ormdoc.BatchReport, dryRun bool) {
	symbol := tui.SuccessStyle.Render(tui.SymbolCheck)
	if report.Count(ormdoc.OutcomeFailed) > 0 {
		symbol = tui.ErrorStyle.Render(tui.SymbolCross)
	}

	label := ""
	if dryRun {
		label = tui.MutedStyle.Render(" (dry-run)")
	}

	fmt.Printf("%s %d inserted, %d updated, %d unchanged, %d skipped, %d failed%s\n",
		symbol,
		report.Count(ormdoc.OutcomeInserted),
		report.Count(ormdoc.OutcomeUpdated),
		report.Count(ormdoc.OutcomeUnchanged),
		report.Count(ormdoc.OutcomeSkipped),
		report.Count(ormdoc.OutcomeFailed),
		label)
}
