package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ormdoc/internal/services"
	"github.com/vvka-141/ormdoc/internal/tui"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

var statusCmd = &cobra.Command{
	Use:   "status <project_path>",
	Short: "Report per-class annotation state without writing anything",
	Long: `Status runs the full annotation pipeline in preview mode and prints
one line per manifest class: whether its generated block is current,
would be inserted or updated, or why it would be skipped.

No file is ever written. Exit status follows the same rules as
annotate, so status works as a CI drift check.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

var statusClass string

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusClass, "class", "",
		"Restrict the report to a single class from the manifest")
}

func runStatus(cmd *cobra.Command, args []string) error {
	proj, err := loadProject(args[0], statusClass, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	report := proj.annotator.Run(proj.worklist, services.RunOptions{DryRun: true})

	fmt.Println(tui.TitleStyle.Render("Annotation status"))
	for _, r := range report.Results {
		fmt.Println(statusLine(r))
	}
	fmt.Println()
	printSummary(report, true)
	return failureError(report)
}

func statusLine(r ormdoc.ClassResult) string {
	name := r.Class.String()
	switch r.Outcome {
	case ormdoc.OutcomeUnchanged:
		return fmt.Sprintf("  %s %s up to date", tui.SuccessStyle.Render(tui.SymbolCheck), name)
	case ormdoc.OutcomeInserted:
		return fmt.Sprintf("  %s %s block missing, would insert", tui.WarningStyle.Render(tui.SymbolBullet), name)
	case ormdoc.OutcomeUpdated:
		return fmt.Sprintf("  %s %s block stale, would update", tui.WarningStyle.Render(tui.SymbolBullet), name)
	case ormdoc.OutcomeSkipped:
		return fmt.Sprintf("  %s %s skipped (%s)", tui.MutedStyle.Render(tui.SymbolDot), name, r.Reason)
	case ormdoc.OutcomeFailed:
		return fmt.Sprintf("  %s %s failed: %v", tui.ErrorStyle.Render(tui.SymbolCross), name, r.Err)
	default:
		return fmt.Sprintf("  %s %s", tui.SymbolDot, name)
	}
}
