package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ormdoc/internal/services"
	"github.com/vvka-141/ormdoc/internal/tui"
	"github.com/vvka-141/ormdoc/pkg/ormdoc"
)

var removeCmd = &cobra.Command{
	Use:   "remove <project_path>",
	Short: "Strip generated marker lines from manifest class files",
	Long: `Remove deletes the marker lines of previously generated annotation
blocks from every manifest class file the allow lists permit. Tag
lines between the markers are left in place; only the marker lines
themselves are removed.

Files without markers are untouched, so remove is safe to re-run.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

var (
	removeClass string
	removeForce bool
)

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().StringVar(&removeClass, "class", "",
		"Restrict the cleanup to a single class from the manifest")
	removeCmd.Flags().BoolVar(&removeForce, "force", false,
		"Write without asking for confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	proj, err := loadProject(args[0], removeClass, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	preview := proj.annotator.RunRemove(proj.worklist, services.RunOptions{DryRun: true})
	if preview.Changed() == 0 {
		printSummary(preview, false)
		return failureError(preview)
	}

	if !removeForce {
		ok, err := tui.ConfirmWrite(
			fmt.Sprintf("Remove generated markers from %d file(s)?", preview.Changed()),
			pendingClasses(preview)...)
		if err != nil {
			return err
		}
		if !ok {
			return ormdoc.ErrApprovalDenied
		}
	}

	report := proj.annotator.RunRemove(proj.worklist, services.RunOptions{})
	printSummary(report, false)
	return failureError(report)
}
