package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ormdoc",
	Short: "Docblock annotation maintenance for data-model classes",
	Long: `ormdoc maintains machine-generated docblock annotations in the source
files of data-model classes, so IDEs and static analyzers can see the
fields and relations that are otherwise only known to the runtime ORM.

The generated block lives between two marker lines inside a docblock
immediately preceding the class declaration. Re-running ormdoc with
unchanged tags rewrites nothing: files change only when content
actually differs.

Exit Codes:
  0  - Success
  1  - General error (one or more classes failed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or annotations disabled
  12 - User denied write approval
  14 - Class manifest not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for ormdoc")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
