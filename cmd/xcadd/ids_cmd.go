package main

import (
	"xcadd/internal/pbx"

	"github.com/spf13/cobra"
)

var idsCmd = &cobra.Command{
	Use:   "ids <relative-path>",
	Short: "Print the derived identifiers for a project-relative path",
	Long: `Prints the reference and build identifiers xcadd would assign to the
given path. Useful for checking what a patched record will look like, or
for finding a previously inserted record inside the manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: runIDs,
}

func init() {
	rootCmd.AddCommand(idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	cmd.Printf("fileref:   %s\n", pbx.RefID(args[0]))
	cmd.Printf("buildfile: %s\n", pbx.BuildID(args[0]))
	return nil
}
