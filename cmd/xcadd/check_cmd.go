package main

import (
	"fmt"
	"os"
	"xcadd/internal/pbx"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which declared files the manifest already contains",
	Long: `Runs the same file-name containment test the patcher uses, without
mutating anything. Exits non-zero when any declared file is missing, so
it can gate CI. Note the test is name-based: a file name mentioned
anywhere in the manifest counts as present.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(cfg.Project)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	res := pbx.NewPatcher(cfg.Groups, logger).Diff(string(raw), cfg.Files)
	printResult(res)

	if len(res.Added) > 0 {
		return fmt.Errorf("%d of %d declared file(s) missing from project", len(res.Added), len(cfg.Files))
	}
	fmt.Println(styleSummary("All files already in project!"))
	return nil
}
