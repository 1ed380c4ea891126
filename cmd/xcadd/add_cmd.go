package main

import (
	"fmt"
	"os"
	"xcadd/internal/diffview"
	"xcadd/internal/pbx"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addDryRun bool
	addBackup bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Patch the manifest so every declared file is registered",
	Long: `Reads the manifest, decides which declared files are missing by file
name, derives their identifiers and inserts the four record sets
(reference, build file, group membership, Sources phase), then writes
the manifest back in place via an atomic rename.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Show the diff without writing the manifest")
	addCmd.Flags().BoolVar(&addBackup, "backup", false, "Keep a timestamped copy of the original manifest")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(cfg.Project)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	content := string(raw)

	patcher := pbx.NewPatcher(cfg.Groups, logger)
	patched, res := patcher.Patch(content, cfg.Files)

	printResult(res)

	if len(res.Added) == 0 {
		fmt.Println(styleSummary("All files already in project!"))
		return nil
	}

	if addDryRun {
		fmt.Print(diffview.Render(cfg.Project, diffview.Compute(content, patched)))
		fmt.Println(styleSummary(fmt.Sprintf("dry-run: %d file(s) would be added", len(res.Added))))
		return nil
	}

	if err := pbx.WriteManifest(cfg.Project, patched, addBackup); err != nil {
		return err
	}

	logger.Info("manifest patched",
		zap.String("project", cfg.Project),
		zap.Int("added", len(res.Added)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("warnings", len(res.Warnings)))
	fmt.Println(styleSummary(fmt.Sprintf("Successfully added %d file(s) to project!", len(res.Added))))
	return nil
}
