package main

import (
	"fmt"
	"xcadd/internal/pbx"

	"github.com/charmbracelet/lipgloss"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// printResult writes the per-entry report: one line per skipped,
// duplicate and pending file, then any pass warnings.
func printResult(res *pbx.Result) {
	for _, e := range res.Skipped {
		fmt.Println(skippedStyle.Render("Already exists: " + e.Name()))
	}
	for _, e := range res.Duplicates {
		fmt.Println(warnStyle.Render("Duplicate name, skipped: " + e.Path))
	}
	for _, e := range res.Added {
		fmt.Println(addedStyle.Render("Will add: " + e.Name))
	}
	for _, w := range res.Warnings {
		fmt.Println(warnStyle.Render("Warning: " + w))
	}
}

func styleSummary(s string) string {
	return summaryStyle.Render(s)
}
