// Package config loads the xcadd run configuration: which manifest to
// patch, the declared candidate files, and the group anchor table.
package config

import (
	"fmt"
	"os"

	"xcadd/internal/pbx"

	"gopkg.in/yaml.v3"
)

// Config holds the inputs for one run.
type Config struct {
	// Project is the path to the project.pbxproj manifest.
	Project string `yaml:"project"`

	// Files declares the candidates the project should reference.
	Files []pbx.Entry `yaml:"files"`

	// Groups overrides the group anchor table. Rules are checked in
	// order; the first substring match against the entry path wins.
	Groups []pbx.GroupRule `yaml:"groups"`
}

// Default returns the built-in configuration: the ThinkFast manifest and
// the file set the tool was originally written to register.
func Default() *Config {
	return &Config{
		Project: "ThinkFast.xcodeproj/project.pbxproj",
		Files: []pbx.Entry{
			{Path: "ThinkFast/Data/Local/OnboardingQuestManager.swift", Group: "Data/Local"},
			{Path: "ThinkFast/Data/Local/StreakRecoveryManager.swift", Group: "Data/Local"},
			{Path: "ThinkFast/Domain/UseCase/UserBaselineCalculator.swift", Group: "Domain/UseCase"},
			{Path: "ThinkFast/Presentation/Auth/SignInView.swift", Group: "Presentation/Auth"},
			{Path: "ThinkFast/Presentation/Charts/AppBreakdownDonutChart.swift", Group: "Presentation/Charts"},
			{Path: "ThinkFast/Presentation/Charts/ChartModels.swift", Group: "Presentation/Charts"},
			{Path: "ThinkFast/Presentation/Charts/GoalProgressLineChart.swift", Group: "Presentation/Charts"},
			{Path: "ThinkFast/Presentation/Charts/TimePatternHeatmap.swift", Group: "Presentation/Charts"},
			{Path: "ThinkFast/Presentation/Charts/WeeklyUsageChart.swift", Group: "Presentation/Charts"},
			{Path: "ThinkFast/Presentation/Home/BaselineComparisonCard.swift", Group: "Presentation/Home"},
			{Path: "ThinkFast/Presentation/Home/QuestProgressCard.swift", Group: "Presentation/Home"},
			{Path: "ThinkFast/Presentation/Home/QuickWinCelebrations.swift", Group: "Presentation/Home"},
			{Path: "ThinkFast/Presentation/Home/StreakRecoveryCard.swift", Group: "Presentation/Home"},
		},
		Groups: pbx.DefaultGroupRules(),
	}
}

// Load reads a YAML config file. An empty path yields the defaults;
// fields omitted from the file are filled in from the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if file.Project != "" {
		cfg.Project = file.Project
	}
	if len(file.Files) != 0 {
		cfg.Files = file.Files
	}
	if len(file.Groups) != 0 {
		cfg.Groups = file.Groups
	}
	return cfg, nil
}
