package pbx

import "strings"

// GroupRule maps a path classification to the anchor text whose line a
// group-membership record is inserted after. Rules are checked in order
// and the first substring match wins, so more specific rules go first.
// An empty Match is the catch-all.
type GroupRule struct {
	Match  string `yaml:"match"`
	Anchor string `yaml:"anchor"`
}

// DefaultGroupRules mirrors the layout of the ThinkFast project the tool
// was originally written against. Projects with a different group tree
// override this table via the config file.
func DefaultGroupRules() []GroupRule {
	return []GroupRule{
		{Match: "Data/Local", Anchor: "Local /* Local */"},
		{Match: "UseCase", Anchor: "UseCase /* UseCase */"},
		{Match: "Home", Anchor: "ManageAppsView.swift"},
		{Match: "Charts", Anchor: "ChartModels.swift"},
		{Match: "Auth", Anchor: "Presentation /* Presentation */"},
		{Match: "", Anchor: "ThinkFast /* ThinkFast */"},
	}
}

// classifyGroup returns the anchor text for a candidate path, or "" when
// no rule matches and the table has no catch-all.
func classifyGroup(rules []GroupRule, path string) string {
	for _, r := range rules {
		if r.Match == "" || strings.Contains(path, r.Match) {
			return r.Anchor
		}
	}
	return ""
}
