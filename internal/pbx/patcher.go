// Package pbx patches an Xcode project.pbxproj manifest to register
// source files without going through the IDE. The manifest is treated as
// text with located anchors, never parsed into an object model: four
// sequential insertion passes each find a marker and splice new record
// lines in right after it. Identifiers are hash-derived from the entry
// path, so re-running the patch against its own output is a no-op.
package pbx

import (
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"
)

// Markers the insertion passes anchor on.
const (
	fileRefSectionMarker   = "/* Begin PBXFileReference section */"
	buildFileSectionMarker = "/* Begin PBXBuildFile section */"
	sourcesPhaseMarker     = "/* Sources */ = {"
	phaseFilesOpenMarker   = "files = ("
)

// Entry declares a file the project should reference.
type Entry struct {
	Path  string `yaml:"path"`  // project-relative path, e.g. App/Feature/View.swift
	Group string `yaml:"group"` // logical group path, e.g. Feature
}

// Name returns the bare file name. It is the de-duplication key checked
// against the manifest's current content.
func (e Entry) Name() string {
	return path.Base(e.Path)
}

// NewEntry is a candidate the diff pass decided is missing, with its
// derived identifiers attached.
type NewEntry struct {
	Path    string
	Group   string
	Name    string
	RefID   string
	BuildID string
}

// Result reports what a patch run did, or would do under dry-run.
type Result struct {
	Added      []NewEntry
	Skipped    []Entry  // file name already present somewhere in the manifest
	Duplicates []Entry  // later candidate sharing a pending file name
	Warnings   []string // abandoned passes and ungrouped entries
}

// Patcher applies the four-pass anchor insertion protocol.
type Patcher struct {
	rules []GroupRule
	log   *zap.Logger
}

// NewPatcher builds a patcher. A nil or empty rule table falls back to
// DefaultGroupRules; a nil logger is replaced with a nop logger.
func NewPatcher(rules []GroupRule, log *zap.Logger) *Patcher {
	if len(rules) == 0 {
		rules = DefaultGroupRules()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Patcher{rules: rules, log: log}
}

// Diff splits candidates into missing and present by literal containment
// of the bare file name in the manifest text. A name appearing anywhere,
// even in a comment, counts as present; the tool trades that imprecision
// for never building a model of the format. Two missing candidates that
// share a file name cannot both proceed: the later one is reported as a
// duplicate and dropped.
func (p *Patcher) Diff(content string, entries []Entry) *Result {
	res := &Result{}
	pending := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.Contains(content, name):
			res.Skipped = append(res.Skipped, e)
		case pending[name]:
			res.Duplicates = append(res.Duplicates, e)
			p.log.Warn("duplicate file name among candidates",
				zap.String("path", e.Path), zap.String("name", name))
		default:
			pending[name] = true
			res.Added = append(res.Added, NewEntry{
				Path:    e.Path,
				Group:   e.Group,
				Name:    name,
				RefID:   RefID(e.Path),
				BuildID: BuildID(e.Path),
			})
		}
	}
	return res
}

// Patch returns the manifest text with every missing candidate registered:
// one PBXFileReference record, one PBXBuildFile record, one group child
// and one Sources build-phase entry per entry. A missing section marker
// abandons that pass with a warning; the remaining passes still run, so a
// partially patched manifest is possible and is reported, not rolled back.
func (p *Patcher) Patch(content string, entries []Entry) (string, *Result) {
	res := p.Diff(content, entries)
	if len(res.Added) == 0 {
		return content, res
	}

	// Each pass re-locates its anchor on the already-mutated text;
	// offsets from earlier passes are stale by construction.
	content = p.insertAfterMarker(content, fileRefSectionMarker, res, fileRefLine)
	content = p.insertAfterMarker(content, buildFileSectionMarker, res, buildFileLine)
	content = p.linkGroups(content, res)
	content = p.insertPhaseEntries(content, res)
	return content, res
}

// insertAfterMarker splices one record line per new entry immediately
// after the line holding the first occurrence of marker.
func (p *Patcher) insertAfterMarker(content, marker string, res *Result, line func(NewEntry) string) string {
	at, ok := lineEnd(content, 0, marker)
	if !ok {
		p.warnf(res, "marker %q not found; pass skipped", marker)
		return content
	}
	var b strings.Builder
	for _, e := range res.Added {
		b.WriteString(line(e))
	}
	return content[:at] + b.String() + content[at:]
}

// linkGroups appends one membership line per entry after its classified
// group anchor. An anchor absent from the manifest leaves the entry
// compiled but not visually grouped, which is a soft failure.
func (p *Patcher) linkGroups(content string, res *Result) string {
	for _, e := range res.Added {
		anchor := classifyGroup(p.rules, e.Path)
		if anchor == "" {
			p.warnf(res, "no group rule matched %s; left ungrouped", e.Path)
			continue
		}
		at, ok := lineEnd(content, 0, anchor)
		if !ok {
			p.warnf(res, "group anchor %q not found; %s left ungrouped", anchor, e.Name)
			continue
		}
		content = content[:at] + groupChildLine(e) + content[at:]
	}
	return content
}

// insertPhaseEntries splices the build ids into the Sources build phase,
// right after its "files = (" opener.
func (p *Patcher) insertPhaseEntries(content string, res *Result) string {
	phase := strings.Index(content, sourcesPhaseMarker)
	if phase == -1 {
		p.warnf(res, "marker %q not found; pass skipped", sourcesPhaseMarker)
		return content
	}
	at, ok := lineEnd(content, phase, phaseFilesOpenMarker)
	if !ok {
		p.warnf(res, "no %q list inside Sources phase; pass skipped", phaseFilesOpenMarker)
		return content
	}
	var b strings.Builder
	for _, e := range res.Added {
		b.WriteString(phaseEntryLine(e))
	}
	return content[:at] + b.String() + content[at:]
}

// lineEnd locates needle at or after from and returns the offset just
// past the end of the line it sits on.
func lineEnd(content string, from int, needle string) (int, bool) {
	pos := strings.Index(content[from:], needle)
	if pos == -1 {
		return 0, false
	}
	nl := strings.Index(content[from+pos:], "\n")
	if nl == -1 {
		return 0, false
	}
	return from + pos + nl + 1, true
}

func (p *Patcher) warnf(res *Result, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	res.Warnings = append(res.Warnings, msg)
	p.log.Warn(msg)
}
