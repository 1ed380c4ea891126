// Package diffview renders a unified diff between the current manifest
// text and the patched text, for check and dry-run output.
package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// LineType classifies a diff line.
type LineType int

const (
	LineContext LineType = iota
	LineAdded
	LineRemoved
)

// Line is a single line of a hunk.
type Line struct {
	Type    LineType
	Content string
}

// Hunk is a group of nearby changes with surrounding context.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Compute produces line-level hunks between two texts. Identical inputs
// yield no hunks.
func Compute(oldContent, newContent string) []Hunk {
	if oldContent == newContent {
		return nil
	}

	dmp := diffmatchpatch.New()
	// Line-level reduction avoids newline boundary artifacts when the
	// character diff is mapped back onto lines.
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	return group(toOps(diffs))
}

// Render formats hunks as a unified diff for the given path. No hunks
// renders as the empty string.
func Render(path string, hunks []Hunk) string {
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Type {
			case LineAdded:
				b.WriteByte('+')
			case LineRemoved:
				b.WriteByte('-')
			default:
				b.WriteByte(' ')
			}
			b.WriteString(l.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// op is one line with its position in the old and new texts. A -1 marks
// the side the line does not exist on.
type op struct {
	typ     LineType
	oldLine int
	newLine int
	text    string
}

func toOps(diffs []diffmatchpatch.Diff) []op {
	var ops []op
	oldLine, newLine := 0, 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, op{LineContext, oldLine, newLine, text})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, op{LineRemoved, oldLine, -1, text})
				oldLine++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, op{LineAdded, -1, newLine, text})
				newLine++
			}
		}
	}
	return ops
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// group collects runs of changes into hunks, keeping contextLines of
// unchanged lines on both sides and splitting where the gap between
// changes is wide enough for two context margins.
func group(ops []op) []Hunk {
	var hunks []Hunk
	i := 0
	for i < len(ops) {
		if ops[i].typ == LineContext {
			i++
			continue
		}

		start := i - contextLines
		if start < 0 {
			start = 0
		}

		// Extend through nearby changes.
		last := i
		j := i
		for j < len(ops) {
			if ops[j].typ != LineContext {
				last = j
				j++
				continue
			}
			if j-last > contextLines*2 {
				break
			}
			j++
		}

		stop := last + contextLines + 1
		if stop > len(ops) {
			stop = len(ops)
		}

		hunks = append(hunks, makeHunk(ops[start:stop]))
		i = stop
	}
	return hunks
}

func makeHunk(ops []op) Hunk {
	h := Hunk{}
	for _, o := range ops {
		if h.OldStart == 0 && o.oldLine >= 0 {
			h.OldStart = o.oldLine + 1
		}
		if h.NewStart == 0 && o.newLine >= 0 {
			h.NewStart = o.newLine + 1
		}
		if o.typ != LineAdded {
			h.OldCount++
		}
		if o.typ != LineRemoved {
			h.NewCount++
		}
		h.Lines = append(h.Lines, Line{Type: o.typ, Content: o.text})
	}
	return h
}
