package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_InsertionOnly(t *testing.T) {
	oldContent := "line1\nline2\nline3\n"
	newContent := "line1\nline2\ninserted\nline3\n"

	hunks := Compute(oldContent, newContent)
	require.Len(t, hunks, 1)

	var added []string
	for _, l := range hunks[0].Lines {
		if l.Type == LineAdded {
			added = append(added, l.Content)
		}
		assert.NotEqual(t, LineRemoved, l.Type)
	}
	assert.Equal(t, []string{"inserted"}, added)
	assert.Equal(t, hunks[0].OldCount+1, hunks[0].NewCount)
}

func TestCompute_Identical(t *testing.T) {
	content := "a\nb\nc\n"
	assert.Empty(t, Compute(content, content))
}

func TestCompute_DistantChangesSplitHunks(t *testing.T) {
	var oldLines []string
	for i := 0; i < 30; i++ {
		oldLines = append(oldLines, "ctx")
	}
	newLines := append([]string{"first"}, oldLines...)
	newLines = append(newLines, "last")

	hunks := Compute(strings.Join(oldLines, "\n")+"\n", strings.Join(newLines, "\n")+"\n")
	assert.Len(t, hunks, 2)
}

func TestRender_UnifiedFormat(t *testing.T) {
	oldContent := "one\ntwo\nthree\n"
	newContent := "one\ntwo\ntwo-and-a-half\nthree\n"

	out := Render("project.pbxproj", Compute(oldContent, newContent))

	assert.Contains(t, out, "--- a/project.pbxproj\n")
	assert.Contains(t, out, "+++ b/project.pbxproj\n")
	assert.Contains(t, out, "+two-and-a-half\n")
	assert.Contains(t, out, " two\n")
	assert.Regexp(t, `@@ -\d+,\d+ \+\d+,\d+ @@`, out)
}

func TestRender_NoChanges(t *testing.T) {
	assert.Equal(t, "", Render("x", nil))
}
