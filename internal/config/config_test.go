package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ThinkFast.xcodeproj/project.pbxproj", cfg.Project)
	assert.Len(t, cfg.Files, 13)
	assert.NotEmpty(t, cfg.Groups)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xcadd.yaml")
	raw := `project: MyApp.xcodeproj/project.pbxproj
files:
  - path: MyApp/Feature/View.swift
    group: Feature
groups:
  - match: Feature
    anchor: "Feature /* Feature */"
  - match: ""
    anchor: "MyApp /* MyApp */"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "MyApp.xcodeproj/project.pbxproj", cfg.Project)
	require.Len(t, cfg.Files, 1)
	assert.Equal(t, "MyApp/Feature/View.swift", cfg.Files[0].Path)
	assert.Equal(t, "Feature", cfg.Files[0].Group)
	require.Len(t, cfg.Groups, 2)
	assert.Equal(t, "Feature /* Feature */", cfg.Groups[0].Anchor)
}

func TestLoad_PartialFileKeepsDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xcadd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: Other.pbxproj\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Other.pbxproj", cfg.Project)
	assert.Len(t, cfg.Files, 13)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xcadd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}
