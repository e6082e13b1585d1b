package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/readmecheck/readmecheck/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInitCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newInitCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return output.String(), err
}

func TestInitCommand_Defaults(t *testing.T) {
	target := filepath.Join(t.TempDir(), "plotlars")

	output, err := runInitCommand(t, target, "--defaults")
	require.NoError(t, err)

	profilePath := filepath.Join(target, profile.ConfigFileName)
	assert.Contains(t, output, "Initialized readmecheck profile:")
	assert.Contains(t, output, profilePath)

	p, err := profile.LoadFile(profilePath)
	require.NoError(t, err)
	// Product and package are seeded from the directory name.
	assert.Equal(t, "plotlars", p.Product)
	assert.Equal(t, "plotlars", p.Package)
	assert.Equal(t, "MIT License", p.License.Name)
	assert.Equal(t, "license-MIT-blue", p.License.Badge)
	assert.Equal(t, "https://docs.rs/plotlars/", p.Docs.Prefix)
	assert.Equal(t, "cargo add plotlars", p.Install.AddCommand)
}

func TestInitCommand_DefaultsInCurrentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	_, err := runInitCommand(t, "--defaults")
	require.NoError(t, err)

	p, err := profile.LoadFile(profile.ConfigFileName)
	require.NoError(t, err)
	// No directory argument: the stock spec is written untouched.
	assert.Equal(t, "Plotlars", p.Product)
	assert.Equal(t, "plotlars", p.Package)
	assert.Equal(t, []string{"Motivation", "Installation", "Features", "License", "Acknowledgements"}, p.Sections)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	profilePath := filepath.Join(tmpDir, profile.ConfigFileName)
	require.NoError(t, os.WriteFile(profilePath, []byte("product: Keep\n"), 0o644))

	_, err := runInitCommand(t, tmpDir, "--defaults")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, readErr := os.ReadFile(profilePath)
	require.NoError(t, readErr)
	assert.Equal(t, "product: Keep\n", string(data))
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	profilePath := filepath.Join(tmpDir, profile.ConfigFileName)
	require.NoError(t, os.WriteFile(profilePath, []byte("product: Old\n"), 0o644))

	_, err := runInitCommand(t, tmpDir, "--defaults", "--force")
	require.NoError(t, err)

	p, loadErr := profile.LoadFile(profilePath)
	require.NoError(t, loadErr)
	assert.NotEqual(t, "Old", p.Product)
}

func TestInitCommand_CreatesTargetDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "proj")

	_, err := runInitCommand(t, target, "--defaults")
	require.NoError(t, err)

	info, statErr := os.Stat(filepath.Join(target, profile.ConfigFileName))
	require.NoError(t, statErr)
	assert.False(t, info.IsDir())
}
