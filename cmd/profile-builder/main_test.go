// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/profile-builder/internal/build"
	"github.com/pdiddy/profile-builder/internal/fixture"
	"github.com/pdiddy/profile-builder/pkg/types"
)

// execute runs the root command with args. Every flag that earlier tests
// may have set is passed explicitly, since cobra keeps flag values between
// executions in one process.
func execute(t *testing.T, input, output string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args,
		"--input", input,
		"--output", output,
		"--backend", "native",
		"--vocabulary=",
	))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) (pdfPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	pdfPath = filepath.Join(dir, "linkedin", "Profile.pdf")
	require.NoError(t, fixture.WritePDF(pdfPath, fixture.SampleProfile))
	return pdfPath, dir
}

func TestBuildCommand(t *testing.T) {
	pdfPath, dir := writeSample(t)
	outPath := filepath.Join(dir, "data", "profile.json")

	out, err := execute(t, pdfPath, outPath, "build")
	require.NoError(t, err)

	assert.Contains(t, out, "Profile data written to "+outPath)
	assert.Contains(t, out, "Name: Jane Doe")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var p types.ProfileRecord
	require.NoError(t, json.Unmarshal(data, &p))

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "Software Engineer", p.Headline)
	assert.Equal(t, "Greater Accra Region", p.Location)
	assert.Len(t, p.Experience, 2)
	assert.Len(t, p.Education, 1)
	assert.Equal(t, 2018, p.ExperienceStartYear)
}

func TestRootCommandBuilds(t *testing.T) {
	pdfPath, dir := writeSample(t)
	outPath := filepath.Join(dir, "site", "profile.json")

	_, err := execute(t, pdfPath, outPath)
	require.NoError(t, err)
	assert.FileExists(t, outPath)
}

func TestBuildCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, filepath.Join(dir, "Profile.pdf"), filepath.Join(dir, "profile.json"), "build")
	require.Error(t, err)
	assert.ErrorIs(t, err, build.ErrInputMissing)
}

func TestBuildCommandVocabularyOverride(t *testing.T) {
	pdfPath, dir := writeSample(t)
	outPath := filepath.Join(dir, "profile.json")
	vocabPath := filepath.Join(dir, "vocabulary.yaml")
	require.NoError(t, os.WriteFile(vocabPath, []byte("locations: [atlantis]\n"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"build", "--input", pdfPath, "--output", outPath, "--backend", "native", "--vocabulary", vocabPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"location": ""`, "overridden locations no longer match the sample")
}

func TestLinesCommand(t *testing.T) {
	pdfPath, dir := writeSample(t)

	out, err := execute(t, pdfPath, filepath.Join(dir, "unused.json"), "lines", "--sections=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, " lines\n")
	assert.NoFileExists(t, filepath.Join(dir, "unused.json"))

	out, err = execute(t, pdfPath, filepath.Join(dir, "unused.json"), "lines", "--sections")
	require.NoError(t, err)
	assert.Contains(t, out, "== experience")
	assert.Contains(t, out, "== certifications (")
}

func TestLinesCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, filepath.Join(dir, "Profile.pdf"), filepath.Join(dir, "unused.json"), "lines")
	require.Error(t, err)
	assert.ErrorIs(t, err, build.ErrInputMissing)
	assert.Contains(t, err.Error(), "export your LinkedIn profile as PDF")
	assert.NotContains(t, out, " lines\n")
}

func TestConfigFlagUsage(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Contains(t, f.Usage, "~/.config/profile-builder/profile-builder.yaml")
	assert.NotContains(t, f.Usage, "config.yaml")
}

func TestUnknownBackend(t *testing.T) {
	pdfPath, dir := writeSample(t)
	outPath := filepath.Join(dir, "profile.json")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"build", "--input", pdfPath, "--output", outPath, "--backend", "ocr", "--vocabulary="})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction backend")
	assert.NoFileExists(t, outPath)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "profile-builder dev\n", out.String())
}
