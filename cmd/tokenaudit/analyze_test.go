package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/tokenaudit/internal/report"
)

var (
	busyCSS    = filepath.Join("..", "..", "testdata", "busy.css")
	cleanCSS   = filepath.Join("..", "..", "testdata", "clean.css")
	brokenJSON = filepath.Join("..", "..", "testdata", "broken.json")
)

// newTestCommand returns a bare command whose output is captured
func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}

// captureExit replaces osExit for the duration of the test
func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = os.Exit })
	return &code
}

func TestRunAnalyze_BusyStylesheet(t *testing.T) {
	cmd, stdout, _ := newTestCommand()

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "markdown"})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "Analyzing busy.css...\n"))
	assert.Contains(t, out, "**4 issues identified**")
	assert.Contains(t, out, "### 1. Color Palette Complexity")
	assert.Contains(t, out, "### 2. Material Authenticity")
	assert.Contains(t, out, "### 3. Typography Scale")
	assert.Contains(t, out, "### 4. Font Weight Variety")
}

func TestRunAnalyze_CleanStylesheet(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	code, err := runAnalyze(cmd, cleanCSS, analyzeOptions{Format: "markdown"})
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "Excellent alignment")
	assert.Empty(t, stderr.String())
}

func TestRunAnalyze_Quiet(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "markdown", Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunAnalyze_JSONKeepsStdoutClean(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, 4, out.Summary.TotalFindings)
	assert.Contains(t, stderr.String(), "Analyzing busy.css...")
}

func TestRunAnalyze_Summary(t *testing.T) {
	cmd, stdout, _ := newTestCommand()

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "summary"})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)
	assert.Contains(t, stdout.String(), "4 issues (1 high, 2 medium, 1 low):")
}

func TestRunAnalyze_OutputFile(t *testing.T) {
	cmd, stdout, _ := newTestCommand()
	path := filepath.Join(t.TempDir(), "report.md")

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "markdown", Output: path})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)

	out := stdout.String()
	assert.Contains(t, out, "Analyzing busy.css...")
	assert.Contains(t, out, "✅ Report written to: "+path)
	assert.NotContains(t, out, "Executive Summary")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Executive Summary")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestRunAnalyze_OutputFileWriteError(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()
	path := filepath.Join(t.TempDir(), "missing-dir", "report.md")

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "markdown", Output: path})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)
	assert.Contains(t, stderr.String(), "writing report")
	assert.NotContains(t, stdout.String(), "Report written")
}

func TestRunAnalyze_MissingFile(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	code, err := runAnalyze(cmd, filepath.Join(t.TempDir(), "nope.css"), analyzeOptions{Format: "markdown"})
	require.Error(t, err)
	assert.Equal(t, exitFatal, code)
	// Nothing is printed once loading fails
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunAnalyze_TrailingCommaJSON(t *testing.T) {
	cmd, stdout, _ := newTestCommand()
	path := filepath.Join(t.TempDir(), "t.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"colors":{"a":"#fff",}}`), 0644))

	code, err := runAnalyze(cmd, path, analyzeOptions{Format: "markdown"})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)
	assert.Contains(t, stdout.String(), "JSON parsing error")
	assert.Contains(t, stdout.String(), "**Colors:** 0 unique colors")
}

func TestRunAnalyze_UnknownFormat(t *testing.T) {
	cmd, stdout, _ := newTestCommand()

	code, err := runAnalyze(cmd, busyCSS, analyzeOptions{Format: "html"})
	require.Error(t, err)
	assert.Equal(t, exitFatal, code)
	assert.Empty(t, stdout.String())
}

func TestRunAnalyze_BrokenJSON(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	code, err := runAnalyze(cmd, brokenJSON, analyzeOptions{Format: "markdown"})
	require.NoError(t, err)
	assert.Equal(t, exitFindings, code)
	assert.Contains(t, stdout.String(), "JSON parsing error")
	assert.Contains(t, stderr.String(), "level=WARN")
}

func TestRunAnalyze_VerboseLogs(t *testing.T) {
	cmd, _, stderr := newTestCommand()

	_, err := runAnalyze(cmd, cleanCSS, analyzeOptions{Format: "markdown", Verbose: true})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stderr.String(), "loaded target")
}

func TestAnalyzeCommand_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		wantCode int
	}{
		{name: "findings exit 1", file: busyCSS, wantCode: exitFindings},
		{name: "clean run does not exit", file: cleanCSS, wantCode: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCommands(t)
			code := captureExit(t)

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs([]string{"analyze", tt.file})

			require.NoError(t, rootCmd.Execute())
			assert.Equal(t, tt.wantCode, *code)
		})
	}
}

func TestAnalyzeCommand_FormatFromEnv(t *testing.T) {
	resetCommands(t)
	captureExit(t)
	t.Setenv("TOKENAUDIT_FORMAT", "json")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"analyze", busyCSS})

	require.NoError(t, rootCmd.Execute())

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "busy.css", out.File)
}

func TestAnalyzeCommand_RequiresOneArgument(t *testing.T) {
	resetCommands(t)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"analyze"})

	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestRootCommand_AnalyzesPositionalFile(t *testing.T) {
	resetCommands(t)
	code := captureExit(t)

	path := filepath.Join(t.TempDir(), "report.md")
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{busyCSS, "-o", path})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, exitFindings, *code)
	assert.Contains(t, stdout.String(), "✅ Report written to: "+path)
	assert.FileExists(t, path)
}

func TestRootCommand_RequiresFile(t *testing.T) {
	resetCommands(t)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{})

	require.Error(t, rootCmd.Execute())
}
