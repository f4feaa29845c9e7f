package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("LAUNCHPLAN_CONFIG", "")
	t.Setenv("NO_COLOR", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTabsListsAllTabsInOrder(t *testing.T) {
	out, err := execute(t, "tabs")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, deck.TabCount)
	require.Contains(t, lines[0], "overview")
	require.Contains(t, lines[0], "📋 Overview")
	require.True(t, strings.HasPrefix(lines[9], "10  budget"), lines[9])
}

func TestExportJSONSingleTab(t *testing.T) {
	out, err := execute(t, "export", "--format", "json", "budget")
	require.NoError(t, err)
	require.Contains(t, out, `"id": "budget"`)
	require.NotContains(t, out, `"id": "overview"`)
}

func TestExportTextWithoutTerminalIsPlain(t *testing.T) {
	out, err := execute(t, "export", "-w", "160", "overview")
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b[")
	require.Contains(t, out, "Executive Summary")
	require.Contains(t, out, "<30 sec")
}

func TestExportRejectsBadInput(t *testing.T) {
	_, err := execute(t, "export", "roadmap")
	require.ErrorIs(t, err, deck.ErrUnknownTab)

	_, err = execute(t, "export", "--format", "pdf")
	require.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = execute(t, "export", "--color", "sometimes")
	require.Error(t, err)

	_, err = execute(t, "export", "a", "b")
	require.Error(t, err)
}

func TestConfigOverridesPageTitle(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAUNCHPLAN_PAGE_TITLE", "Board Review")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("LAUNCHPLAN_CONFIG", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"export", "--format", "yaml", "1"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "title: Board Review")
}

func TestExportHelpListsFormats(t *testing.T) {
	out, err := execute(t, "export", "--help")
	require.NoError(t, err)
	for _, f := range export.Formats() {
		require.Contains(t, out, string(f))
	}
	require.Contains(t, out, "Formats: text, markdown, yaml, json.")
}
