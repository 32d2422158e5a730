package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsJSON = `[{"id":"e1","groupsNames":["23-5KB"],"teachersIds":["7"],"classroomsIds":["R1"],
"date":{"year":2021,"month":9,"day":6},"startTime":"8:00","subjectName":"Matematika","topic":"Derivace",
"teachersNames":["Jan Novák"],"classroomsNames":["K3/101"]}]`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, sourceType, path string) string {
	t.Helper()
	cfg := filepath.Join(dir, "config.yaml")
	data := "source:\n  type: " + sourceType + "\n  conf:\n    path: " + path + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(data), 0o644))
	return cfg
}

func TestRenderWeek(t *testing.T) {
	dir := t.TempDir()
	events := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(events, []byte(eventsJSON), 0o644))
	cfg := writeConfig(t, dir, "json", events)
	out := filepath.Join(dir, "week.svg")

	_, err := execute(t, "render", "week", "-c", cfg, "--env-file", "", "-t", "S", "-i", "23-5KB", "-s", "2021-09-05", "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
	assert.Contains(t, string(data), "Matematika")
}

func TestImportThenRenderSemester(t *testing.T) {
	dir := t.TempDir()
	events := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(events, []byte(eventsJSON), 0o644))
	cfg := writeConfig(t, dir, "sqlite", filepath.Join(dir, "events.db"))

	msg, err := execute(t, "import", events, "-c", cfg, "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, msg, "imported 1 events into sqlite")

	out, err := execute(t, "render", "semester", "-c", cfg, "--env-file", "", "-t", "T", "-i", "7", "-s", "2021-09-01", "-e", "2021-12-31", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Jan Novák")
}

func TestRenderWeek_InvalidType(t *testing.T) {
	_, err := execute(t, "render", "week", "--env-file", "", "-t", "X", "-i", "1")
	assert.Error(t, err)
}
