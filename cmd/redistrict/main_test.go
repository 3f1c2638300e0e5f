package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "grid.json")
	config := filepath.Join(dir, "run.yaml")
	assignment := filepath.Join(dir, "plan.csv")
	summary := filepath.Join(dir, "summary.json")

	_, err := execute(t, "synth", "--rows", "6", "--cols", "6", "--seed", "3", "--out", graph)
	require.NoError(t, err)

	out, err := execute(t, "inspect", "--graph", graph)
	require.NoError(t, err)
	var rep graphReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, 36, rep.Units)
	require.Equal(t, 60, rep.Edges)
	require.Equal(t, []int{36}, rep.Components)

	require.NoError(t, os.WriteFile(config, []byte(strings.Join([]string{
		"districts: 3",
		"pack_a: 1",
		"pack_b: 2",
		"epsilon: 0.25",
		"anneal:",
		"  max_iter: 100",
	}, "\n")), 0o600))

	_, err = execute(t, "run", "--graph", graph, "--config", config,
		"--out", assignment, "--summary", summary, "--seed", "11", "--log-level", "warn")
	require.NoError(t, err)

	csvData, err := os.ReadFile(assignment)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Equal(t, "unit,district", lines[0])
	require.Len(t, lines, 37)

	raw, err := os.ReadFile(summary)
	require.NoError(t, err)
	var runSum map[string]any
	require.NoError(t, json.Unmarshal(raw, &runSum))
	require.Len(t, runSum["districts"], 3)

	out, err = execute(t, "summarize", "--graph", graph, "--assignment", assignment, "--config", config)
	require.NoError(t, err)
	var sum map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.Equal(t, runSum["final_target_seats"], sum["final_target_seats"])
}

func TestCLI_Errors(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err, "--graph is required")

	_, err = execute(t, "synth", "--pop-min", "10", "--pop-max", "5")
	require.Error(t, err)

	_, err = execute(t, "inspect", "--graph", filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)

	_, err = execute(t, "run", "--graph", "x.json", "--log-format", "xml")
	require.Error(t, err)
}
