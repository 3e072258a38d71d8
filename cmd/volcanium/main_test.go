package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/internal/config"
	"github.com/katalvlaran/volcanium/pressure"
	"github.com/katalvlaran/volcanium/valve"
)

const example = "../../testdata/example.txt"

func TestRun_Both(t *testing.T) {
	t.Setenv("VOLCANIUM_CONFIG", "")
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{"-input", example})
	require.NoError(t, err)
	require.Equal(t, "solo: 1651\nduo: 1707\n", out.String())
	require.Contains(t, logs.String(), `"run_id"`)
	require.Contains(t, logs.String(), `"released":1707`)
}

func TestRun_PartsAndStrategies(t *testing.T) {
	t.Setenv("VOLCANIUM_CONFIG", "")

	for _, s := range []string{"path", "state", "subset"} {
		var out, logs bytes.Buffer
		err := run(&out, &logs, []string{"-input", example, "-part", "duo", "-strategy", s, "-workers", "2"})
		require.NoError(t, err, s)
		require.Equal(t, "duo: 1707\n", out.String())
	}

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-input", example, "-part", "solo"}))
	require.Equal(t, "solo: 1651\n", out.String())
}

func TestRun_ConfigAndMetrics(t *testing.T) {
	dir := t.TempDir()
	prom := filepath.Join(dir, "volcanium.prom")
	cfgPath := filepath.Join(dir, "volcanium.yaml")
	body := "input: " + example + "\nsolo:\n  budget: 3\nlogging:\n  level: error\nmetrics:\n  textfile: " + prom + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, &logs, []string{"-config", cfgPath, "-part", "solo"}))
	require.Equal(t, "solo: 20\n", out.String())
	require.Zero(t, logs.Len(), "error level hides info logs")

	written, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(written), `volcanium_released{part="solo"} 20`)
	require.Contains(t, string(written), `volcanium_solves_total{part="solo",strategy="best-first"} 1`)
}

func TestRun_Help(t *testing.T) {
	var out, logs bytes.Buffer

	require.NoError(t, run(&out, &logs, []string{"-h"}))
	require.Contains(t, logs.String(), "Usage:")
	require.Empty(t, out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("VOLCANIUM_CONFIG", "")
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Valve AA has flow rate=oops\n"), 0o600))
	split := filepath.Join(dir, "split.txt")
	require.NoError(t, os.WriteFile(split, []byte(
		"Valve AA has flow rate=0; tunnel leads to valve BB\n"+
			"Valve BB has flow rate=5; tunnel leads to valve AA\n"+
			"Valve CC has flow rate=7; tunnel leads to valve DD\n"+
			"Valve DD has flow rate=0; tunnel leads to valve CC\n"), 0o600))

	cases := []struct {
		name string
		args []string
		want error
	}{
		{"unknown flag", []string{"-bogus"}, errUsage},
		{"bad part", []string{"-input", example, "-part", "trio"}, errUsage},
		{"stray argument", []string{"-input", example, "extra"}, errUsage},
		{"missing input", []string{"-input", filepath.Join(dir, "none.txt")}, os.ErrNotExist},
		{"syntax", []string{"-input", bad}, valve.ErrSyntax},
		{"bad strategy", []string{"-input", example, "-strategy", "greedy"}, pressure.ErrUnknownStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			err := run(&out, &logs, tc.args)
			require.ErrorIs(t, err, tc.want)
			require.Empty(t, out.String())
		})
	}

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-input", split})
	require.ErrorIs(t, err, distance.ErrUnreachablePair)
	require.Empty(t, out.String())
}

func TestRun_FlagsOverrideInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "volcanium.yaml")
	body := "input: " + example + "\nworkers: 0\nduo:\n  strategy: greedy\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{"-config", cfgPath, "-part", "duo"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Empty(t, out.String())

	out.Reset()
	err = run(&out, &logs, []string{"-config", cfgPath, "-part", "duo", "-strategy", "subset", "-workers", "2"})
	require.NoError(t, err)
	require.Equal(t, "duo: 1707\n", out.String())
}
