package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/roomcost/internal/cli"
	"github.com/katalvlaran/roomcost/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse(nil, out, config.Default())
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, config.Default(), *cfg)
	assert.Empty(t, out.String())
}

// TestParse_FlagsOverrideBase checks that flags win over env-derived values.
func TestParse_FlagsOverrideBase(t *testing.T) {
	base := config.Default()
	base.Input.Path = "from-env.txt"
	base.Log.Level = "warn"

	args := []string{"-input", "house.hcl", "-format", "hcl", "-strict", "-skip-invalid=false",
		"-xlsx", "out.xlsx", "-upgrade-cost", "20", "-log-level", "debug"}
	cfg, _, err := cli.Parse(args, &bytes.Buffer{}, base)
	require.NoError(t, err)

	assert.Equal(t, "house.hcl", cfg.Input.Path)
	assert.Equal(t, "hcl", cfg.Input.Format)
	assert.True(t, cfg.Input.Strict)
	assert.False(t, cfg.Input.SkipInvalid)
	assert.Equal(t, "out.xlsx", cfg.Output.XLSX)
	assert.Equal(t, 20.0, cfg.Upgrade.UnitCost)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "from-env.txt", base.Input.Path, "base must not change")
}

func TestParse_PositionalInput(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-log-format", "json", "rooms.txt"}, &bytes.Buffer{}, config.Default())
	require.NoError(t, err)
	assert.Equal(t, "rooms.txt", cfg.Input.Path)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{"-h"}, out, config.Default())
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-upgrade-flooring")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined: -nope"},
		{"bad number", []string{"-upgrade-cost", "cheap"}, "invalid value"},
		{"two inputs", []string{"a.txt", "b.txt"}, "at most one INPUT"},
		{"bad format", []string{"-format", "xml"}, "xml"},
		{"negative upgrade", []string{"-upgrade-cost=-1"}, "non-negative"},
		{"bad level", []string{"-log-level", "loud"}, "loud"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := cli.Parse(tc.args, &bytes.Buffer{}, config.Default())
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, cli.ExitCodeUsage, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
