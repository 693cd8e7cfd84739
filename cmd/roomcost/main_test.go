package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/roomcost/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Sample(t *testing.T) {
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(out, logs, nil))

	report := out.String()
	assert.True(t, strings.HasPrefix(report, "House (Generic)\n"))
	assert.Contains(t, report, "house == duplicate_house -> true\n")
	assert.Contains(t, report, "&house == &duplicate_house -> false\n")
	assert.Contains(t, report, "House (After Stone Bricks)\n")
	assert.Contains(t, report, "Total: 6163.34\nMin  : 373.54\nMax  : 2988.29\n")
	assert.Contains(t, logs.String(), "House loaded.")
}

// TestRun_InputSkipsInvalidRooms drops a bad line, logs it and still reports.
func TestRun_InputSkipsInvalidRooms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.txt")
	src := "Laundry Room; 8 4 1.95 Laminate\nnot a room\nKitchen; 20 12 3.87 Tile\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(out, logs, []string{"-log-format", "json", path}))

	assert.Contains(t, out.String(), "373.54\n2801.52\nTotal: 3175.06\n")
	assert.Contains(t, logs.String(), "Skipping invalid room.")
	assert.Contains(t, logs.String(), `"record":2`)
}

func TestRun_InvalidRoomAborts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.txt")
	require.NoError(t, os.WriteFile(path, []byte("; 8 4 1.95 Laminate\n"), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-skip-invalid=false", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name can not be blank")
}

func TestRun_XLSX(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "costs.xlsx")

	require.NoError(t, run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-xlsx", xlsx, "-upgrade-name", "Marble Hall"}))

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Generic", "Marble Hall"}, f.GetSheetList())
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitCodeUsage, exitErr.Code)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingInput(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "absent.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
