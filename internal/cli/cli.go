// SPDX-License-Identifier: MIT
// Package: roomcost/internal/cli

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/roomcost/internal/config"
)

// ExitCodeUsage is returned for bad flags or invalid settings.
const ExitCodeUsage = 2

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse applies args on top of base. It returns the merged configuration,
// true when the program should exit without doing anything (help was
// printed), or an *ExitError.
func Parse(args []string, output io.Writer, base config.Config) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("roomcost", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
roomcost - flooring cost report for a house.

Usage:
  roomcost [options] [INPUT]

Arguments:
  INPUT
    House description: one room per line ("Kitchen; 20 12 3.87 Tile"),
    a .yaml document or a .hcl document. Without it the built-in sample is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := base
	flagSet.StringVar(&cfg.Input.Path, "input", base.Input.Path, "Path to the house description.")
	flagSet.StringVar(&cfg.Input.Path, "i", base.Input.Path, "Path to the house description (shorthand).")
	flagSet.StringVar(&cfg.Input.Format, "format", base.Input.Format, "Input format: 'text', 'yaml' or 'hcl'. Empty detects it from the file extension.")
	flagSet.StringVar(&cfg.Output.XLSX, "xlsx", base.Output.XLSX, "Also write the cost report as an Excel workbook to this path.")
	flagSet.BoolVar(&cfg.Input.Strict, "strict", base.Input.Strict, "Reject unparsable numbers instead of substituting the fallback.")
	flagSet.BoolVar(&cfg.Input.SkipInvalid, "skip-invalid", base.Input.SkipInvalid, "Drop rooms that fail validation instead of aborting.")
	flagSet.Float64Var(&cfg.Input.Fallback, "fallback", base.Input.Fallback, "Value used for unparsable numbers.")
	flagSet.StringVar(&cfg.Upgrade.HouseName, "upgrade-name", base.Upgrade.HouseName, "Name of the upgraded house.")
	flagSet.StringVar(&cfg.Upgrade.FlooringName, "upgrade-flooring", base.Upgrade.FlooringName, "Flooring installed by the upgrade.")
	flagSet.Float64Var(&cfg.Upgrade.UnitCost, "upgrade-cost", base.Upgrade.UnitCost, "Unit cost of the upgrade flooring.")
	flagSet.StringVar(&cfg.Log.Level, "log-level", base.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.Log.Format, "log-format", base.Log.Format, "Log output format. Options: 'console' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitCodeUsage, Message: err.Error()}
	}

	switch {
	case flagSet.NArg() > 1:
		return nil, false, &ExitError{Code: ExitCodeUsage, Message: fmt.Sprintf("expected at most one INPUT, got %d", flagSet.NArg())}
	case flagSet.NArg() == 1:
		cfg.Input.Path = flagSet.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitCodeUsage, Message: err.Error()}
	}

	return &cfg, false, nil
}
