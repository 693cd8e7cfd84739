// SPDX-License-Identifier: MIT

// Command roomcost prints the flooring cost report for a house and for a
// copy of it with every floor replaced by the upgrade flooring.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/internal/cli"
	"github.com/katalvlaran/roomcost/internal/config"
	"github.com/katalvlaran/roomcost/internal/logger"
	"github.com/katalvlaran/roomcost/report"
	"github.com/katalvlaran/roomcost/roomdata"
)

const serviceName = "roomcost"

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads settings, reads the house and writes the report to outW.
// Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	base, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: cli.ExitCodeUsage, Message: err.Error()}
	}
	cfg, shouldExit, err := cli.Parse(args, outW, *base)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log, err := logger.New(logW, cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	original, err := loadHouse(cfg, log)
	if err != nil {
		log.Error("Failed to load house.", zap.String("input", cfg.Input.Path), zap.Error(err))
		return err
	}
	log.Info("House loaded.",
		zap.String("house", original.Name()),
		zap.String("id", original.ID().String()),
		zap.Int("rooms", original.Len()))

	upgrade, err := cfg.UpgradeFlooring()
	if err != nil {
		return err
	}
	upgraded := house.UpgradeFlooring(original, cfg.Upgrade.HouseName, upgrade)
	log.Debug("Flooring upgraded.",
		zap.String("house", upgraded.Name()),
		zap.String("flooring", upgrade.TypeName),
		zap.Float64("unit_cost", upgrade.UnitCost))

	if err := report.WriteText(outW, original, upgraded); err != nil {
		return err
	}

	if cfg.Output.XLSX != "" {
		if err := report.SaveXLSX(cfg.Output.XLSX, []*house.House{original, upgraded}); err != nil {
			log.Error("Failed to export workbook.", zap.String("path", cfg.Output.XLSX), zap.Error(err))
			return err
		}
		log.Info("Workbook written.", zap.String("path", cfg.Output.XLSX))
	}

	return nil
}

// loadHouse reads the configured input, or the built-in sample when no input
// is configured. Dropped records are logged as warnings.
func loadHouse(cfg *config.Config, log *zap.Logger) (*house.House, error) {
	opts := cfg.ParserOptions(func(s roomdata.Skipped) {
		log.Warn("Skipping invalid room.",
			zap.Int("record", s.Record),
			zap.String("text", s.Text),
			zap.Error(s.Err))
	})

	if cfg.Input.Path == "" {
		log.Debug("No input given, using the built-in sample.")
		return roomdata.Sample(opts...)
	}

	format, err := roomdata.ParseFormat(cfg.Input.Format)
	if err != nil {
		return nil, err
	}

	return roomdata.Load(cfg.Input.Path, format, opts...)
}
