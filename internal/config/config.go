// SPDX-License-Identifier: MIT
// Package: roomcost/internal/config

// Package config reads roomcost settings from the environment and an
// optional .env file. Command-line flags (see internal/cli) override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/roomcost/buildcheck"
	"github.com/katalvlaran/roomcost/flooring"
	"github.com/katalvlaran/roomcost/house"
	"github.com/katalvlaran/roomcost/internal/logger"
	"github.com/katalvlaran/roomcost/roomdata"
)

// Environment variables read by Load.
const (
	EnvInput        = "ROOMCOST_INPUT"
	EnvFormat       = "ROOMCOST_FORMAT"
	EnvXLSX         = "ROOMCOST_XLSX"
	EnvStrict       = "ROOMCOST_STRICT"
	EnvSkipInvalid  = "ROOMCOST_SKIP_INVALID"
	EnvFallback     = "ROOMCOST_FALLBACK"
	EnvUpgradeHouse = "ROOMCOST_UPGRADE_HOUSE"
	EnvUpgradeFloor = "ROOMCOST_UPGRADE_FLOORING"
	EnvUpgradeCost  = "ROOMCOST_UPGRADE_UNIT_COST"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)

type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Upgrade UpgradeConfig
	Log     LogConfig
}

type InputConfig struct {
	// Path of the house description; empty means the built-in sample.
	Path string
	// Format is "", text, yaml or hcl. Empty detects it from Path.
	Format      string
	Strict      bool
	SkipInvalid bool
	Fallback    float64
}

type OutputConfig struct {
	// XLSX, when set, is where the workbook export is written.
	XLSX string
}

type UpgradeConfig struct {
	HouseName    string
	FlooringName string
	UnitCost     float64
}

type LogConfig struct {
	Level  string
	Format string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Input: InputConfig{
			SkipInvalid: true,
			Fallback:    roomdata.DefaultFallback,
		},
		Upgrade: UpgradeConfig{
			HouseName:    house.UpgradeHouseName,
			FlooringName: house.UpgradeFlooringName,
			UnitCost:     house.UpgradeUnitCost,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatConsole,
		},
	}
}

// Load reads the given .env files (".env" when none are named), then the
// environment. Variables already set in the environment win over the files.
// Missing files are ignored.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}

	def := Default()
	env := &envReader{}
	cfg := &Config{
		Input: InputConfig{
			Path:        env.str(EnvInput, def.Input.Path),
			Format:      env.str(EnvFormat, def.Input.Format),
			Strict:      env.boolean(EnvStrict, def.Input.Strict),
			SkipInvalid: env.boolean(EnvSkipInvalid, def.Input.SkipInvalid),
			Fallback:    env.float(EnvFallback, def.Input.Fallback),
		},
		Output: OutputConfig{
			XLSX: env.str(EnvXLSX, def.Output.XLSX),
		},
		Upgrade: UpgradeConfig{
			HouseName:    env.str(EnvUpgradeHouse, def.Upgrade.HouseName),
			FlooringName: env.str(EnvUpgradeFloor, def.Upgrade.FlooringName),
			UnitCost:     env.float(EnvUpgradeCost, def.Upgrade.UnitCost),
		},
		Log: LogConfig{
			Level:  env.str(EnvLogLevel, def.Log.Level),
			Format: env.str(EnvLogFormat, def.Log.Format),
		},
	}
	if len(env.errs) > 0 {
		return nil, errors.Join(env.errs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := roomdata.ParseFormat(c.Input.Format); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if !buildcheck.Finite(c.Input.Fallback) {
		errs = append(errs, fmt.Errorf("config: fallback must be finite, got %v", c.Input.Fallback))
	}
	if _, err := c.UpgradeFlooring(); err != nil {
		errs = append(errs, fmt.Errorf("config: upgrade: %w", err))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}

	return errors.Join(errs...)
}

// UpgradeFlooring builds the flooring installed by the upgrade. The unit
// cost must be finite and non-negative.
func (c *Config) UpgradeFlooring() (flooring.Flooring, error) {
	return flooring.NewBuilder(flooring.WithNonNegativeCost()).
		WithSpecificName(c.Upgrade.FlooringName).
		WithUnitCost(c.Upgrade.UnitCost).
		Build()
}

// ParserOptions translates the input settings into roomdata options.
// skipped, if non-nil, is called for each dropped record.
func (c *Config) ParserOptions(skipped func(roomdata.Skipped)) []roomdata.Option {
	opts := []roomdata.Option{roomdata.WithFallback(c.Input.Fallback)}
	if c.Input.Strict {
		opts = append(opts, roomdata.WithStrictNumbers())
	}
	if c.Input.SkipInvalid {
		opts = append(opts, roomdata.WithSkipInvalid(skipped))
	}

	return opts
}

// envReader collects conversion errors so Load can report them together.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func (r *envReader) float(key string, defaultValue float64) float64 {
	valueStr := r.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("config: %s: invalid number %q", key, valueStr))
		return defaultValue
	}

	return value
}

func (r *envReader) boolean(key string, defaultValue bool) bool {
	valueStr := r.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("config: %s: invalid boolean %q", key, valueStr))
		return defaultValue
	}

	return value
}
