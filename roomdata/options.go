// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata
//
// options.go — functional options shared by every decoder.
//
// Defaults:
//   • fallback     = 1.0   (value substituted for an unparsable number)
//   • strict       = false (lenient numbers)
//   • skipInvalid  = false (first failing record aborts the parse)
//   • house name   = ""    (house.DefaultName unless the document names it)
//
// Option constructors panic on nonsensical arguments (programmer error);
// decoding itself never panics.

package roomdata

import (
	"github.com/katalvlaran/roomcost/buildcheck"
	"github.com/katalvlaran/roomcost/room"
)

// DefaultFallback replaces numbers that fail to parse in lenient mode.
const DefaultFallback = 1.0

// Option customises parsing.
type Option func(*config)

// Skipped describes a record dropped under WithSkipInvalid.
type Skipped struct {
	// Record is the 1-based line number (text) or room index (YAML/HCL).
	Record int
	// Text is the raw line for text input and the room name for documents.
	Text string
	Err  error
}

type config struct {
	fallback    float64
	strict      bool
	skipInvalid bool
	onSkip      func(Skipped)
	roomOpts    []room.Option
	prices      map[string]float64
	houseName   string
}

// WithFallback sets the value used for unparsable numbers in lenient mode.
// Panics if v is NaN or infinite.
func WithFallback(v float64) Option {
	if !buildcheck.Finite(v) {
		panic("roomdata: WithFallback: value must be finite")
	}
	return func(c *config) { c.fallback = v }
}

// WithStrictNumbers makes unparsable numbers fail with ErrBadNumber instead
// of falling back.
func WithStrictNumbers() Option {
	return func(c *config) { c.strict = true }
}

// WithSkipInvalid drops failing records instead of aborting. fn, if non-nil,
// is called once per dropped record in input order.
func WithSkipInvalid(fn func(Skipped)) Option {
	return func(c *config) {
		c.skipInvalid = true
		c.onSkip = fn
	}
}

// WithRoomOptions forwards validation options to every room.Builder.
func WithRoomOptions(opts ...room.Option) Option {
	return func(c *config) { c.roomOpts = append(c.roomOpts, opts...) }
}

// WithPrices exposes prices to HCL expressions as the object "price", so a
// document may write unit_cost = price.tile. Ignored by other formats.
func WithPrices(prices map[string]float64) Option {
	return func(c *config) {
		if c.prices == nil {
			c.prices = make(map[string]float64, len(prices))
		}
		for k, v := range prices {
			c.prices[k] = v
		}
	}
}

// WithHouseName names the resulting house. A name given inside a YAML or
// HCL document takes precedence.
func WithHouseName(name string) Option {
	return func(c *config) { c.houseName = name }
}

func newConfig(opts ...Option) config {
	cfg := config{fallback: DefaultFallback}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// skip reports whether a failing record should be dropped, notifying the
// callback when it is.
func (c config) skip(s Skipped) bool {
	if !c.skipInvalid {
		return false
	}
	if c.onSkip != nil {
		c.onSkip(s)
	}

	return true
}
