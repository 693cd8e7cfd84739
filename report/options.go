// SPDX-License-Identifier: MIT
// Package: roomcost/report

package report

import (
	"github.com/katalvlaran/roomcost/cost"
	"github.com/katalvlaran/roomcost/room"
)

// Option customises a report.
type Option func(*settings)

type settings struct {
	costFn func(room.Room) float64
}

// WithCostFunc replaces cost.Discount as the per-room cost. Panics on nil.
func WithCostFunc(fn func(room.Room) float64) Option {
	if fn == nil {
		panic("report: WithCostFunc: nil function")
	}
	return func(s *settings) { s.costFn = fn }
}

func newSettings(opts ...Option) settings {
	s := settings{costFn: cost.Discount}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
