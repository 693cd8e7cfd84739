// SPDX-License-Identifier: MIT
// Package: roomcost/room
//
// options.go — functional options for Builder.
//
// Both policies default to OFF so that Build accepts any numbers, matching
// the lenient behaviour callers already rely on. Turning one on adds
// buildcheck.ErrInvalidValue failures; it never changes a successful result.

package room

import "github.com/katalvlaran/roomcost/flooring"

// Option tunes the validation policy of a Builder.
type Option func(*policy)

type policy struct {
	positiveDimensions bool
	nonNegativeCost    bool
}

// WithPositiveDimensions rejects zero, negative or non-finite length/width.
func WithPositiveDimensions() Option {
	return func(p *policy) { p.positiveDimensions = true }
}

// WithNonNegativeCost rejects negative or non-finite flooring unit costs.
func WithNonNegativeCost() Option {
	return func(p *policy) { p.nonNegativeCost = true }
}

// WithStrictValues enables every value policy.
func WithStrictValues() Option {
	return func(p *policy) {
		p.positiveDimensions = true
		p.nonNegativeCost = true
	}
}

func newPolicy(opts ...Option) policy {
	var p policy
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	return p
}

func (p policy) flooringOpts() []flooring.Option {
	if p.nonNegativeCost {
		return []flooring.Option{flooring.WithNonNegativeCost()}
	}

	return nil
}
