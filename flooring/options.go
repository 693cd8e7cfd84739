// SPDX-License-Identifier: MIT
// Package: roomcost/flooring
//
// options.go — functional options for Builder.

package flooring

// Option tunes the validation policy of a Builder.
type Option func(*policy)

type policy struct {
	nonNegativeCost bool
}

// WithNonNegativeCost makes Build reject NaN, ±Inf and negative unit costs
// with buildcheck.ErrInvalidValue. Off by default.
func WithNonNegativeCost() Option {
	return func(p *policy) {
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
