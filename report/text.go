// SPDX-License-Identifier: MIT
// Package: roomcost/report
//
// text.go — the console report.
//
// Layout (each house block is followed by one blank line):
//
//	<original house>
//	house == duplicate_house -> true
//	&house == &duplicate_house -> false
//	<original house>
//	<upgraded house>
//	373.54                 one line per room of the upgraded house
//	...
//	Total: 6163.34
//	Min  : 373.54          only when there is at least one room
//	Max  : 2988.29
//	<blank line>

package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roomcost/cost"
	"github.com/katalvlaran/roomcost/house"
)

// WriteText writes the report comparing original with its upgraded copy.
// Costs are summarised over upgraded.
func WriteText(w io.Writer, original, upgraded *house.House, opts ...Option) error {
	if original == nil || upgraded == nil {
		return ErrNilHouse
	}
	s := newSettings(opts...)
	p := &printer{w: w}

	p.printf("%s\n", original)
	p.printf("house == duplicate_house -> %t\n", original.Equal(upgraded))
	p.printf("&house == &duplicate_house -> %t\n", house.SameInstance(original, upgraded))
	p.printf("%s\n", original)
	p.printf("%s\n", upgraded)

	WriteSummary(p, cost.Summarize(upgraded, s.costFn))
	p.printf("\n")

	return p.err
}

// WriteSummary writes one cost per line followed by the Total, Min and Max
// lines. Min and Max are omitted for an empty summary.
func WriteSummary(w io.Writer, sum cost.Summary) {
	for _, c := range sum.Costs {
		fmt.Fprintf(w, "%.2f\n", c)
	}
	fmt.Fprintf(w, "Total: %.2f\n", sum.Total)
	if sum.HasExtremes {
		fmt.Fprintf(w, "Min  : %.2f\n", sum.Extremes.Min)
		fmt.Fprintf(w, "Max  : %.2f\n", sum.Extremes.Max)
	}
}

// printer remembers the first write error and drops later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	if err != nil {
		p.err = fmt.Errorf("report: write: %w", err)
	}

	return n, p.err
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
}
