// SPDX-License-Identifier: MIT
// Package: roomcost/report

package report

import "errors"

// ErrNilHouse is returned when a report is asked to render a nil *house.House.
var ErrNilHouse = errors.New("report: nil house")

// ErrNoHouses is returned by WriteXLSX when called without houses.
var ErrNoHouses = errors.New("report: no houses to export")
