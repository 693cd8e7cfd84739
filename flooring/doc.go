// Package flooring defines the Flooring value type (a named surface covering
// with a per-unit-area cost) and its validating Builder.
//
//	f, err := flooring.NewBuilder().
//		WithSpecificName("Birch Wood").
//		WithUnitCost(4.39).
//		Build()
//
// Build fails with a *buildcheck.Error wrapping buildcheck.ErrMissingField
// when the name is blank or the unit cost was never set.
package flooring
