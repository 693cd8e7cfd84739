// Package buildcheck provides the structured validation error returned by
// every Build method in roomcost (flooring, room) and the small Checker that
// builders use to accumulate failures before returning.
//
// A builder never stops at the first problem: it checks every required field,
// records each failure on a Checker, and returns Checker.Err(). The resulting
// *Error lists all failing fields, so a caller fixing its input sees the full
// picture in one pass:
//
//	_, err := room.NewBuilder().Build()
//	// err.Error() == "room: Name can not be blank; Dimensions must be set; Flooring must be set"
//	errors.Is(err, buildcheck.ErrMissingField) // true
//
// Two sentinel kinds exist:
//   - ErrMissingField — a required field was never supplied.
//   - ErrInvalidValue — a supplied value failed an opt-in policy.
package buildcheck
