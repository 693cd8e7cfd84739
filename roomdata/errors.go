// SPDX-License-Identifier: MIT
// Package: roomcost/roomdata
//
// errors.go — sentinel errors for the roomdata package.
//
// Every error returned by this package wraps one of these sentinels (or a
// *buildcheck.Error from the room builder) with record context:
//
//	line 3: "Den 3 4": missing ';': roomdata: malformed line
//	roomdata: room 2 ("Kitchen"): room: Dimensions must be set
//
// Branch with errors.Is / errors.As; do not match on strings.

package roomdata

import "errors"

// ErrMalformedLine indicates a text record without a ';' separator or with
// fewer than three numeric tokens after it.
var ErrMalformedLine = errors.New("roomdata: malformed line")

// ErrBadNumber indicates an unparsable numeric token under WithStrictNumbers.
// In the default lenient mode such tokens become the fallback value instead.
var ErrBadNumber = errors.New("roomdata: bad number")

// ErrDecode indicates that a YAML or HCL document could not be decoded.
var ErrDecode = errors.New("roomdata: decode failed")

// ErrUnknownFormat indicates a format name that Decode does not support.
var ErrUnknownFormat = errors.New("roomdata: unknown format")
