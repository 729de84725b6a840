// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"fmt"

	"cogentcore.org/htmltext/base/errors"
)

// ErrIllegalRange is matched by any [IllegalRangeError].
var ErrIllegalRange = errors.New("illegal span range")

// IllegalRangeError is returned by [Convert] for a span whose range
// is not within 0 <= Start <= End <= Len. This indicates garbled
// span data from the parser, so ranges are never clamped.
type IllegalRangeError struct {
	// Index is the index of the offending span.
	Index int

	// Span is the offending span.
	Span Span

	// Len is the rune length of the plain text.
	Len int
}

func (e *IllegalRangeError) Error() string {
	return fmt.Sprintf("spans: %v for span %d (%s) in text of length %d", ErrIllegalRange, e.Index, e.Span, e.Len)
}

func (e *IllegalRangeError) Unwrap() error {
	return ErrIllegalRange
}
