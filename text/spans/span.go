// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spans converts the markup spans of parsed HTML text into
// [rich.Text] style runs and link annotations, using a [Table] that
// maps each span kind to a [rich.Style].
package spans

import (
	"fmt"
	"image/color"

	"cogentcore.org/htmltext/text/textpos"
)

// Span marks a range of plain text with one kind of markup.
// Start and End are rune indexes, with End exclusive.
// Only the payload field relevant to the Kind is used.
type Span struct {

	// Kind is the kind of markup.
	Kind Kinds

	// Typeface selects the style of a [StyleSpan].
	Typeface TypefaceStyles

	// Start is the starting rune index.
	Start int

	// End is the ending rune index, exclusive.
	End int

	// URL is the destination of a [URL] span, or the source of an [Image].
	URL string

	// Color is the color of a [ForegroundColor] or [BackgroundColor] span.
	Color color.NRGBA

	// Scale is the factor of a [ScaleX] or [RelativeSize] span.
	Scale float32

	// Family is the font family of a [Typeface] span.
	Family string
}

// Range returns the range of the span.
func (s Span) Range() textpos.Range {
	return textpos.Range{Start: s.Start, End: s.End}
}

func (s Span) String() string {
	switch s.Kind {
	case URL, Image:
		return fmt.Sprintf("%s%v %s", s.Kind, s.Range(), s.URL)
	case StyleSpan:
		return fmt.Sprintf("%s%v %s", s.Kind, s.Range(), s.Typeface)
	}
	return fmt.Sprintf("%s%v", s.Kind, s.Range())
}
