// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/htmltext/colors"
)

// DisabledAlpha is the maximum alpha of the colors of a disabled
// [Style], which is 38% opacity.
const DisabledAlpha uint8 = 97

// Style is the set of visual attributes applied to a run of text.
// The zero value of every field means that the attribute is not
// specified, and is to be filled in from a fallback style (see
// [Style.Fill]) or the rendering context. Style is a comparable
// value type and is never modified in place.
type Style struct {

	// Weight is the font weight.
	Weight Weights

	// Slant is the font slant.
	Slant Slants

	// Decoration is the underline and line-through decoration.
	Decoration Decorations

	// Color is the text color. The nil (zero) color is unspecified.
	Color color.NRGBA

	// Background is the background color behind the text.
	// The nil (zero) color is unspecified.
	Background color.NRGBA

	// BaselineShift is the vertical shift of the baseline, as a proportion
	// of the font size: positive values raise the text (superscript),
	// negative values lower it (subscript).
	BaselineShift float32

	// ScaleX is the horizontal scaling of the glyphs.
	ScaleX float32

	// RelativeSize is the font size relative to the surrounding text.
	RelativeSize float32
}

// coalesce returns v unless it is the zero value, in which case it
// returns the fallback.
func coalesce[T comparable](v, fb T) T {
	var zero T
	if v == zero {
		return fb
	}
	return v
}

// Fill returns a copy of this style with every unspecified field
// filled in from the given fallback style. Fields specified on s
// always win over the fallback.
func (s Style) Fill(fb Style) Style {
	return Style{
		Weight:        coalesce(s.Weight, fb.Weight),
		Slant:         coalesce(s.Slant, fb.Slant),
		Decoration:    coalesce(s.Decoration, fb.Decoration),
		Color:         coalesce(s.Color, fb.Color),
		Background:    coalesce(s.Background, fb.Background),
		BaselineShift: coalesce(s.BaselineShift, fb.BaselineShift),
		ScaleX:        coalesce(s.ScaleX, fb.ScaleX),
		RelativeSize:  coalesce(s.RelativeSize, fb.RelativeSize),
	}
}

// Disabled returns the visually disabled version of this style:
// colors are dimmed to at most [DisabledAlpha], and an underline
// is removed (line-through is kept). Unspecified fields stay
// unspecified, so Disabled is idempotent and applying it before
// or after [Style.Fill] gives the same result.
func (s Style) Disabled() Style {
	if !colors.IsNil(s.Color) {
		s.Color = colors.WithA(s.Color, min(s.Color.A, DisabledAlpha))
	}
	if !colors.IsNil(s.Background) {
		s.Background = colors.WithA(s.Background, min(s.Background.A, DisabledAlpha))
	}
	if s.Decoration.HasFlag(Underline) {
		s.Decoration.SetFlag(false, Underline)
		if s.Decoration == 0 {
			s.Decoration.SetFlag(true, DecoNone)
		}
	}
	return s
}

// IsZero returns whether no field of the style is specified.
func (s Style) IsZero() bool {
	return s == Style{}
}

// String returns a compact description of the specified fields.
func (s Style) String() string {
	var parts []string
	if s.Weight != WeightUnset {
		parts = append(parts, "weight:"+s.Weight.String())
	}
	if s.Slant != SlantUnset {
		parts = append(parts, "slant:"+s.Slant.String())
	}
	if s.Decoration != 0 {
		parts = append(parts, "deco:"+s.Decoration.String())
	}
	if !colors.IsNil(s.Color) {
		parts = append(parts, "color:"+colors.AsHex(s.Color))
	}
	if !colors.IsNil(s.Background) {
		parts = append(parts, "bg:"+colors.AsHex(s.Background))
	}
	if s.BaselineShift != 0 {
		parts = append(parts, "shift:"+formatFloat(s.BaselineShift))
	}
	if s.ScaleX != 0 {
		parts = append(parts, "scale-x:"+formatFloat(s.ScaleX))
	}
	if s.RelativeSize != 0 {
		parts = append(parts, "size:"+formatFloat(s.RelativeSize))
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
