// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ansi renders [rich.Text] to a terminal using ANSI escape
// sequences, with links as OSC 8 hyperlinks.
package ansi

import (
	"image/color"
	"strings"

	"cogentcore.org/htmltext/colors"
	"cogentcore.org/htmltext/text/rich"
	"github.com/muesli/termenv"
)

// Renderer renders [rich.Text] for a terminal with a given color profile.
type Renderer struct {

	// Profile is the color profile of the terminal.
	// [termenv.Ascii] renders plain text without any styling.
	Profile termenv.Profile

	// Hyperlinks is whether to render links as OSC 8 hyperlinks.
	Hyperlinks bool
}

// NewRenderer returns a new [Renderer] for the color profile of
// standard output, with hyperlinks.
func NewRenderer() *Renderer {
	return &Renderer{Profile: termenv.ColorProfile(), Hyperlinks: true}
}

// Render renders the given text with the given profile, with hyperlinks.
func Render(tx rich.Text, p termenv.Profile) string {
	r := &Renderer{Profile: p, Hyperlinks: true}
	return r.Render(tx)
}

// Render renders the given text.
func (r *Renderer) Render(tx rich.Text) string {
	var b strings.Builder
	for _, run := range tx.Flatten() {
		s := r.style(run.Style, tx.Slice(run.Range))
		if r.Hyperlinks && r.Profile != termenv.Ascii {
			if ls := tx.LinksAt(run.Range.Start); len(ls) > 0 {
				s = termenv.Hyperlink(ls[0].URL, s)
			}
		}
		b.WriteString(s)
	}
	return b.String()
}

// style applies the given style to the given string.
func (r *Renderer) style(st rich.Style, s string) string {
	if r.Profile == termenv.Ascii || st.IsZero() {
		return s
	}
	ts := r.Profile.String(s)
	faint := false
	switch {
	case st.Weight >= rich.SemiBold:
		ts = ts.Bold()
	case st.Weight != rich.WeightUnset && st.Weight <= rich.Light:
		faint = true
	}
	if st.Slant == rich.Italic {
		ts = ts.Italic()
	}
	if st.Decoration.HasFlag(rich.Underline) {
		ts = ts.Underline()
	}
	if st.Decoration.HasFlag(rich.LineThrough) {
		ts = ts.CrossOut()
	}
	if !colors.IsNil(st.Color) {
		ts = ts.Foreground(r.color(st.Color))
		faint = faint || st.Color.A < 255
	}
	if !colors.IsNil(st.Background) {
		ts = ts.Background(r.color(st.Background))
	}
	if faint {
		ts = ts.Faint()
	}
	return ts.String()
}

// color returns the terminal color closest to the given color.
// The alpha is not representable and is dropped.
func (r *Renderer) color(c color.Color) termenv.Color {
	return r.Profile.Color(colors.AsHex(c)[:7])
}
