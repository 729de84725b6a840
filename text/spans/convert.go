// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"log/slog"
	"unicode/utf8"

	"cogentcore.org/htmltext/text/rich"
)

// Convert converts the given spans over the plain text into a [rich.Text],
// with one style run per span whose kind has a style in the table, in the
// order of the given spans. Spans of kinds without a style are dropped.
// [URL] spans also add a link annotation, and all links are kept even
// when they overlap.
//
// Every span must be within 0 <= Start <= End <= the rune length of the
// text: otherwise an [*IllegalRangeError] is returned and nothing is
// converted.
func Convert(plain string, sp []Span, table Table) (rich.Text, error) {
	n := utf8.RuneCountInString(plain)
	for i, s := range sp {
		if !s.Range().Valid(n) {
			return rich.Text{}, &IllegalRangeError{Index: i, Span: s, Len: n}
		}
	}
	tx := rich.NewText(plain)
	for _, s := range sp {
		st, ok := table.StyleFor(s.Kind, s.Typeface)
		if !ok {
			slog.Debug("spans.Convert: dropping span without a style", "span", s.String())
			continue
		}
		tx.AddRun(s.apply(st), s.Range())
		if s.Kind == URL {
			tx.AddLink(s.URL, s.Range())
		}
	}
	return tx, nil
}

// apply fills in the fields of the given style from the table that are
// not specified with the payload of the span. The style in the table
// takes precedence, so that an override of the table applies to every
// span of its kind.
func (s Span) apply(st rich.Style) rich.Style {
	var pl rich.Style
	switch s.Kind {
	case ForegroundColor:
		pl.Color = s.Color
	case BackgroundColor:
		pl.Background = s.Color
	case ScaleX:
		pl.ScaleX = s.Scale
	case RelativeSize:
		pl.RelativeSize = s.Scale
	}
	return st.Fill(pl)
}
