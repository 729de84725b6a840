// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"encoding/binary"
	"math"
	"strings"

	"cogentcore.org/htmltext/colors"
	"cogentcore.org/htmltext/text/rich"
	"github.com/cespare/xxhash/v2"
)

var (
	// LinkColor is the text color of links in the [DefaultTable].
	LinkColor = colors.MustFromHex("#1A73E8")

	// ForegroundDefault is the text color of [ForegroundColor] spans
	// in the [DefaultTable].
	ForegroundDefault = colors.MustFromHex("#00FF00")

	// BackgroundDefault is the background color of [BackgroundColor]
	// spans in the [DefaultTable].
	BackgroundDefault = colors.MustFromHex("#FFFF00")
)

// Table has the [rich.Style] for each kind of span that has a style.
// It is a comparable value: tables are never modified in place,
// and [Table.Merge] and [Table.Disabled] return new tables.
type Table struct {
	Normal          rich.Style
	Bold            rich.Style
	Italic          rich.Style
	BoldItalic      rich.Style
	Underline       rich.Style
	Strikethrough   rich.Style
	URL             rich.Style
	Subscript       rich.Style
	Superscript     rich.Style
	ForegroundColor rich.Style
	BackgroundColor rich.Style
	ScaleX          rich.Style
	RelativeSize    rich.Style
}

// DefaultTable returns the default styles for each kind of span.
func DefaultTable() Table {
	var none, ul, lt rich.Decorations
	none.SetFlag(true, rich.DecoNone)
	ul.SetFlag(true, rich.Underline)
	lt.SetFlag(true, rich.LineThrough)
	return Table{
		Normal:          rich.Style{Weight: rich.Normal, Slant: rich.SlantNormal, Decoration: none},
		Bold:            rich.Style{Weight: rich.Bold},
		Italic:          rich.Style{Slant: rich.Italic},
		BoldItalic:      rich.Style{Weight: rich.Bold, Slant: rich.Italic},
		Underline:       rich.Style{Decoration: ul},
		Strikethrough:   rich.Style{Decoration: lt},
		URL:             rich.Style{Decoration: ul, Color: LinkColor},
		Subscript:       rich.Style{BaselineShift: -0.5},
		Superscript:     rich.Style{BaselineShift: 0.5},
		ForegroundColor: rich.Style{Color: ForegroundDefault},
		BackgroundColor: rich.Style{Background: BackgroundDefault},
		ScaleX:          rich.Style{ScaleX: 2},
		RelativeSize:    rich.Style{RelativeSize: 2},
	}
}

// StyledKinds returns the kinds that have a style in a [Table].
func StyledKinds() []Kinds {
	return KindsValues()[:RelativeSize+1]
}

// field returns a pointer to the style for the given kind,
// or nil if the kind has no style.
func (t *Table) field(kind Kinds) *rich.Style {
	switch kind {
	case Normal:
		return &t.Normal
	case Bold:
		return &t.Bold
	case Italic:
		return &t.Italic
	case BoldItalic:
		return &t.BoldItalic
	case Underline:
		return &t.Underline
	case Strikethrough:
		return &t.Strikethrough
	case URL:
		return &t.URL
	case Subscript:
		return &t.Subscript
	case Superscript:
		return &t.Superscript
	case ForegroundColor:
		return &t.ForegroundColor
	case BackgroundColor:
		return &t.BackgroundColor
	case ScaleX:
		return &t.ScaleX
	case RelativeSize:
		return &t.RelativeSize
	}
	return nil
}

// StyleFor returns the style for the given kind of span. A [StyleSpan]
// is resolved through the given typeface style, with unknown values
// resolving to Normal. It returns false for kinds that have no style,
// which are to be skipped.
func (t Table) StyleFor(kind Kinds, tf TypefaceStyles) (rich.Style, bool) {
	if kind == StyleSpan {
		switch tf {
		case TypefaceBold:
			kind = Bold
		case TypefaceItalic:
			kind = Italic
		case TypefaceBoldItalic:
			kind = BoldItalic
		default:
			kind = Normal
		}
	}
	f := t.field(kind)
	if f == nil {
		return rich.Style{}, false
	}
	return *f, true
}

// Merge returns a table where the styles of the other table are filled
// in from the styles of this table: the other table's specified fields
// win, and this table supplies the fallbacks. A nil other table
// returns this table unchanged.
func (t Table) Merge(other *Table) Table {
	if other == nil {
		return t
	}
	res := *other
	for _, k := range StyledKinds() {
		f := res.field(k)
		*f = f.Fill(*t.field(k))
	}
	return res
}

// Disabled returns the table with every style replaced by its
// [rich.Style.Disabled] version.
func (t Table) Disabled() Table {
	for _, k := range StyledKinds() {
		f := t.field(k)
		*f = f.Disabled()
	}
	return t
}

// Equal returns whether the two tables have the same styles.
func (t Table) Equal(o Table) bool {
	return t == o
}

// Hash returns a hash of all the styles in the table,
// consistent with [Table.Equal], for use as a cache key.
func (t Table) Hash() uint64 {
	h := xxhash.New()
	b := make([]byte, 0, 32)
	for _, k := range StyledKinds() {
		b = appendStyle(b[:0], *t.field(k))
		h.Write(b)
	}
	return h.Sum64()
}

// appendStyle appends a fixed-size binary encoding of the style.
func appendStyle(b []byte, s rich.Style) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(s.Weight))
	b = binary.LittleEndian.AppendUint32(b, uint32(s.Slant))
	b = binary.LittleEndian.AppendUint64(b, uint64(s.Decoration))
	b = append(b, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	b = append(b, s.Background.R, s.Background.G, s.Background.B, s.Background.A)
	for _, f := range []float32{s.BaselineShift, s.ScaleX, s.RelativeSize} {
		if f == 0 { // -0 == 0
			f = 0
		}
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

// String returns a line for each kind with a specified style.
func (t Table) String() string {
	var b strings.Builder
	for _, k := range StyledKinds() {
		s := *t.field(k)
		if s.IsZero() {
			continue
		}
		b.WriteString(k.String() + ": " + s.String() + "\n")
	}
	return b.String()
}
