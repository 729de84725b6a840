// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spans

import (
	"fmt"
	"image/color"
	"io"

	"cogentcore.org/htmltext/base/iox"
	"cogentcore.org/htmltext/colors"
	"cogentcore.org/htmltext/text/rich"
)

// styleConfig is the file representation of a [rich.Style],
// with enums by name and colors as CSS color strings.
type styleConfig struct {
	Weight        rich.Weights     `toml:"weight,omitempty" yaml:"weight,omitempty"`
	Slant         rich.Slants      `toml:"slant,omitempty" yaml:"slant,omitempty"`
	Decoration    rich.Decorations `toml:"decoration,omitempty" yaml:"decoration,omitempty"`
	Color         string           `toml:"color,omitempty" yaml:"color,omitempty"`
	Background    string           `toml:"background,omitempty" yaml:"background,omitempty"`
	BaselineShift float32          `toml:"baseline-shift,omitempty" yaml:"baseline-shift,omitempty"`
	ScaleX        float32          `toml:"scale-x,omitempty" yaml:"scale-x,omitempty"`
	RelativeSize  float32          `toml:"relative-size,omitempty" yaml:"relative-size,omitempty"`
}

// tableConfig is the file representation of a [Table],
// keyed by kind name. Kinds that are not present are unspecified.
type tableConfig map[string]styleConfig

func colorString(c color.NRGBA) string {
	if colors.IsNil(c) {
		return ""
	}
	return colors.AsHex(c)
}

func (sc styleConfig) style() (rich.Style, error) {
	fg, err := colors.FromString(sc.Color)
	if err != nil {
		return rich.Style{}, err
	}
	bg, err := colors.FromString(sc.Background)
	if err != nil {
		return rich.Style{}, err
	}
	return rich.Style{
		Weight:        sc.Weight,
		Slant:         sc.Slant,
		Decoration:    sc.Decoration,
		Color:         fg,
		Background:    bg,
		BaselineShift: sc.BaselineShift,
		ScaleX:        sc.ScaleX,
		RelativeSize:  sc.RelativeSize,
	}, nil
}

func newStyleConfig(s rich.Style) styleConfig {
	return styleConfig{
		Weight:        s.Weight,
		Slant:         s.Slant,
		Decoration:    s.Decoration,
		Color:         colorString(s.Color),
		Background:    colorString(s.Background),
		BaselineShift: s.BaselineShift,
		ScaleX:        s.ScaleX,
		RelativeSize:  s.RelativeSize,
	}
}

// table converts the config into a table, returning an error
// for unknown kinds, kinds without a style, and invalid colors.
func (tc tableConfig) table() (Table, error) {
	var t Table
	for name, sc := range tc {
		var k Kinds
		if err := k.SetString(name); err != nil {
			return Table{}, fmt.Errorf("spans: style table: %w", err)
		}
		f := t.field(k)
		if f == nil {
			return Table{}, fmt.Errorf("spans: style table: kind %q has no style", name)
		}
		st, err := sc.style()
		if err != nil {
			return Table{}, fmt.Errorf("spans: style table: %s: %w", name, err)
		}
		*f = st
	}
	return t, nil
}

func newTableConfig(t Table) tableConfig {
	tc := tableConfig{}
	for _, k := range StyledKinds() {
		s := *t.field(k)
		if s.IsZero() {
			continue
		}
		tc[k.String()] = newStyleConfig(s)
	}
	return tc
}

// OpenTable opens a style table from the given TOML or YAML file.
// Only the kinds and fields present in the file are specified, so the
// result is typically used as an override to [Table.Merge] onto the
// [DefaultTable].
func OpenTable(filename string) (*Table, error) {
	var tc tableConfig
	if err := iox.Open(&tc, filename); err != nil {
		return nil, err
	}
	t, err := tc.table()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTable saves the specified styles of the given table to the
// given TOML or YAML file.
func SaveTable(t Table, filename string) error {
	return iox.Save(newTableConfig(t), filename)
}

// WriteTable writes the specified styles of the given table
// to the given writer in TOML.
func WriteTable(t Table, w io.Writer) error {
	return iox.Write(newTableConfig(t), w, iox.NewTOMLEncoder)
}
