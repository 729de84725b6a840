// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and manipulation for text styles.
// Style colors are non-premultiplied [color.NRGBA] values, and the zero
// value is the nil color, which means "unspecified".
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/htmltext/base/errors"
)

// IsNil returns whether the color is the nil initial default color.
func IsNil(c color.Color) bool {
	switch c := c.(type) {
	case nil:
		return true
	case color.NRGBA:
		return c == color.NRGBA{}
	case color.RGBA:
		return c == color.RGBA{}
	default:
		return AsNRGBA(c) == color.NRGBA{}
	}
}

// AsNRGBA returns the given color as a non-premultiplied NRGBA color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithA returns the given color with its alpha
// component (A) set to the given value.
func WithA(c color.Color, a uint8) color.NRGBA {
	n := AsNRGBA(c)
	n.A = a
	return n
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := AsNRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// FromString returns a color value from the given string.
// It accepts hex values (#RGB, #RRGGBB, #RRGGBBAA), rgb(r, g, b),
// rgba(r, g, b, a) with a in 0-1 or 0-255, standard color names,
// and "none" or "" for the nil color.
func FromString(str string) (color.NRGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "" || lstr == "none":
		return color.NRGBA{}, nil
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		return fromFunc(lstr[5:], 4)
	case strings.HasPrefix(lstr, "rgb("):
		return fromFunc(lstr[4:], 3)
	case lstr == "transparent":
		return Transparent, nil
	default:
		return FromName(lstr)
	}
}

// fromFunc parses the comma separated arguments of an rgb() or rgba() color.
func fromFunc(args string, n int) (color.NRGBA, error) {
	args = strings.TrimSuffix(strings.TrimSpace(args), ")")
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("colors.FromString: expected %d components, got %q", n, args)
	}
	var vals [4]uint8
	vals[3] = 255
	for i, p := range parts {
		p = strings.TrimSpace(p)
		pct := strings.HasSuffix(p, "%")
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: invalid component %q: %w", p, err)
		}
		switch {
		case pct:
			f = f * 255 / 100
		case i == 3 && f <= 1:
			f *= 255
		}
		vals[i] = uint8(min(max(f, 0), 255) + 0.5)
	}
	return color.NRGBA{vals[0], vals[1], vals[2], vals[3]}, nil
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.NRGBA, error) {
	c, ok := Map[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.NRGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.NRGBA {
	return errors.Must1(FromHex(hex))
}
