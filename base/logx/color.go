// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"image/color"

	"cogentcore.org/htmltext/colors"
	"github.com/muesli/termenv"
)

// UseColor is whether to use color in terminal output.
// Color is also disabled when the terminal does not support it.
var UseColor = true

// colorProfile is the termenv color profile, stored globally
// so it is only computed once.
var colorProfile = termenv.ColorProfile()

// ApplyColor applies the given color to the given string
// and returns the resulting string. If [UseColor] is set
// to false or the terminal has no color support, it
// just returns the string it was passed.
func ApplyColor(clr color.Color, str string) string {
	if !UseColor || colorProfile == termenv.Ascii {
		return str
	}
	return colorProfile.String(str).Foreground(colorProfile.Color(colors.AsHex(clr)[:7])).String()
}
