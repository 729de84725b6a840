// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(color.NRGBA{}))
	assert.True(t, IsNil(color.RGBA{}))
	assert.False(t, IsNil(Black))
	assert.False(t, IsNil(Transparent))
	assert.False(t, IsNil(color.NRGBA{R: 10}))
}

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"", color.NRGBA{}},
		{"none", color.NRGBA{}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#00FF00", color.NRGBA{0, 255, 0, 255}},
		{"#0000ff80", color.NRGBA{0, 0, 255, 128}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 255}},
		{"rgba(1, 2, 3, 0.5)", color.NRGBA{1, 2, 3, 128}},
		{"rgba(10, 20, 30, 64)", color.NRGBA{10, 20, 30, 64}},
		{"rgb(100%, 0%, 0%)", color.NRGBA{255, 0, 0, 255}},
		{"Red", color.NRGBA{255, 0, 0, 255}},
		{"transparent", Transparent},
	}
	for _, test := range tests {
		c, err := FromString(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, c, test.in)
		}
	}

	_, err := FromString("notacolor")
	assert.Error(t, err)
	_, err = FromString("#12345")
	assert.Error(t, err)
	_, err = FromString("rgb(1, 2)")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	c := color.NRGBA{0x12, 0x34, 0x56, 0x78}
	assert.Equal(t, "#12345678", AsHex(c))
	back, err := FromHex(AsHex(c))
	assert.NoError(t, err)
	assert.Equal(t, c, back)
	assert.Equal(t, "nil", AsHex(nil))
	assert.Panics(t, func() { MustFromHex("zz") })
}

func TestWithA(t *testing.T) {
	assert.Equal(t, color.NRGBA{1, 2, 3, 9}, WithA(color.NRGBA{1, 2, 3, 255}, 9))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, AsNRGBA(color.RGBA{255, 0, 0, 255}))
}
