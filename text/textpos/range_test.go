// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := Range{2, 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "[2,5)", r.String())

	assert.True(t, r.Valid(5))
	assert.False(t, r.Valid(4))
	assert.False(t, Range{3, 2}.Valid(10))
	assert.False(t, Range{-1, 2}.Valid(10))
	assert.True(t, Range{0, 0}.Valid(0))
}
