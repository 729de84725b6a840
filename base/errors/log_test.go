// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, err))
}

func TestMust1(t *testing.T) {
	assert.NotPanics(t, func() { Must1(2, nil) })
	assert.Equal(t, 2, Must1(2, nil))
	assert.Panics(t, func() { Must1(0, New("boom")) })
}

func TestFromPanic(t *testing.T) {
	assert.NoError(t, FromPanic(nil))
	base := New("base")
	assert.Equal(t, base, FromPanic(base))
	assert.EqualError(t, FromPanic("oops"), "panic: oops")

	wrapped := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
}
