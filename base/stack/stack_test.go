// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var st Stack[string]
	assert.Equal(t, "", st.Pop())
	assert.Equal(t, "", st.Peek())
	st.Push("a", "b")
	st.Push("c")
	assert.Equal(t, "c", st.Peek())
	assert.Equal(t, "c", st.Pop())
	assert.Equal(t, "b", st.Pop())
	assert.Len(t, st, 1)
}
