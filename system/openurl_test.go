// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCommand(t *testing.T) {
	name, args := OpenCommand("https://example.com")
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, "open", name)
	case "windows":
		assert.Equal(t, "rundll32", name)
	default:
		assert.Equal(t, "xdg-open", name)
	}
	assert.Equal(t, "https://example.com", args[len(args)-1])
}

func TestOpenURL(t *testing.T) {
	old := start
	t.Cleanup(func() { start = old })

	var got []string
	start = func(name string, args ...string) error {
		got = append([]string{name}, args...)
		return nil
	}
	assert.NoError(t, OpenURL("https://example.com"))
	assert.Equal(t, "https://example.com", got[len(got)-1])

	got = nil
	assert.ErrorIs(t, OpenURL("example"), ErrNoScheme)
	assert.Nil(t, got)

	start = func(name string, args ...string) error { return errors.New("not found") }
	assert.ErrorContains(t, OpenURL("https://example.com"), "not found")
}
