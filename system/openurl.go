// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform operations used to open links.
package system

import (
	"fmt"
	"net/url"
	"os/exec"

	"cogentcore.org/htmltext/base/errors"
)

// ErrNoScheme is returned by [OpenURL] for a URL without a scheme,
// which no platform opener can handle.
var ErrNoScheme = errors.New("system: URL has no scheme")

// start starts the given command without waiting for it to finish.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenURL opens the given URL with the default application for it
// on this platform, such as the user's browser for a web URL.
// It returns once the opener has been started, so a failure of
// the opener itself is not reported.
func OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return fmt.Errorf("%w: %q", ErrNoScheme, rawURL)
	}
	name, args := OpenCommand(rawURL)
	if err := start(name, args...); err != nil {
		return fmt.Errorf("system: running %s: %w", name, err)
	}
	return nil
}
