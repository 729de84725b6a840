// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlcore

import "fmt"

// OpenError is passed to [Text.OnError] when a URL could not be opened,
// either because [Text.OpenURL] returned an error or because it panicked.
type OpenError struct {
	URL string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("htmlcore: opening %q: %v", e.URL, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// WiringError is passed to [Text.OnError] when the actions could not be
// attached to a [Semantics] surface.
type WiringError struct {
	Err error
}

func (e *WiringError) Error() string {
	return "htmlcore: attaching actions: " + e.Err.Error()
}

func (e *WiringError) Unwrap() error { return e.Err }
