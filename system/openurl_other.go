// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !darwin && !windows

package system

// OpenCommand returns the command and arguments that open the given URL.
// This requires the xdg-utils package.
func OpenCommand(url string) (string, []string) {
	return "xdg-open", []string{url}
}
