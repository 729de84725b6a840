// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(NewHandler(&b, slog.LevelWarn))
	l.Info("hidden")
	l.Warn("shown", "key", "value")
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestApplyColor(t *testing.T) {
	UseColor = false
	defer func() { UseColor = true }()
	assert.Equal(t, "plain", ApplyColor(color.NRGBA{R: 255, A: 255}, "plain"))
}

func TestSetDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	UserLevel = slog.LevelInfo
	defer func() { UserLevel = slog.LevelWarn }()

	var b bytes.Buffer
	SetDefaultLogger(&b)
	slog.Debug("quiet")
	slog.Info("loud")
	assert.NotContains(t, b.String(), "quiet")
	assert.Contains(t, b.String(), "loud")
}
