// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandlerFiltersOnUserLevel(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))

	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	assert.Empty(t, buf.String())
	lg.Warn("shown", "frame", 3)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "frame=3")

	buf.Reset()
	UserLevel = slog.LevelDebug
	lg.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
	assert.Contains(t, buf.String(), "DEBUG")
}
