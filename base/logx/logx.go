// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a colorized terminal [slog.Handler]
// and user-level verbosity settings.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through command line flags to the end user's preference.
// The default user verbosity level is [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text [slog.Handler] writing to w, filtering
// on [UserLevel] and coloring the level attribute when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, LevelString(out, lvl))
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level, styled
// with the color for that level on the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lvl >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lvl >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Foreground(out.Color("8"))
	}
	return s.String()
}

// SetDefaultLogger sets the default logger to one writing
// to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// levelVar reads [UserLevel] on every call, so that changes
// to it take effect without reinstalling the handler.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	return UserLevel
}
