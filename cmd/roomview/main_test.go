// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), append(args, "-q"), &out)
	return out.String(), err
}

func TestBearing(t *testing.T) {
	tests := map[string]string{
		"0,1":     "0° N\n",
		"1,0":     "270° W\n",
		"0,-1":    "180° S\n",
		"-1, 0":   "90° E\n",
		"-1,-1":   "135° SE\n",
		"0.5,0.5": "315° NW\n",
	}
	for in, want := range tests {
		out, err := runArgs(t, "-bearing", in)
		require.NoError(t, err, in)
		assert.Equal(t, want, out, in)
	}
	for _, in := range []string{"1", "a,b", "NaN,0", "0,Inf"} {
		_, err := runArgs(t, "-bearing", in)
		assert.Error(t, err, in)
	}
}

func TestExport(t *testing.T) {
	out, err := runArgs(t, "-export", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: room")
	assert.Contains(t, out, "family: Width")

	out, err = runArgs(t, "-export", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Name": "room"`)

	_, err = runArgs(t, "-export", "xml")
	assert.ErrorContains(t, err, "xml")
}

func TestExportConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roomview.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Scene]\nName = \"lab\"\n"), 0o644))
	out, err := runArgs(t, "-config", file, "-export", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: lab")

	_, err = runArgs(t, "-config", filepath.Join(t.TempDir(), "missing.toml"), "-export", "yaml")
	assert.Error(t, err)
}

func TestArgs(t *testing.T) {
	_, err := runArgs(t, "-nope")
	assert.Error(t, err)
	_, err = runArgs(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
	_, err = runArgs(t, "extra")
	assert.Error(t, err)
}
