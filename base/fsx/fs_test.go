// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openOnly hides the Stat method of a filesystem.
type openOnly struct{ fs.FS }

func TestFileExistsFS(t *testing.T) {
	mfs := fstest.MapFS{
		"a.png":     {Data: []byte("a")},
		"dir/b.png": {Data: []byte("b")},
	}
	for _, fsys := range []fs.FS{mfs, openOnly{mfs}} {
		ok, err := FileExistsFS(fsys, "a.png")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = FileExistsFS(fsys, "dir")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = FileExistsFS(fsys, "c.png")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestAllExistFS(t *testing.T) {
	mfs := fstest.MapFS{"a": {}, "b": {}}
	missing, err := AllExistFS(mfs, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = AllExistFS(mfs, "a", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, "c", missing)
}
