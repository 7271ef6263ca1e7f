// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides helpers for [fs.FS] filesystems.
package fsx

import (
	"errors"
	"io/fs"
)

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		defer fp.Close()
		fi, err := fp.Stat()
		if err != nil {
			return false, err
		}
		return !fi.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// AllExistFS returns the first of the given files that does not
// exist, or "" if they all do.
func AllExistFS(fsys fs.FS, files ...string) (missing string, err error) {
	for _, f := range files {
		ok, err := FileExistsFS(fsys, f)
		if err != nil {
			return f, err
		}
		if !ok {
			return f, nil
		}
	}
	return "", nil
}
