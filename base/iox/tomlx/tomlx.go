// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for loading and saving objects
// in the TOML format.
package tomlx

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp)); err != nil {
		return fmt.Errorf("tomlx.Open: %s: %w", filename, err)
	}
	return nil
}

// OpenFiles reads the given object from the given filenames using TOML encoding,
// in order, so that later files override earlier ones. All errors are joined.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		errs = append(errs, Open(v, fn))
	}
	return errors.Join(errs...)
}

// OpenFS reads the given object from the given filename using TOML encoding,
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(v any, fsys fs.FS, filename string) error {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return err
	}
	return ReadBytes(v, b)
}

// Read reads the given object from the given reader using TOML encoding.
func Read(v any, reader io.Reader) error {
	return toml.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
func ReadBytes(v any, data []byte) error {
	return toml.Unmarshal(data, v)
}

// Save writes the given object to the given filename using TOML encoding.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object using TOML encoding.
func Write(v any, writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(v)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using TOML encoding.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(v, &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
