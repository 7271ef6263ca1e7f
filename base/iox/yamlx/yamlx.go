// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for loading and saving objects
// in the YAML format.
package yamlx

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, fp)
}

// Read reads the given object from the given reader using YAML encoding.
func Read(v any, reader io.Reader) error {
	return yaml.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes using YAML encoding.
func ReadBytes(v any, data []byte) error {
	return yaml.Unmarshal(data, v)
}

// Write writes the given object using YAML encoding, with two-space indentation.
func Write(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(v, &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
