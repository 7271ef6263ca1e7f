// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides functions for loading and saving objects
// in the JSON format.
package jsonx

import (
	"encoding/json"
	"io"
)

// Read reads the given object from the given reader using JSON encoding.
func Read(v any, reader io.Reader) error {
	return json.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes using JSON encoding.
func ReadBytes(v any, data []byte) error {
	return json.Unmarshal(data, v)
}

// Write writes the given object using JSON encoding.
func Write(v any, writer io.Writer) error {
	return json.NewEncoder(writer).Encode(v)
}

// WriteIndent writes the given object using indented JSON encoding.
func WriteIndent(v any, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using JSON encoding.
func WriteBytes(v any) ([]byte, error) {
	return json.Marshal(v)
}
