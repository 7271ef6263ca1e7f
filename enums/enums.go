// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the shared text conversions of the
// named int32 enum types, whose values index a fixed list of names.
package enums

import "fmt"

// Enum is the constraint satisfied by the enum types.
type Enum interface {
	~int32
}

// String returns the name of v in names, or typ(v) if v is out of range.
func String[T Enum](typ string, names []string, v T) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, int32(v))
	}
	return names[v]
}

// SetString sets v to the value whose name is s, returning an
// error if there is no such name.
func SetString[T Enum](typ string, names []string, v *T, s string) error {
	for i, nm := range names {
		if nm == s {
			*v = T(i)
			return nil
		}
	}
	return fmt.Errorf("%s: unknown value %q", typ, s)
}
