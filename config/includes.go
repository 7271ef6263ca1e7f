// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/roomview/base/iox/tomlx"
)

// includer facilitates processing include files in config objects.
type includer interface {
	// IncludesPtr returns a pointer to the Includes []string field containing
	// file(s) to include before processing the current config file.
	IncludesPtr() *[]string
}

// includesOnly reads just the Includes of a config file.
type includesOnly struct {
	Includes []string
}

// openWithIncludes reads the config from the given file. It opens any
// Includes specified in the file in the natural include order, so that
// includers overwrite included settings, and then reopens the file itself.
// On return the Includes field holds the full resolved include stack.
func openWithIncludes(cfg includer, file string) error {
	if err := tomlx.Open(cfg, file); err != nil {
		return err
	}
	incs, err := includeStack(file, *cfg.IncludesPtr())
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		if err := tomlx.Open(cfg, incs[i]); err != nil {
			return err
		}
	}
	// reopen original
	if err := tomlx.Open(cfg, file); err != nil {
		return err
	}
	*cfg.IncludesPtr() = incs
	return nil
}

// includeStack returns the stack of include files of the given file in the
// natural order in which they are encountered (nil if none), as cleaned
// paths. Files should be read in reverse order of the slice. It returns an
// error if any include cannot be read or includes itself.
func includeStack(file string, incs []string) ([]string, error) {
	return includeStackImpl(file, incs, nil, map[string]bool{filepath.Clean(file): true})
}

func includeStackImpl(file string, incs, stack []string, seen map[string]bool) ([]string, error) {
	dir := filepath.Dir(file)
	paths := make([]string, len(incs))
	for i, inc := range incs {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		paths[i] = filepath.Clean(inc)
	}
	for i := len(paths) - 1; i >= 0; i-- {
		stack = append(stack, paths[i]) // reverse order so later overwrite earlier
	}
	for _, inc := range paths {
		if seen[inc] {
			return stack, fmt.Errorf("config: include cycle at %s", inc)
		}
		var io includesOnly
		if err := tomlx.Open(&io, inc); err != nil {
			return stack, err
		}
		seen[inc] = true
		var err error
		stack, err = includeStackImpl(inc, io.Includes, stack, seen)
		delete(seen, inc)
		if err != nil {
			return stack, err
		}
	}
	return stack, nil
}
