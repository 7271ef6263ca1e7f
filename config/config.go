// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the
// roomview server, and loads them from TOML files with includes.
package config

import (
	"fmt"

	"cogentcore.org/roomview/base/errors"
	"cogentcore.org/roomview/base/reflectx"
	"cogentcore.org/roomview/grid"
	"cogentcore.org/roomview/scene"
)

// Config is the main config struct that contains all of the
// configuration options for the roomview server.
type Config struct {

	// Includes are other config files to read before this one.
	// Settings in this file override those in the included files,
	// and later includes override earlier ones. Paths are relative
	// to the including file.
	Includes []string

	// Scene are the parameters of the scene that is served.
	Scene scene.Params

	// Server are the server options.
	Server Server
}

// Server are the options of the HTTP server.
type Server struct {

	// Addr is the address to listen on.
	Addr string `default:":8080"`

	// MetricsPath is the path of the Prometheus metrics endpoint;
	// metrics are not served if it is empty.
	MetricsPath string `default:"/metrics"`

	// MaxSessions is the maximum number of concurrent WebSocket sessions.
	MaxSessions int `default:"64"`

	// ShutdownTimeout is how long to wait for connections to
	// close on shutdown, in seconds.
	ShutdownTimeout float32 `default:"5"`

	// Watch is whether to reload the config file when it changes.
	Watch bool `default:"true"`
}

// IncludesPtr returns a pointer to the Includes field.
func (cfg *Config) IncludesPtr() *[]string { return &cfg.Includes }

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Default returns a new config with all defaults set.
func Default() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	cfg.Scene.Defaults()
	return cfg
}

// Open returns the default config overridden by the given TOML file
// and its includes. An empty file name returns the defaults.
func Open(file string) (*Config, error) {
	cfg := Default()
	if file == "" {
		return cfg, nil
	}
	if err := openWithIncludes(cfg, file); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", file, err)
	}
	return cfg, nil
}

// Validate returns an error if the config cannot be served.
func (cfg *Config) Validate() error {
	if err := cfg.Scene.Room.Validate(); err != nil {
		return err
	}
	if cfg.Scene.Grid.On {
		if err := grid.Check(cfg.Scene.Room, cfg.Scene.Grid.Spacing); err != nil {
			return err
		}
	}
	if cfg.Server.MaxSessions < 1 {
		return fmt.Errorf("server MaxSessions %d must be at least 1", cfg.Server.MaxSessions)
	}
	return nil
}
