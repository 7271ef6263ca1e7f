// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roomview serves the 3D room scene to the browser viewer.
// It can also export the scene description, or print the compass
// bearing of a camera position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	berrors "cogentcore.org/roomview/base/errors"
	"cogentcore.org/roomview/base/iox/jsonx"
	"cogentcore.org/roomview/base/iox/yamlx"
	"cogentcore.org/roomview/base/logx"
	"cogentcore.org/roomview/compass"
	"cogentcore.org/roomview/config"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/scene"
	"cogentcore.org/roomview/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := run(ctx, os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("roomview", flag.ContinueOnError)
	cfgFile := fs.String("config", "", "TOML config `file`; defaults are used if empty")
	addr := fs.String("addr", "", "`address` to listen on, overriding the config")
	export := fs.String("export", "", "write the scene to stdout in the given `format` (yaml or json) and exit")
	bearing := fs.String("bearing", "", "print the compass bearing of the camera position `x,z` and exit")
	verbose := fs.Bool("v", false, "verbose logging")
	veryVerbose := fs.Bool("vv", false, "very verbose (debug) logging")
	quiet := fs.Bool("q", false, "only log errors")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: roomview [flags]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	logx.UserLevel = logx.LevelFromFlags(*veryVerbose, *verbose, *quiet)
	logx.SetDefaultLogger()

	if *bearing != "" {
		x, z, err := parseXZ(*bearing)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, compass.Label(x, z))
		return nil
	}

	cfg, err := config.Open(*cfgFile)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *export != "" {
		return exportScene(cfg, *export, stdout)
	}

	srv, err := server.New(cfg, nil)
	if err != nil {
		return err
	}
	if *cfgFile != "" && cfg.Server.Watch {
		go func() {
			berrors.Log(config.Watch(ctx, *cfgFile, func(nc *config.Config) {
				berrors.Log(srv.Reload(nc))
			}))
		}()
	}
	return srv.Run(ctx)
}

// exportScene builds the scene and writes it in the given format.
func exportScene(cfg *config.Config, format string, w io.Writer) error {
	sc, err := scene.Build(cfg.Scene, nil)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yamlx.Write(sc, w)
	case "json":
		return jsonx.WriteIndent(sc, w)
	}
	return fmt.Errorf("unknown export format %q; use yaml or json", format)
}

// parseXZ parses a finite "x,z" coordinate pair.
func parseXZ(s string) (x, z float32, err error) {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("bearing %q: want x,z", s)
	}
	var v [2]float32
	for i, fs := range []string{xs, zs} {
		f, err := strconv.ParseFloat(strings.TrimSpace(fs), 32)
		if err != nil {
			return 0, 0, fmt.Errorf("bearing %q: %w", s, err)
		}
		v[i] = float32(f)
		if !math32.IsFinite(v[i]) {
			return 0, 0, fmt.Errorf("bearing %q: coordinates must be finite", s)
		}
	}
	return v[0], v[1], nil
}
