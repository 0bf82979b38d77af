/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"doodler/internal/config"
	"doodler/internal/crash"
	"doodler/internal/doodle"
	applog "doodler/internal/log"
	"doodler/internal/ui"
	"doodler/internal/version"
)

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Doodler, a freehand and shape drawing widget")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  doodler version|-v|--version        Show version")
	_, _ = fmt.Fprintln(w, "  doodler ui                          Launch the drawing window (build with -tags fyne)")
	_, _ = fmt.Fprintln(w, "  doodler palette                     List swatches, pen widths and tools")
	_, _ = fmt.Fprintln(w, "  doodler config [path|show|init]     Inspect or create the user config")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, cfgErr := config.Load()
	// initialize structured logging from the effective config
	applog.Init(cfg.Logging.LogOptions())
	l := applog.WithComponent("cli")
	defer crash.Recover(&crash.Report{Dir: cfg.Crash.Dir})
	if cfgErr != nil {
		l.Warn("config not loaded, using defaults", slog.Any("err", cfgErr))
	}

	l.Debug("start", slog.Int("args", len(args)))
	if len(args) == 0 {
		usage(out)
		return 0
	}
	switch args[0] {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(out, "Doodler")
		_, _ = fmt.Fprintln(out, version.String())
		return 0
	case "ui":
		if err := ui.Run(cfg); err != nil {
			l.Error("ui failed", slog.Any("err", err))
			_, _ = fmt.Fprintln(out, "Error:", err)
			return 1
		}
		return 0
	case "palette":
		printPalette(out)
		return 0
	case "config":
		sub := "show"
		if len(args) > 1 {
			sub = args[1]
		}
		if err := configCmd(out, sub, cfg); err != nil {
			l.Error("config command failed", slog.String("sub", sub), slog.Any("err", err))
			_, _ = fmt.Fprintln(out, "Error:", err)
			return 1
		}
		return 0
	default:
		usage(out)
		return 2
	}
}

func printPalette(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Colors:")
	for i, c := range doodle.Palette {
		sep := " "
		if (i+1)%doodle.PaletteColumns == 0 {
			sep = "\n"
		}
		_, _ = fmt.Fprintf(w, "  %s%s", c.Hex(), sep)
	}
	_, _ = fmt.Fprintln(w, "Pen widths:")
	for _, pw := range doodle.PenWidths {
		_, _ = fmt.Fprintf(w, "  %-7s %g\n", pw.String(), float32(pw))
	}
	names := make([]string, 0, len(doodle.Tools))
	for _, t := range doodle.Tools {
		names = append(names, t.String())
	}
	_, _ = fmt.Fprintf(w, "Tools: %s\n", strings.Join(names, ", "))
}

var errConfigExists = errors.New("config file already exists")

func configCmd(w io.Writer, sub string, cfg config.AppConfig) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	switch sub {
	case "path":
		_, _ = fmt.Fprintln(w, path)
	case "show":
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, _ = w.Write(data)
		for _, key := range []string{"pen.color", "pen.width", "pen.tool", "history.max_depth", "canvas.background"} {
			if env, ok := config.EnvOverrideFor(key); ok {
				_, _ = fmt.Fprintf(w, "# %s overridden by %s\n", key, env)
			}
		}
	case "init":
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", errConfigExists, path)
		}
		if err := config.Save(config.Defaults()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		_, _ = fmt.Fprintln(w, "Wrote", path)
	default:
		return fmt.Errorf("unknown config command %q (want path, show or init)", sub)
	}
	return nil
}
