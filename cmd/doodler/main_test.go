/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"doodler/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, p)
	t.Setenv(config.EnvLogLevel, "error")
	return p
}

func TestRunVersion(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	if code := run([]string{"--version"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out.String(), "Doodler") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunUnknownPrintsUsage(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	if code := run([]string{"paint"}, &out); code != 2 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("usage missing: %q", out.String())
	}
}

func TestRunPalette(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	if code := run([]string{"palette"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	s := out.String()
	for _, want := range []string{"#000000", "#c80000", "medium", "pen, rectangle, circle, triangle, hexagon"} {
		if !strings.Contains(s, want) {
			t.Fatalf("palette output missing %q:\n%s", want, s)
		}
	}
}

func TestConfigInitShowPath(t *testing.T) {
	p := isolate(t)
	var out bytes.Buffer
	if err := configCmd(&out, "init", config.Defaults()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if err := configCmd(&out, "init", config.Defaults()); !errors.Is(err, errConfigExists) {
		t.Fatalf("second init should fail with errConfigExists, got %v", err)
	}

	out.Reset()
	if err := configCmd(&out, "path", config.Defaults()); err != nil || strings.TrimSpace(out.String()) != p {
		t.Fatalf("path = %q, %v", out.String(), err)
	}

	t.Setenv(config.EnvTool, "circle")
	out.Reset()
	if err := configCmd(&out, "show", config.Defaults()); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out.String(), "max_depth: 100") || !strings.Contains(out.String(), "DOODLER_TOOL") {
		t.Fatalf("show output:\n%s", out.String())
	}

	if err := configCmd(&out, "bogus", config.Defaults()); err == nil {
		t.Fatalf("expected error for unknown sub command")
	}
}
