/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"doodler/internal/doodle"
	"doodler/internal/vector"
)

// isolate points the config path at a fresh temp file.
func isolate(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigPath, p)
	return p
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	d := Defaults()
	if cfg.Canvas != d.Canvas || cfg.Pen != d.Pen || cfg.History != d.History {
		t.Fatalf("Load() = %#v, want defaults %#v", cfg, d)
	}
	tc, err := cfg.ToolConfig()
	if err != nil {
		t.Fatalf("ToolConfig() error: %v", err)
	}
	if tc != doodle.DefaultToolConfig() {
		t.Fatalf("ToolConfig() = %#v, want %#v", tc, doodle.DefaultToolConfig())
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Defaults()
	cfg.Pen.Color = "#ff8000"
	cfg.Pen.Width = 7
	cfg.Pen.Tool = "hexagon"
	cfg.History.MaxDepth = 5
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Pen != cfg.Pen || got.History.MaxDepth != 5 {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestLoadMalformedFileKeepsDefaults(t *testing.T) {
	p := isolate(t)
	if err := os.WriteFile(p, []byte("pen: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg.Canvas.Width != 800 {
		t.Fatalf("defaults not kept on error: %#v", cfg.Canvas)
	}
}

func TestLoadInvalidValuesRejected(t *testing.T) {
	p := isolate(t)
	if err := os.WriteFile(p, []byte("pen:\n  tool: spiral\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "pen.tool") {
		t.Fatalf("expected pen.tool error, got %v", err)
	}
}

func TestEnvOverridesPen(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPenColor, "#0000ff")
	t.Setenv(EnvPenWidth, "2")
	t.Setenv(EnvTool, "Circle")
	t.Setenv(EnvHistoryMaxDepth, "3")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	tc, err := cfg.ToolConfig()
	if err != nil {
		t.Fatalf("ToolConfig() error: %v", err)
	}
	want := doodle.ToolConfig{Tool: doodle.ToolShape(vector.KindCircle), Color: vector.RGB(0, 0, 255), Width: 2}
	if tc != want {
		t.Fatalf("ToolConfig() = %#v, want %#v", tc, want)
	}
	if cfg.History.MaxDepth != 3 {
		t.Fatalf("History.MaxDepth = %d", cfg.History.MaxDepth)
	}
	if env, ok := EnvOverrideFor("pen.tool"); !ok || env != EnvTool {
		t.Fatalf("EnvOverrideFor(pen.tool) = %q %v", env, ok)
	}
	if _, ok := EnvOverrideFor("canvas.width"); ok {
		t.Fatalf("canvas.width is not overridden")
	}
}

func TestLoadExplicitZeroMaxDepthMeansUnlimited(t *testing.T) {
	p := isolate(t)
	if err := os.WriteFile(p, []byte("history:\n  max_depth: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.History.MaxDepth != 0 {
		t.Fatalf("History.MaxDepth = %d, want 0 from file", cfg.History.MaxDepth)
	}

	// absent key keeps the default
	if err := os.WriteFile(p, []byte("pen:\n  tool: triangle\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.History.MaxDepth != Defaults().History.MaxDepth {
		t.Fatalf("History.MaxDepth = %d, want default", cfg.History.MaxDepth)
	}
}

func TestEnvPenWidthAcceptsPresetNames(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPenWidth, "Large")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Pen.Width != float32(doodle.PenLarge) {
		t.Fatalf("Pen.Width = %v, want %v", cfg.Pen.Width, float32(doodle.PenLarge))
	}
}

func TestNonFinitePenWidthRejected(t *testing.T) {
	for _, w := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		cfg := Defaults()
		cfg.Pen.Width = w
		if _, err := cfg.ToolConfig(); err == nil {
			t.Fatalf("ToolConfig() accepted width %v", w)
		}
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "pen.width") {
			t.Fatalf("Validate() = %v for width %v", err, w)
		}
	}

	isolate(t)
	t.Setenv(EnvPenWidth, "NaN")
	cfg, err := Load()
	if err == nil {
		t.Fatalf("Load() accepted NaN pen width")
	}
	if cfg.Pen.Width != Defaults().Pen.Width {
		t.Fatalf("Pen.Width = %v, want defaults on error", cfg.Pen.Width)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "debug"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "/tmp/doodler.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "/tmp/doodler.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
	opts := dst.Logging.LogOptions()
	if opts.Level != "debug" || !opts.AddSource || opts.File != "/tmp/doodler.log" {
		t.Fatalf("LogOptions() = %#v", opts)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "/tmp/doodler.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/tmp/doodler.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want vector.Color
		ok   bool
	}{
		{"#000000", vector.Black, true},
		{"ffffff", vector.White, true},
		{"#f80", vector.RGB(255, 136, 0), true},
		{"#ff000080", vector.Color{R: 255, A: 128}, true},
		{"#12345", vector.Color{}, false},
		{"#gggggg", vector.Color{}, false},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("ParseHexColor(%q) err = %v", c.in, err)
		}
		if c.ok && got != c.want {
			t.Fatalf("ParseHexColor(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Canvas.Width = 0
	cfg.Pen.Width = -1
	cfg.History.MaxDepth = -2
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"canvas size", "pen.width", "history.max_depth"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
	if cfg.BackgroundColor() != vector.White {
		t.Fatalf("BackgroundColor() = %#v", cfg.BackgroundColor())
	}
}

func TestConfigPathHonoursXDG(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p) != "config.yaml" {
		t.Fatalf("ConfigPath() = %q", p)
	}
}
