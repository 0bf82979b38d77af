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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"doodler/internal/doodle"
	applog "doodler/internal/log"
	"doodler/internal/vector"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // #rrggbb or #rrggbbaa
}

type PenConfig struct {
	Color string  `yaml:"color"`
	Width float32 `yaml:"width"`
	Tool  string  `yaml:"tool"` // pen | rectangle | circle | triangle | hexagon
}

type HistoryConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 keeps every snapshot
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type CrashConfig struct {
	Dir string `yaml:"dir"` // empty means the OS temp dir
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Pen           PenConfig     `yaml:"pen"`
	History       HistoryConfig `yaml:"history"`
	Logging       LoggingConfig `yaml:"logging"`
	Crash         CrashConfig   `yaml:"crash"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	tc := doodle.DefaultToolConfig()
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: 800, Height: 600, Background: vector.White.Hex()},
		Pen:           PenConfig{Color: tc.Color.Hex(), Width: tc.Width, Tool: tc.Tool.String()},
		History:       HistoryConfig{MaxDepth: 100},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath      = "DOODLER_CONFIG"
	EnvCanvasWidth     = "DOODLER_CANVAS_WIDTH"
	EnvCanvasHeight    = "DOODLER_CANVAS_HEIGHT"
	EnvBackground      = "DOODLER_BACKGROUND"
	EnvPenColor        = "DOODLER_PEN_COLOR"
	EnvPenWidth        = "DOODLER_PEN_WIDTH"
	EnvTool            = "DOODLER_TOOL"
	EnvHistoryMaxDepth = "DOODLER_HISTORY_MAX_DEPTH"
	EnvCrashDir        = "DOODLER_CRASH_DIR"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "DOODLER_LOG_LEVEL"
	EnvLogFormat = "DOODLER_LOG_FORMAT"
	EnvLogSource = "DOODLER_LOG_SOURCE"
	EnvLogFile   = "DOODLER_LOG_FILE"
)

// envKeys maps config keys to the env var overriding them.
var envKeys = map[string]string{
	"canvas.width":      EnvCanvasWidth,
	"canvas.height":     EnvCanvasHeight,
	"canvas.background": EnvBackground,
	"pen.color":         EnvPenColor,
	"pen.width":         EnvPenWidth,
	"pen.tool":          EnvTool,
	"history.max_depth": EnvHistoryMaxDepth,
	"crash.dir":         EnvCrashDir,
	"logging.level":     EnvLogLevel,
	"logging.format":    EnvLogFormat,
	"logging.source":    EnvLogSource,
	"logging.file":      EnvLogFile,
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Doodler")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Doodler")
	default: // linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "doodler")
		} else if home := os.Getenv("HOME"); home != "" {
			base = filepath.Join(home, ".config", "doodler")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), merges it over the defaults,
// applies environment overrides and validates the result. On error the
// returned config still holds usable defaults.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			applyEnvOverrides(&cfg)
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
		applyExplicitZeros(&cfg, data)
	case !errors.Is(err, os.ErrNotExist):
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Marshal renders cfg as YAML.
func Marshal(cfg AppConfig) ([]byte, error) { return yaml.Marshal(cfg) }

// Validate checks value ranges and that colors and tool names parse.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := ParseHexColor(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("canvas.background: %w", err))
	}
	if _, err := c.ToolConfig(); err != nil {
		errs = append(errs, err)
	}
	if c.History.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("history.max_depth must not be negative, got %d", c.History.MaxDepth))
	}
	return errors.Join(errs...)
}

// ToolConfig converts the pen section into the model's tool configuration.
func (c AppConfig) ToolConfig() (doodle.ToolConfig, error) {
	col, err := ParseHexColor(c.Pen.Color)
	if err != nil {
		return doodle.ToolConfig{}, fmt.Errorf("pen.color: %w", err)
	}
	if !(c.Pen.Width > 0) || math32.IsInf(c.Pen.Width, 0) {
		return doodle.ToolConfig{}, fmt.Errorf("pen.width must be a positive finite number, got %v", c.Pen.Width)
	}
	tool, err := doodle.ParseTool(c.Pen.Tool)
	if err != nil {
		return doodle.ToolConfig{}, fmt.Errorf("pen.tool: %w", err)
	}
	return doodle.ToolConfig{Tool: tool, Color: col, Width: c.Pen.Width}, nil
}

// BackgroundColor returns the parsed canvas background, falling back to white.
func (c AppConfig) BackgroundColor() vector.Color {
	col, err := ParseHexColor(c.Canvas.Background)
	if err != nil {
		return vector.White
	}
	return col
}

// LogOptions converts the logging section for log.Init.
func (l LoggingConfig) LogOptions() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa (leading # optional).
func ParseHexColor(s string) (vector.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return vector.Color{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return vector.Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return vector.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.Width != 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height != 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if strings.TrimSpace(src.Canvas.Background) != "" {
		dst.Canvas.Background = strings.TrimSpace(src.Canvas.Background)
	}
	if strings.TrimSpace(src.Pen.Color) != "" {
		dst.Pen.Color = strings.TrimSpace(src.Pen.Color)
	}
	if src.Pen.Width != 0 {
		dst.Pen.Width = src.Pen.Width
	}
	if strings.TrimSpace(src.Pen.Tool) != "" {
		dst.Pen.Tool = strings.ToLower(strings.TrimSpace(src.Pen.Tool))
	}
	if src.History.MaxDepth != 0 {
		dst.History.MaxDepth = src.History.MaxDepth
	}
	if strings.TrimSpace(src.Crash.Dir) != "" {
		dst.Crash.Dir = strings.TrimSpace(src.Crash.Dir)
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

// explicitKeys holds settings where a literal zero in the file is meaningful
// and must not be mistaken for an absent key.
type explicitKeys struct {
	History struct {
		MaxDepth *int `yaml:"max_depth"`
	} `yaml:"history"`
}

func applyExplicitZeros(cfg *AppConfig, data []byte) {
	var k explicitKeys
	if err := yaml.Unmarshal(data, &k); err != nil {
		return
	}
	if k.History.MaxDepth != nil {
		cfg.History.MaxDepth = *k.History.MaxDepth
	}
}

func envBool(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCanvasWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvBackground)); v != "" {
		cfg.Canvas.Background = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPenColor)); v != "" {
		cfg.Pen.Color = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPenWidth)); v != "" {
		// preset names (small, medium, large) or a width in canvas units
		if w, err := doodle.ParsePenWidth(v); err == nil {
			cfg.Pen.Width = float32(w)
		} else if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Pen.Width = float32(f)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTool)); v != "" {
		cfg.Pen.Tool = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistoryMaxDepth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxDepth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCrashDir)); v != "" {
		cfg.Crash.Dir = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = envBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env, ok := envKeys[key]
	if !ok || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}
