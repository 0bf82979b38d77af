/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package doodle

import (
	"fmt"
	"strings"

	"doodler/internal/vector"
)

// Palette holds the swatch colours in 4x4 picker order.
var Palette = [16]vector.Color{
	vector.RGB(0, 0, 0), vector.RGB(96, 96, 96), vector.RGB(160, 160, 160), vector.RGB(255, 255, 255),
	vector.RGB(255, 0, 0), vector.RGB(255, 128, 0), vector.RGB(255, 200, 0), vector.RGB(0, 200, 0),
	vector.RGB(0, 160, 96), vector.RGB(0, 160, 200), vector.RGB(0, 96, 200), vector.RGB(0, 0, 255),
	vector.RGB(96, 0, 200), vector.RGB(160, 0, 160), vector.RGB(200, 0, 96), vector.RGB(200, 0, 0),
}

// PaletteColumns is the width of the swatch grid.
const PaletteColumns = 4

// PenWidth is a preset stroke width in canvas units.
type PenWidth float32

const (
	PenSmall  PenWidth = 2
	PenMedium PenWidth = 4
	PenLarge  PenWidth = 7
)

// PenWidths lists the presets in picker order.
var PenWidths = []PenWidth{PenSmall, PenMedium, PenLarge}

func (w PenWidth) String() string {
	switch w {
	case PenSmall:
		return "small"
	case PenMedium:
		return "medium"
	case PenLarge:
		return "large"
	default:
		return fmt.Sprintf("%gpx", float32(w))
	}
}

// Label is the title-cased preset name used in menus.
func (w PenWidth) Label() string {
	s := w.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParsePenWidth accepts a preset name.
func ParsePenWidth(s string) (PenWidth, error) {
	for _, w := range PenWidths {
		if w.String() == normalize(s) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown pen width %q", s)
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
