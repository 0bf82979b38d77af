/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"fmt"
	"image/color"
)

// Styles and paint definitions.

type Color struct{ R, G, B, A uint8 }

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// NRGBA converts to the stdlib non-premultiplied color.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// Hex formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Pen describes how an open or closed path is stroked.
type Pen struct {
	Color    Color
	Width    float32
	Cap      LineCap
	Join     LineJoin
	MiterLim float32
}

// RoundPen returns a pen with round caps and joins.
func RoundPen(c Color, width float32) Pen {
	return Pen{Color: c, Width: width, Cap: CapRound, Join: JoinRound, MiterLim: 4}
}
