/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Basic 2D geometry for resolution-independent drawing.
// Float values use float32 to align with the UI toolkit coordinates.

import "github.com/chewxy/math32"

// Pt is a 2D point in canvas units.
type Pt struct{ X, Y float32 }

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y float32
	W, H float32
}

func R(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Center() Pt { return Pt{r.X + r.W/2, r.Y + r.H/2} }

// Short returns the shorter of the two sides.
func (r Rect) Short() float32 { return math32.Min(r.W, r.H) }

// Span returns the rectangle spanned by two corner points in any order,
// with each side floored at minSide.
func Span(a, b Pt, minSide float32) Rect {
	return Rect{
		X: math32.Min(a.X, b.X),
		Y: math32.Min(a.Y, b.Y),
		W: math32.Max(math32.Abs(b.X-a.X), minSide),
		H: math32.Max(math32.Abs(b.Y-a.Y), minSide),
	}
}

// Affine2D represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
// stored as [a b c d e f].
type Affine2D struct{ A, B, C, D, E, F float32 }

func (m Affine2D) Apply(p Pt) Pt {
	return Pt{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func Scale(sx, sy float32) Affine2D { return Affine2D{A: sx, D: sy} }
