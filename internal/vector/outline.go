/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"strings"

	"github.com/chewxy/math32"
)

// Kind identifies a shape tool.
type Kind uint8

const (
	KindRectangle Kind = iota
	KindCircle
	KindTriangle
	KindHexagon
)

// Kinds lists the shape kinds in picker order.
var Kinds = []Kind{KindRectangle, KindCircle, KindTriangle, KindHexagon}

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindHexagon:
		return "hexagon"
	default:
		return "unknown"
	}
}

// ParseKind accepts the lower-case kind names, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// MinExtent is the smallest side a shape box may have, so that a click
// without drag still yields a visible shape.
const MinExtent float32 = 1

// kappa places cubic control points for a quarter circle.
const kappa float32 = 0.5522847498

// Outline is the closed boundary of a shape derived from its kind and box.
// Polygon kinds carry Vertices; circles carry Center and Radius.
type Outline struct {
	Kind     Kind
	Box      Rect
	Vertices []Pt
	Center   Pt
	Radius   float32
}

// BuildOutline normalises the drag from anchor to current into a box and
// derives the outline of kind inside it.
func BuildOutline(kind Kind, anchor, current Pt) Outline {
	return OutlineOf(kind, Span(anchor, current, MinExtent))
}

// OutlineOf derives the outline of kind for an already normalised box.
func OutlineOf(kind Kind, box Rect) Outline {
	o := Outline{Kind: kind, Box: box}
	switch kind {
	case KindCircle:
		d := box.Short()
		o.Radius = d / 2
		o.Center = Pt{box.X + o.Radius, box.Y + o.Radius}
	case KindTriangle:
		o.Vertices = []Pt{
			{box.X + box.W/2, box.Y},
			{box.X + box.W, box.Y + box.H},
			{box.X, box.Y + box.H},
		}
	case KindHexagon:
		c := box.Center()
		r := box.Short() / 2
		o.Vertices = make([]Pt, 6)
		for i := range o.Vertices {
			a := (-30 + 60*float32(i)) * math32.Pi / 180
			s, cs := math32.Sincos(a)
			o.Vertices[i] = Pt{c.X + r*cs, c.Y + r*s}
		}
	default:
		o.Vertices = []Pt{
			{box.X, box.Y},
			{box.X + box.W, box.Y},
			{box.X + box.W, box.Y + box.H},
			{box.X, box.Y + box.H},
		}
	}
	return o
}

// IsCircle reports whether the outline is a circle rather than a polygon.
func (o Outline) IsCircle() bool { return o.Kind == KindCircle }

// Bounds returns the tight bounds of the outline geometry.
func (o Outline) Bounds() Rect {
	if o.IsCircle() {
		return Rect{X: o.Center.X - o.Radius, Y: o.Center.Y - o.Radius, W: 2 * o.Radius, H: 2 * o.Radius}
	}
	return Polyline(o.Vertices, true).Bounds()
}

// Path returns the closed outline as a path. Circles are approximated
// with four cubic segments.
func (o Outline) Path() Path {
	if !o.IsCircle() {
		return Polyline(o.Vertices, true)
	}
	cx, cy, r := o.Center.X, o.Center.Y, o.Radius
	k := r * kappa
	var p Path
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}
