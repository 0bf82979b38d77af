/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "github.com/chewxy/math32"

// Path commands and shapes.

type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	QuadTo  // quadratic bezier (cx, cy, x, y)
	CubicTo // cubic bezier (cx1, cy1, cx2, cy2, x, y)
	Close
)

type PathCmd struct {
	Op   PathOp
	Data [6]float32 // enough for cubic; unused slots are zero
}

// Pts returns the points carried by the command in order (controls first, end point last).
func (c PathCmd) Pts() []Pt {
	switch c.Op {
	case MoveTo, LineTo:
		return []Pt{{c.Data[0], c.Data[1]}}
	case QuadTo:
		return []Pt{{c.Data[0], c.Data[1]}, {c.Data[2], c.Data[3]}}
	case CubicTo:
		return []Pt{{c.Data[0], c.Data[1]}, {c.Data[2], c.Data[3]}, {c.Data[4], c.Data[5]}}
	}
	return nil
}

type Path struct{ Cmds []PathCmd }

func (p *Path) MoveTo(x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: MoveTo, Data: [6]float32{x, y}})
}
func (p *Path) LineTo(x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: LineTo, Data: [6]float32{x, y}})
}
func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: QuadTo, Data: [6]float32{cx, cy, x, y}})
}
func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float32) {
	p.Cmds = append(p.Cmds, PathCmd{Op: CubicTo, Data: [6]float32{cx1, cy1, cx2, cy2, x, y}})
}
func (p *Path) Close() { p.Cmds = append(p.Cmds, PathCmd{Op: Close}) }

// Polyline builds an open path through pts. With closed set, the path is closed.
func Polyline(pts []Pt, closed bool) Path {
	var p Path
	for i, q := range pts {
		if i == 0 {
			p.MoveTo(q.X, q.Y)
			continue
		}
		p.LineTo(q.X, q.Y)
	}
	if closed && len(pts) > 0 {
		p.Close()
	}
	return p
}

// Transform returns a copy of the path with m applied to every point.
func (p Path) Transform(m Affine2D) Path {
	out := Path{Cmds: make([]PathCmd, len(p.Cmds))}
	for i, c := range p.Cmds {
		out.Cmds[i].Op = c.Op
		for j, q := range c.Pts() {
			q = m.Apply(q)
			out.Cmds[i].Data[2*j] = q.X
			out.Cmds[i].Data[2*j+1] = q.Y
		}
	}
	return out
}

// Bounds returns an axis-aligned bounding box of the path, approximated
// by including control points.
func (p Path) Bounds() Rect {
	const inf = float32(math32.MaxFloat32)
	minX, minY := inf, inf
	maxX, maxY := -inf, -inf
	for _, c := range p.Cmds {
		for _, q := range c.Pts() {
			minX = math32.Min(minX, q.X)
			minY = math32.Min(minY, q.Y)
			maxX = math32.Max(maxX, q.X)
			maxY = math32.Max(maxY, q.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
