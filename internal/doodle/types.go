/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package doodle

// This file defines the drawing data: committed strokes and shapes, the
// snapshot type kept in history and the tool configuration of a gesture.

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"doodler/internal/vector"
)

// Stroke is a freehand polyline drawn with one pen.
type Stroke struct {
	ID     uuid.UUID
	Points []vector.Pt
	Color  vector.Color
	Width  float32
}

// Pen returns the round pen the stroke is drawn with.
func (s Stroke) Pen() vector.Pen { return vector.RoundPen(s.Color, s.Width) }

// Path returns the stroke as an open polyline, skipping repeated points.
func (s Stroke) Path() vector.Path {
	pts := make([]vector.Pt, 0, len(s.Points))
	for i, p := range s.Points {
		if i > 0 && p == s.Points[i-1] {
			continue
		}
		pts = append(pts, p)
	}
	return vector.Polyline(pts, false)
}

// IsDot reports whether all points coincide, so the stroke is drawn as a dot.
func (s Stroke) IsDot() bool {
	if len(s.Points) == 0 {
		return false
	}
	for _, p := range s.Points[1:] {
		if p != s.Points[0] {
			return false
		}
	}
	return true
}

// Shape is a parametric outline inside a normalised bounding box.
type Shape struct {
	ID     uuid.UUID
	Kind   vector.Kind
	Bounds vector.Rect // W, H >= vector.MinExtent
	Color  vector.Color
	Width  float32
}

// Pen returns the round pen the outline is stroked with.
func (s Shape) Pen() vector.Pen { return vector.RoundPen(s.Color, s.Width) }

// Outline derives the shape's geometry from its kind and bounds.
func (s Shape) Outline() vector.Outline { return vector.OutlineOf(s.Kind, s.Bounds) }

// State is an immutable snapshot of the committed drawing.
// Values kept in history are never mutated; use Clone before changing one.
type State struct {
	Strokes []Stroke
	Shapes  []Shape
}

var deepCopy = copier.Option{DeepCopy: true}

// Clone returns a deep copy sharing no slices with s.
func (s State) Clone() State {
	var out State
	if err := copier.CopyWithOption(&out, s, deepCopy); err != nil {
		panic(fmt.Errorf("doodle: clone state: %w", err))
	}
	return out
}

// Empty reports whether nothing is committed.
func (s State) Empty() bool { return len(s.Strokes) == 0 && len(s.Shapes) == 0 }

// Scene is everything a renderer needs for one frame: the committed drawing
// plus at most one draft.
type Scene struct {
	State
	DraftStroke *Stroke
	DraftShape  *Shape
}

// Tool selects what a pointer gesture produces.
type Tool uint8

const (
	ToolPen Tool = iota
	ToolRectangle
	ToolCircle
	ToolTriangle
	ToolHexagon
)

// Tools lists the tools in picker order.
var Tools = []Tool{ToolPen, ToolRectangle, ToolCircle, ToolTriangle, ToolHexagon}

// ToolShape returns the tool drawing shapes of kind k.
func ToolShape(k vector.Kind) Tool { return Tool(k) + 1 }

// Shape returns the shape kind drawn by t; false for the pen.
func (t Tool) Shape() (vector.Kind, bool) {
	if t == ToolPen || t > ToolHexagon {
		return 0, false
	}
	return vector.Kind(t - 1), true
}

func (t Tool) String() string {
	if t == ToolPen {
		return "pen"
	}
	if k, ok := t.Shape(); ok {
		return k.String()
	}
	return "unknown"
}

// ParseTool accepts "pen" or a shape kind name, case-insensitively.
func ParseTool(s string) (Tool, error) {
	if normalize(s) == ToolPen.String() {
		return ToolPen, nil
	}
	if k, ok := vector.ParseKind(s); ok {
		return ToolShape(k), nil
	}
	return ToolPen, fmt.Errorf("unknown tool %q", s)
}

// ToolConfig is the pen setup a gesture starts with.
type ToolConfig struct {
	Tool  Tool
	Color vector.Color
	Width float32
}

// DefaultToolConfig is a black medium pen.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{Tool: ToolPen, Color: vector.Black, Width: float32(PenMedium)}
}
