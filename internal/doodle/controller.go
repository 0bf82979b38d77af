/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package doodle

import (
	"log/slog"

	"github.com/chewxy/math32"

	"doodler/internal/vector"
)

// Controller owns a widget's tool configuration and turns pointer gestures
// into model operations. Tool changes only affect the next gesture.
type Controller struct {
	model *Model
	cfg   ToolConfig
}

// NewController drives m starting from cfg.
func NewController(m *Model, cfg ToolConfig) *Controller {
	return &Controller{model: m, cfg: cfg}
}

func (c *Controller) Model() *Model          { return c.model }
func (c *Controller) ToolConfig() ToolConfig { return c.cfg }

func (c *Controller) SetPenColor(col vector.Color) { c.cfg.Color = col }
func (c *Controller) SetTool(t Tool)               { c.cfg.Tool = t }

// SetPenWidth ignores widths that are not positive and finite.
func (c *Controller) SetPenWidth(w float32) {
	if w > 0 && !math32.IsInf(w, 1) {
		c.cfg.Width = w
	}
}

// PickWidth applies a width preset and switches back to the pen.
func (c *Controller) PickWidth(w PenWidth) {
	c.SetPenWidth(float32(w))
	c.cfg.Tool = ToolPen
}

// PointerDown starts a stroke or a shape draft depending on the tool.
func (c *Controller) PointerDown(p vector.Pt) bool {
	if k, ok := c.cfg.Tool.Shape(); ok {
		return c.model.BeginShapeDraft(c.cfg, k, p)
	}
	return c.model.BeginStroke(c.cfg, p)
}

// PointerMove extends whichever draft is active.
func (c *Controller) PointerMove(p vector.Pt) bool {
	if c.model.ExtendStroke(p) {
		return true
	}
	return c.model.UpdateShapeDraft(p)
}

// PointerUp applies the final position and commits the draft.
func (c *Controller) PointerUp(p vector.Pt) bool {
	c.PointerMove(p)
	ok := c.model.CommitDraft()
	if ok {
		c.model.log.DebugContext(c.model.ctx, "gesture finished", slog.String("tool", c.cfg.Tool.String()))
	}
	return ok
}

// PointerCancel abandons the gesture in progress.
func (c *Controller) PointerCancel() bool { return c.model.DiscardDraft() }

func (c *Controller) Clear() bool   { return c.model.Clear() }
func (c *Controller) Undo() bool    { return c.model.Undo() }
func (c *Controller) Redo() bool    { return c.model.Redo() }
func (c *Controller) CanUndo() bool { return c.model.CanUndo() }
func (c *Controller) CanRedo() bool { return c.model.CanRedo() }
