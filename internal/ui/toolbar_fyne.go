//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"doodler/internal/doodle"
	"doodler/internal/vector"
)

// toolbar holds the drawing controls above the canvas.
type toolbar struct {
	dw     *DrawingWidget
	cnv    fyne.Canvas
	log    *slog.Logger
	cancel func()

	undo, redo, clear *widget.Button
	colorBtn          *widget.Button
	shapeBtn          *widget.Button
	widthBtn          *widget.Button
	current           *canvas.Rectangle
	status            *widget.Label
	palette           *widget.PopUp
}

func newToolbar(dw *DrawingWidget, cnv fyne.Canvas, l *slog.Logger) *toolbar {
	tb := &toolbar{dw: dw, cnv: cnv, log: l}
	ctrl := dw.Controller()

	tb.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), tb.doUndo)
	tb.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), tb.doRedo)
	tb.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), tb.doClear)

	tb.current = canvas.NewRectangle(ctrl.ToolConfig().Color.NRGBA())
	tb.current.SetMinSize(fyne.NewSize(16, 16))
	tb.current.StrokeColor = theme.Color(theme.ColorNameForeground)
	tb.current.StrokeWidth = 1
	tb.colorBtn = widget.NewButtonWithIcon("Color", theme.ColorPaletteIcon(), func() { tb.showPopupBelow(tb.colorBtn, tb.paletteContent()) })
	tb.shapeBtn = widget.NewButton(toolLabel(ctrl.ToolConfig().Tool), func() { tb.showMenuBelow(tb.shapeBtn, tb.toolMenu()) })
	tb.widthBtn = widget.NewButton(widthLabel(ctrl.ToolConfig().Width), func() { tb.showMenuBelow(tb.widthBtn, tb.widthMenu()) })
	tb.status = widget.NewLabel("")

	tb.cancel = ctrl.Model().Subscribe(tb.onHistory)
	tb.sync()
	return tb
}

// Object lays the controls out in one row, Clear pinned right.
func (tb *toolbar) Object() fyne.CanvasObject {
	left := container.NewHBox(
		tb.undo, tb.redo, widget.NewSeparator(),
		container.NewCenter(tb.current), tb.colorBtn, tb.shapeBtn, tb.widthBtn,
	)
	return container.NewBorder(nil, nil, left, tb.clear)
}

func (tb *toolbar) doUndo() {
	if tb.dw.Controller().Undo() {
		tb.dw.Refresh()
	}
}

func (tb *toolbar) doRedo() {
	if tb.dw.Controller().Redo() {
		tb.dw.Refresh()
	}
}

func (tb *toolbar) doClear() {
	if tb.dw.Controller().Clear() {
		tb.dw.Refresh()
	}
}

func (tb *toolbar) onHistory(ev doodle.HistoryEvent) {
	tb.log.Debug("toolbar sync", slog.String("op", ev.Op.String()))
	tb.sync()
}

// sync mirrors history availability and tool state into the controls.
func (tb *toolbar) sync() {
	ctrl := tb.dw.Controller()
	setEnabled(tb.undo, ctrl.CanUndo())
	setEnabled(tb.redo, ctrl.CanRedo())
	cfg := ctrl.ToolConfig()
	tb.current.FillColor = cfg.Color.NRGBA()
	tb.current.Refresh()
	tb.shapeBtn.SetText(toolLabel(cfg.Tool))
	tb.widthBtn.SetText(widthLabel(cfg.Width))
	tb.status.SetText(ctrl.Model().Summary())
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (tb *toolbar) pickColor(c vector.Color) {
	tb.dw.Controller().SetPenColor(c)
	if tb.palette != nil {
		tb.palette.Hide()
	}
	tb.sync()
}

func (tb *toolbar) pickTool(t doodle.Tool) {
	tb.dw.Controller().SetTool(t)
	tb.sync()
}

func (tb *toolbar) pickWidth(w doodle.PenWidth) {
	tb.dw.Controller().PickWidth(w)
	tb.sync()
}

func (tb *toolbar) paletteContent() fyne.CanvasObject {
	return newPaletteGrid(tb.pickColor)
}

func (tb *toolbar) toolMenu() *fyne.Menu {
	cur := tb.dw.Controller().ToolConfig().Tool
	items := make([]*fyne.MenuItem, 0, len(doodle.Tools))
	for _, t := range doodle.Tools {
		t := t
		item := fyne.NewMenuItem(toolLabel(t), func() { tb.pickTool(t) })
		item.Checked = t == cur
		items = append(items, item)
	}
	return fyne.NewMenu("Shapes", items...)
}

func (tb *toolbar) widthMenu() *fyne.Menu {
	cfg := tb.dw.Controller().ToolConfig()
	items := make([]*fyne.MenuItem, 0, len(doodle.PenWidths))
	for _, w := range doodle.PenWidths {
		w := w
		item := fyne.NewMenuItem(w.Label(), func() { tb.pickWidth(w) })
		item.Checked = cfg.Tool == doodle.ToolPen && float32(w) == cfg.Width
		items = append(items, item)
	}
	return fyne.NewMenu("Width", items...)
}

func (tb *toolbar) showPopupBelow(anchor fyne.CanvasObject, content fyne.CanvasObject) {
	if tb.palette != nil {
		tb.palette.Hide()
	}
	tb.palette = widget.NewPopUp(content, tb.cnv)
	tb.palette.ShowAtPosition(below(anchor))
}

func (tb *toolbar) showMenuBelow(anchor fyne.CanvasObject, m *fyne.Menu) {
	widget.ShowPopUpMenuAtPosition(m, tb.cnv, below(anchor))
}

func below(o fyne.CanvasObject) fyne.Position {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(o)
	return pos.Add(fyne.NewPos(0, o.Size().Height))
}

// Close detaches the toolbar from model events.
func (tb *toolbar) Close() {
	if tb.cancel != nil {
		tb.cancel()
	}
}

func toolLabel(t doodle.Tool) string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func widthLabel(w float32) string {
	for _, p := range doodle.PenWidths {
		if float32(p) == w {
			return "Width: " + p.Label()
		}
	}
	return fmt.Sprintf("Width: %gpx", w)
}

// editMenu mirrors the history buttons. Its items carry no shortcuts; the
// keys are bound once on the canvas by addHistoryShortcuts.
func (tb *toolbar) editMenu() *fyne.Menu {
	return fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", tb.doUndo),
		fyne.NewMenuItem("Redo", tb.doRedo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear", tb.doClear),
	)
}

// addHistoryShortcuts binds Ctrl/Super+Z to undo and Ctrl/Super+Shift+Z to redo.
func addHistoryShortcuts(c fyne.Canvas, tb *toolbar) {
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper} {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod}, func(fyne.Shortcut) { tb.doUndo() })
		c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod | fyne.KeyModifierShift}, func(fyne.Shortcut) { tb.doRedo() })
	}
}
