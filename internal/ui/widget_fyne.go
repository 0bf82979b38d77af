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
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"doodler/internal/doodle"
	"doodler/internal/render"
	"doodler/internal/vector"
)

var (
	_ desktop.Mouseable  = (*DrawingWidget)(nil)
	_ desktop.Cursorable = (*DrawingWidget)(nil)
	_ fyne.Draggable     = (*DrawingWidget)(nil)
)

// DrawingWidget is the drawing surface. It forwards primary-button gestures
// to a controller and repaints the whole scene from the model on refresh,
// so resizing never loses detail.
type DrawingWidget struct {
	widget.BaseWidget

	ctrl    *doodle.Controller
	bg      color.Color
	minSize fyne.Size

	last vector.Pt // last pointer position of the current gesture
}

// NewDrawingWidget creates a surface for ctrl painted over bg.
func NewDrawingWidget(ctrl *doodle.Controller, bg color.Color, minSize fyne.Size) *DrawingWidget {
	d := &DrawingWidget{ctrl: ctrl, bg: bg, minSize: minSize}
	d.ExtendBaseWidget(d)
	return d
}

// Controller returns the controller fed by this widget.
func (d *DrawingWidget) Controller() *doodle.Controller { return d.ctrl }

func (d *DrawingWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &drawingRenderer{d: d}
	r.raster = canvas.NewRaster(d.paint)
	r.objects = []fyne.CanvasObject{r.raster}
	return r
}

// paint is the raster generator; w and h are device pixels.
func (d *DrawingWidget) paint(w, h int) image.Image {
	scale := float32(1)
	if sz := d.Size(); sz.Width > 0 {
		scale = float32(w) / sz.Width
	}
	return render.Renderer{Background: d.bg, Scale: scale}.RenderImage(w, h, d.ctrl.Model().Scene())
}

func (d *DrawingWidget) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

func (d *DrawingWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	d.last = toPt(e.Position)
	if d.ctrl.PointerDown(d.last) {
		d.Refresh()
	}
}

func (d *DrawingWidget) Dragged(e *fyne.DragEvent) {
	d.last = toPt(e.Position)
	if d.ctrl.PointerMove(d.last) {
		d.Refresh()
	}
}

func (d *DrawingWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	d.finish(toPt(e.Position))
}

// DragEnd commits a gesture whose mouse-up went elsewhere.
func (d *DrawingWidget) DragEnd() { d.finish(d.last) }

func (d *DrawingWidget) finish(p vector.Pt) {
	if d.ctrl.PointerUp(p) {
		d.Refresh()
	}
}

func toPt(p fyne.Position) vector.Pt { return vector.Pt{X: p.X, Y: p.Y} }

type drawingRenderer struct {
	d       *DrawingWidget
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *drawingRenderer) Destroy()                     {}
func (r *drawingRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *drawingRenderer) MinSize() fyne.Size           { return r.d.minSize }
func (r *drawingRenderer) Refresh()                     { r.raster.Refresh() }

func (r *drawingRenderer) Layout(size fyne.Size) {
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(size)
}

// colorSwatch is a tappable palette cell.
type colorSwatch struct {
	widget.BaseWidget
	col   vector.Color
	onTap func(vector.Color)
}

func newColorSwatch(col vector.Color, onTap func(vector.Color)) *colorSwatch {
	s := &colorSwatch{col: col, onTap: onTap}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.col.NRGBA())
	rect.StrokeColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	rect.StrokeWidth = 1
	rect.SetMinSize(fyne.NewSize(24, 24))
	return widget.NewSimpleRenderer(rect)
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap(s.col)
	}
}

// newPaletteGrid lays the palette out as a 4 column grid of swatches.
func newPaletteGrid(onPick func(vector.Color)) *fyne.Container {
	cells := make([]fyne.CanvasObject, 0, len(doodle.Palette))
	for _, c := range doodle.Palette {
		cells = append(cells, newColorSwatch(c, onPick))
	}
	return container.NewGridWithColumns(doodle.PaletteColumns, cells...)
}
