/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render rasterises a drawing scene onto an image. It keeps no state
// between frames; every call repaints the whole scene from vector data.
package render

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"doodler/internal/doodle"
	"doodler/internal/vector"
)

// Renderer paints scenes. The zero value paints on white at scale 1.
type Renderer struct {
	// Background fills the target before anything else; nil means white.
	Background color.Color
	// Scale maps canvas units to pixels (device pixel ratio); 0 means 1.
	Scale float32
}

// RenderImage paints sc onto a new w x h image.
func (r Renderer) RenderImage(w, h int, sc doodle.Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Render(img, sc)
	return img
}

// Render paints sc onto dst: background, committed strokes, committed
// shapes, then the draft on top.
func (r Renderer) Render(dst draw.Image, sc doodle.Scene) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	target := dst
	if b.Min != (image.Point{}) {
		// the rasterizer mask is anchored at the image origin
		target = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	bg := r.Background
	if bg == nil {
		bg = vector.White.NRGBA()
	}
	draw.Draw(target, target.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	p := newPainter(target, r.scale())
	for _, s := range sc.Strokes {
		p.stroke(s)
	}
	for _, s := range sc.Shapes {
		p.shape(s)
	}
	if sc.DraftStroke != nil {
		p.stroke(*sc.DraftStroke)
	}
	if sc.DraftShape != nil {
		p.shape(*sc.DraftShape)
	}

	if target != dst {
		draw.Draw(dst, b, target, image.Point{}, draw.Src)
	}
}

func (r Renderer) scale() float32 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

// painter shares one scanner between a stroker and a filler.
type painter struct {
	xf      vector.Affine2D
	scale   float32
	stroker *rasterx.Stroker
	filler  *rasterx.Filler
}

func newPainter(dst draw.Image, scale float32) *painter {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	sc := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &painter{
		xf:      vector.Scale(scale, scale),
		scale:   scale,
		stroker: rasterx.NewStroker(w, h, sc),
		filler:  rasterx.NewFiller(w, h, sc),
	}
}

func (p *painter) stroke(s doodle.Stroke) {
	if len(s.Points) == 0 {
		return
	}
	pen := s.Pen()
	if s.IsDot() {
		p.dot(s.Points[0], pen)
		return
	}
	p.strokePath(s.Path(), pen)
}

func (p *painter) shape(s doodle.Shape) {
	p.strokePath(s.Outline().Path(), s.Pen())
}

// dot fills a disc of the pen width, which is what a round-capped
// zero-length segment looks like.
func (p *painter) dot(at vector.Pt, pen vector.Pen) {
	c := p.xf.Apply(at)
	p.filler.Clear()
	rasterx.AddCircle(float64(c.X), float64(c.Y), float64(p.width(pen)/2), p.filler)
	p.filler.SetColor(pen.Color.NRGBA())
	p.filler.Draw()
}

func (p *painter) strokePath(path vector.Path, pen vector.Pen) {
	p.stroker.Clear()
	capFn, gapFn, join := strokeStyle(pen)
	p.stroker.SetStroke(toFixed(p.width(pen)), toFixed(pen.MiterLim), capFn, nil, gapFn, join)
	addPath(p.stroker, path.Transform(p.xf))
	p.stroker.SetColor(pen.Color.NRGBA())
	p.stroker.Draw()
}

// width is the pen width in pixels, never thinner than one pixel.
func (p *painter) width(pen vector.Pen) float32 {
	w := pen.Width * p.scale
	if w < 1 {
		return 1
	}
	return w
}

func strokeStyle(pen vector.Pen) (rasterx.CapFunc, rasterx.GapFunc, rasterx.JoinMode) {
	var capFn rasterx.CapFunc = rasterx.ButtCap
	switch pen.Cap {
	case vector.CapRound:
		capFn = rasterx.RoundCap
	case vector.CapSquare:
		capFn = rasterx.SquareCap
	}
	switch pen.Join {
	case vector.JoinRound:
		return capFn, rasterx.RoundGap, rasterx.Round
	case vector.JoinBevel:
		return capFn, rasterx.FlatGap, rasterx.Bevel
	default:
		return capFn, rasterx.FlatGap, rasterx.MiterClip
	}
}

// addPath feeds path commands to a rasterx adder.
func addPath(a rasterx.Adder, path vector.Path) {
	open := false
	for _, c := range path.Cmds {
		d := c.Data
		switch c.Op {
		case vector.MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(fixedP(d[0], d[1]))
			open = true
		case vector.LineTo:
			a.Line(fixedP(d[0], d[1]))
		case vector.QuadTo:
			a.QuadBezier(fixedP(d[0], d[1]), fixedP(d[2], d[3]))
		case vector.CubicTo:
			a.CubeBezier(fixedP(d[0], d[1]), fixedP(d[2], d[3]), fixedP(d[4], d[5]))
		case vector.Close:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

func fixedP(x, y float32) fixed.Point26_6 { return rasterx.ToFixedP(float64(x), float64(y)) }

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
