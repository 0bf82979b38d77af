/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestRectCenterAndShort(t *testing.T) {
	r := R(10, 20, 100, 50)
	if c := r.Center(); c != (Pt{60, 45}) {
		t.Fatalf("unexpected center: %+v", c)
	}
	if r.Short() != 50 {
		t.Fatalf("short side = %v, want 50", r.Short())
	}
}

func TestSpan_NormalisesAnyDragDirection(t *testing.T) {
	want := R(2, 3, 8, 4)
	for _, tc := range []struct{ a, b Pt }{
		{Pt{2, 3}, Pt{10, 7}},
		{Pt{10, 7}, Pt{2, 3}},
		{Pt{10, 3}, Pt{2, 7}},
		{Pt{2, 7}, Pt{10, 3}},
	} {
		if got := Span(tc.a, tc.b, 1); got != want {
			t.Fatalf("Span(%v,%v) = %+v, want %+v", tc.a, tc.b, got, want)
		}
	}
}

func TestSpan_FloorsDegenerateSides(t *testing.T) {
	got := Span(Pt{5, 5}, Pt{5, 5}, MinExtent)
	if got.W != 1 || got.H != 1 || got.X != 5 || got.Y != 5 {
		t.Fatalf("degenerate span = %+v", got)
	}
	got = Span(Pt{0, 4}, Pt{30, 4}, MinExtent)
	if got.W != 30 || got.H != 1 {
		t.Fatalf("flat span = %+v", got)
	}
}

func TestAffineBasic(t *testing.T) {
	p := Scale(2, 3).Apply(Pt{1, 4})
	if p.X != 2 || p.Y != 12 {
		t.Fatalf("unexpected transform result: %+v", p)
	}
	if q := (Affine2D{A: 1, D: 1, E: 10, F: 5}).Apply(Pt{1, 1}); q != (Pt{11, 6}) {
		t.Fatalf("unexpected translation: %+v", q)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 128, 0).Hex(); got != "#ff8000" {
		t.Fatalf("hex = %q", got)
	}
	if got := (Color{1, 2, 3, 4}).Hex(); got != "#01020304" {
		t.Fatalf("hex with alpha = %q", got)
	}
	if n := RGB(1, 2, 3).NRGBA(); n.R != 1 || n.G != 2 || n.B != 3 || n.A != 255 {
		t.Fatalf("NRGBA = %+v", n)
	}
}
