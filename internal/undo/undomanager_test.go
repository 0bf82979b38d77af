/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"slices"
	"testing"
)

func cloneInts(s []int) []int { return slices.Clone(s) }

func TestUndoRedoBasic(t *testing.T) {
	m := NewManager(Config{MaxDepth: 10}, cloneInts)
	m.Push([]int{})  // before first change
	m.Push([]int{1}) // before second change
	current := []int{1, 2}
	if u, r := m.Stats(); u != 2 || r != 0 {
		t.Fatalf("expected 2 undo and 0 redo entries, got %d/%d", u, r)
	}
	prev, ok := m.Undo(current)
	if !ok || !slices.Equal(prev, []int{1}) {
		t.Fatalf("undo expected [1], got ok=%v %v", ok, prev)
	}
	if !m.CanRedo() {
		t.Fatalf("redo should be available after undo")
	}
	next, ok := m.Redo(prev)
	if !ok || !slices.Equal(next, []int{1, 2}) {
		t.Fatalf("redo expected [1 2], got ok=%v %v", ok, next)
	}
	if m.CanRedo() {
		t.Fatalf("redo stack should be empty again")
	}
}

func TestEmptyStacksAreNoops(t *testing.T) {
	m := NewManager[[]int](Config{}, cloneInts)
	if _, ok := m.Undo([]int{1}); ok {
		t.Fatalf("undo on empty history should report false")
	}
	if _, ok := m.Redo([]int{1}); ok {
		t.Fatalf("redo on empty history should report false")
	}
	if u, r := m.Stats(); u != 0 || r != 0 {
		t.Fatalf("no-op calls changed stacks: %d/%d", u, r)
	}
}

func TestPushClearsRedo(t *testing.T) {
	m := NewManager(Config{}, cloneInts)
	m.Push(nil)
	if _, ok := m.Undo([]int{7}); !ok {
		t.Fatalf("expected undo")
	}
	m.Push(nil)
	if m.CanRedo() {
		t.Fatalf("push must clear redo")
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	m := NewManager(Config{}, cloneInts)
	live := []int{1, 2, 3}
	m.Push(live)
	live[0] = 99
	prev, _ := m.Undo(live)
	if prev[0] != 1 {
		t.Fatalf("stored snapshot aliased the live slice: %v", prev)
	}
	prev[1] = 42
	back, _ := m.Redo(prev)
	if back[0] != 99 || back[1] != 2 {
		t.Fatalf("redo snapshot aliased a returned value: %v", back)
	}
}

func TestCaps(t *testing.T) {
	m := NewManager(Config{MaxDepth: 2}, cloneInts)
	for i := 0; i < 10; i++ {
		m.Push([]int{i})
	}
	u, _ := m.Stats()
	if u != 2 {
		t.Fatalf("expected MaxDepth cap to limit to 2, got %d", u)
	}
	prev, _ := m.Undo([]int{10})
	if prev[0] != 9 {
		t.Fatalf("expected newest snapshot to survive the cap, got %v", prev)
	}
	prev, _ = m.Undo(prev)
	if prev[0] != 8 {
		t.Fatalf("expected second newest snapshot, got %v", prev)
	}
	if m.CanUndo() {
		t.Fatalf("oldest snapshots should have been dropped")
	}
}
