/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package undo keeps undo/redo history as two stacks of whole-state snapshots.
package undo

import "sync"

// Config controls the depth cap of the history.
type Config struct {
	// MaxDepth limits the number of snapshots kept on each stack (0 means unlimited).
	// When exceeded, the oldest entries are dropped.
	MaxDepth int
}

// Manager provides an in-memory undo/redo history of snapshots of type S.
// Snapshots pass through the clone function on the way in and out, so
// entries never alias the caller's live state. It is safe for concurrent use.
type Manager[S any] struct {
	cfg   Config
	clone func(S) S
	mu    sync.Mutex
	undo  []S // oldest first; top is the most recent pre-mutation state
	redo  []S
}

// NewManager creates a history. A nil clone stores values as given, which is
// only correct for snapshot types without reference fields.
func NewManager[S any](cfg Config, clone func(S) S) *Manager[S] {
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	if clone == nil {
		clone = func(s S) S { return s }
	}
	return &Manager[S]{cfg: cfg, clone: clone}
}

// Push records the state as it was before a committing mutation.
// Any new change invalidates the redo stack.
func (m *Manager[S]) Push(before S) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = append(m.undo, m.clone(before))
	m.redo = nil
	m.undo = m.capLocked(m.undo)
}

// Undo moves current onto the redo stack and returns the most recent
// snapshot. It reports false and leaves both stacks untouched when there is
// nothing to undo.
func (m *Manager[S]) Undo(current S) (S, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var prev S
	if len(m.undo) == 0 {
		return prev, false
	}
	prev = m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = m.capLocked(append(m.redo, m.clone(current)))
	return m.clone(prev), true
}

// Redo is the mirror of Undo.
func (m *Manager[S]) Redo(current S) (S, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var next S
	if len(m.redo) == 0 {
		return next, false
	}
	next = m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = m.capLocked(append(m.undo, m.clone(current)))
	return m.clone(next), true
}

func (m *Manager[S]) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

func (m *Manager[S]) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Stats returns current stack depths for diagnostics.
func (m *Manager[S]) Stats() (undoDepth, redoDepth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo), len(m.redo)
}

func (m *Manager[S]) capLocked(stack []S) []S {
	if m.cfg.MaxDepth <= 0 || len(stack) <= m.cfg.MaxDepth {
		return stack
	}
	// drop the oldest extras
	toDrop := len(stack) - m.cfg.MaxDepth
	return append([]S(nil), stack[toDrop:]...)
}
