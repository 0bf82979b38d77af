/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package doodle holds the drawing model of the doodle widget: committed
// strokes and shapes, the in-progress draft and snapshot undo/redo history.
package doodle

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	applog "doodler/internal/log"
	"doodler/internal/undo"
	"doodler/internal/vector"
)

// Op names the history-changing operation carried by a HistoryEvent.
type Op uint8

const (
	OpCommit Op = iota + 1
	OpClear
	OpUndo
	OpRedo
)

func (o Op) String() string {
	switch o {
	case OpCommit:
		return "commit"
	case OpClear:
		return "clear"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// HistoryEvent is published after every operation that changed history.
type HistoryEvent struct {
	Op      Op
	CanUndo bool
	CanRedo bool
}

// Options configures a Model.
type Options struct {
	// MaxHistory caps each history stack; 0 keeps everything.
	MaxHistory int
	// Logger defaults to the "canvas" component logger.
	Logger *slog.Logger
	// WidgetID tags log records of this model; a random id is used when empty.
	WidgetID string
}

// Model is the drawing state of one widget. Mutating methods report whether
// they changed anything; calls whose preconditions do not hold are no-ops.
type Model struct {
	mu      sync.RWMutex
	state   State
	stroke  *Stroke // draft, mutually exclusive with shape
	shape   *Shape
	anchor  vector.Pt
	history *undo.Manager[State]

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int

	id  string
	ctx context.Context
	log *slog.Logger
}

// NewModel creates an empty drawing.
func NewModel(opts Options) *Model {
	l := opts.Logger
	if l == nil {
		l = applog.WithComponent("canvas")
	}
	id := opts.WidgetID
	if id == "" {
		id = uuid.NewString()
	}
	return &Model{
		history: undo.NewManager(undo.Config{MaxDepth: opts.MaxHistory}, State.Clone),
		id:      id,
		ctx:     applog.ContextWithWidget(context.Background(), id),
		log:     l,
	}
}

// ID returns the widget id used in log records.
func (m *Model) ID() string { return m.id }

// Subscribe registers fn for history events and returns a function that
// removes it. Events are delivered synchronously, after the state change,
// in registration order.
func (m *Model) Subscribe(fn func(HistoryEvent)) (cancel func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	key := m.nextSub
	m.nextSub++
	m.subs = append(m.subs, subscriber{key: key, fn: fn})
	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		m.subs = slices.DeleteFunc(m.subs, func(s subscriber) bool { return s.key == key })
	}
}

type subscriber struct {
	key int
	fn  func(HistoryEvent)
}

func (m *Model) publish(op Op) {
	ev := HistoryEvent{Op: op, CanUndo: m.history.CanUndo(), CanRedo: m.history.CanRedo()}
	m.subMu.Lock()
	subs := slices.Clone(m.subs)
	m.subMu.Unlock()
	for _, s := range subs {
		s.fn(ev)
	}
	applog.WithOperation(m.log, op.String()).DebugContext(m.ctx, "history changed",
		slog.Bool("can_undo", ev.CanUndo), slog.Bool("can_redo", ev.CanRedo))
}

// BeginStroke starts a freehand draft at p with cfg's colour and width.
// It is rejected while another draft is active.
func (m *Model) BeginStroke(cfg ToolConfig, p vector.Pt) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.draftActiveLocked() {
		m.log.DebugContext(m.ctx, "begin stroke rejected: draft active")
		return false
	}
	m.stroke = &Stroke{ID: uuid.New(), Points: []vector.Pt{p}, Color: cfg.Color, Width: cfg.Width}
	return true
}

// ExtendStroke appends p to the stroke draft.
func (m *Model) ExtendStroke(p vector.Pt) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stroke == nil {
		return false
	}
	m.stroke.Points = append(m.stroke.Points, p)
	return true
}

// BeginShapeDraft anchors a shape draft of kind at p.
// It is rejected while another draft is active.
func (m *Model) BeginShapeDraft(cfg ToolConfig, kind vector.Kind, p vector.Pt) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.draftActiveLocked() {
		m.log.DebugContext(m.ctx, "begin shape rejected: draft active", slog.String("kind", kind.String()))
		return false
	}
	m.anchor = p
	m.shape = &Shape{
		ID:     uuid.New(),
		Kind:   kind,
		Bounds: vector.BuildOutline(kind, p, p).Box,
		Color:  cfg.Color,
		Width:  cfg.Width,
	}
	return true
}

// UpdateShapeDraft moves the free corner of the shape draft to p.
func (m *Model) UpdateShapeDraft(p vector.Pt) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shape == nil {
		return false
	}
	m.shape.Bounds = vector.BuildOutline(m.shape.Kind, m.anchor, p).Box
	return true
}

// CommitDraft appends the active draft to the drawing, recording the prior
// state for undo and discarding redo. Without a draft it does nothing.
func (m *Model) CommitDraft() bool {
	m.mu.Lock()
	if !m.draftActiveLocked() {
		m.mu.Unlock()
		return false
	}
	m.history.Push(m.state)
	next := m.state.Clone()
	attrs := []any{}
	if m.stroke != nil {
		next.Strokes = append(next.Strokes, *m.stroke)
		attrs = append(attrs, slog.String("item", "stroke"), slog.Int("points", len(m.stroke.Points)))
	} else {
		next.Shapes = append(next.Shapes, *m.shape)
		attrs = append(attrs, slog.String("item", m.shape.Kind.String()))
	}
	m.state = next
	m.clearDraftLocked()
	m.mu.Unlock()

	applog.WithOperation(m.log, OpCommit.String()).DebugContext(m.ctx, "draft committed", attrs...)
	m.publish(OpCommit)
	return true
}

// DiscardDraft drops the active draft without touching history.
func (m *Model) DiscardDraft() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.draftActiveLocked() {
		return false
	}
	m.clearDraftLocked()
	return true
}

// Clear empties the drawing as one undoable step. On an empty drawing it
// does nothing, leaving history and any draft untouched.
func (m *Model) Clear() bool {
	m.mu.Lock()
	if m.state.Empty() {
		m.mu.Unlock()
		return false
	}
	m.history.Push(m.state)
	m.state = State{}
	m.clearDraftLocked()
	m.mu.Unlock()

	m.publish(OpClear)
	return true
}

// Undo restores the previous snapshot and drops any draft.
func (m *Model) Undo() bool {
	return m.step(OpUndo, m.history.Undo)
}

// Redo reapplies the most recently undone snapshot and drops any draft.
func (m *Model) Redo() bool {
	return m.step(OpRedo, m.history.Redo)
}

func (m *Model) step(op Op, move func(State) (State, bool)) bool {
	m.mu.Lock()
	restored, ok := move(m.state)
	if !ok {
		m.mu.Unlock()
		return false
	}
	m.state = restored
	m.clearDraftLocked()
	m.mu.Unlock()

	m.publish(op)
	return true
}

func (m *Model) CanUndo() bool { return m.history.CanUndo() }
func (m *Model) CanRedo() bool { return m.history.CanRedo() }

// HistoryDepth returns the sizes of the undo and redo stacks.
func (m *Model) HistoryDepth() (undoDepth, redoDepth int) { return m.history.Stats() }

// State returns a deep copy of the committed drawing.
func (m *Model) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

func (m *Model) Strokes() []Stroke { return m.State().Strokes }
func (m *Model) Shapes() []Shape   { return m.State().Shapes }

// DraftStroke returns a copy of the stroke draft, or nil.
func (m *Model) DraftStroke() *Stroke {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.draftStrokeLocked()
}

// DraftShape returns a copy of the shape draft, or nil.
func (m *Model) DraftShape() *Shape {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.shape == nil {
		return nil
	}
	s := *m.shape
	return &s
}

// HasDraft reports whether a gesture is in progress.
func (m *Model) HasDraft() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.draftActiveLocked()
}

// Scene returns a copy of everything to paint for one frame.
func (m *Model) Scene() Scene {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc := Scene{State: m.state.Clone(), DraftStroke: m.draftStrokeLocked()}
	if m.shape != nil {
		s := *m.shape
		sc.DraftShape = &s
	}
	return sc
}

// Summary is a one-line description of the drawing for diagnostics.
func (m *Model) Summary() string {
	m.mu.RLock()
	strokes, shapes, draft := len(m.state.Strokes), len(m.state.Shapes), m.draftActiveLocked()
	m.mu.RUnlock()
	u, r := m.history.Stats()
	return fmt.Sprintf("strokes=%d shapes=%d draft=%t undo=%d redo=%d", strokes, shapes, draft, u, r)
}

func (m *Model) draftStrokeLocked() *Stroke {
	if m.stroke == nil {
		return nil
	}
	s := *m.stroke
	s.Points = append([]vector.Pt(nil), m.stroke.Points...)
	return &s
}

func (m *Model) draftActiveLocked() bool { return m.stroke != nil || m.shape != nil }

func (m *Model) clearDraftLocked() {
	m.stroke = nil
	m.shape = nil
	m.anchor = vector.Pt{}
}
