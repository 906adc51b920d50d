// Package app provides application lifecycle management: the session state,
// its event bus, the theme, and development hot reload.
package app

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"line-fitter/internal/fit"
	"line-fitter/internal/model"
	"line-fitter/internal/render"
)

// State owns the session data: the point set and the line. There is one
// State per process, created at startup and discarded at exit. All
// mutations go through its methods, each of which republishes a fresh
// render.Frame to listeners.
//
// UI callbacks all run on the Fyne main thread, but the hot-reload ticker
// does not, so reads and writes are guarded by a single mutex.
type State struct {
	mu     sync.RWMutex
	points *model.PointSet
	line   *model.LineModel
	snap   bool

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	// EventDataChanged carries a render.Frame after any data mutation.
	EventDataChanged EventType = iota
	// EventLineChanged carries a render.Frame after the line parameters
	// were explicitly set or fitted, so input fields can echo them back.
	EventLineChanged
	// EventViewReset signals the plot to restore its default view bounds.
	// It carries no data and implies no data mutation.
	EventViewReset
	// EventSnapChanged carries the new snap-to-grid flag.
	EventSnapChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a session with no points, the line y = x, and
// snap-to-grid enabled.
func NewState() *State {
	return &State{
		points:    model.NewPointSet(),
		line:      model.NewLineModel(),
		snap:      true,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Frame returns render data for the current session state.
func (s *State) Frame() render.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return render.Snapshot(s.points.Points(), s.line)
}

// SnapToGrid reports whether clicked coordinates are rounded to the
// nearest integers before storage.
func (s *State) SnapToGrid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// SetSnap toggles snap-to-grid.
func (s *State) SetSnap(snap bool) {
	s.mu.Lock()
	changed := s.snap != snap
	s.snap = snap
	s.mu.Unlock()

	if changed {
		s.Emit(EventSnapChanged, snap)
	}
}

// LineParams returns the current slope and intercept.
func (s *State) LineParams() (m, b float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.line.Params()
}

// PointCount returns the number of stored points.
func (s *State) PointCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points.Len()
}

// AddPointAt handles a click at data coordinates (x, y). With snap enabled
// the coordinates are rounded to the nearest integers before the bounds
// check. Clicks mapping outside the data bounds are silently dropped;
// nothing is republished for them. Returns true if a point was added.
func (s *State) AddPointAt(x, y float64) bool {
	s.mu.Lock()
	if s.snap {
		x = math.Round(x)
		y = math.Round(y)
	}
	added := s.points.Add(x, y)
	s.mu.Unlock()

	if added {
		s.publish(EventDataChanged)
	}
	return added
}

// UndoLast removes the most recently added point. No-op on an empty set.
func (s *State) UndoLast() {
	s.mu.Lock()
	removed := s.points.RemoveLast()
	s.mu.Unlock()

	if removed {
		s.publish(EventDataChanged)
	}
}

// DeleteSelected removes the points at the given indices. No-op when the
// selection is empty.
func (s *State) DeleteSelected(indices []int) {
	if len(indices) == 0 {
		return
	}

	s.mu.Lock()
	removed := s.points.RemoveAt(indices)
	s.mu.Unlock()

	if removed > 0 {
		s.publish(EventDataChanged)
	}
}

// ClearAll removes every point. The UI asks for confirmation first and
// passes the answer in; nothing happens without it or on an empty set.
func (s *State) ClearAll(confirmed bool) {
	if !confirmed {
		return
	}

	s.mu.Lock()
	cleared := s.points.Len() > 0
	s.points.Clear()
	s.mu.Unlock()

	if cleared {
		s.publish(EventDataChanged)
	}
}

// UpdateLineFromInputs parses the m and b text fields and sets the line.
// A parse failure or non-finite value returns an error wrapping
// model.ErrInvalidParameter and mutates nothing.
func (s *State) UpdateLineFromInputs(mText, bText string) error {
	m, err := strconv.ParseFloat(mText, 64)
	if err != nil {
		return fmt.Errorf("slope %q: %w", mText, model.ErrInvalidParameter)
	}
	b, err := strconv.ParseFloat(bText, 64)
	if err != nil {
		return fmt.Errorf("intercept %q: %w", bText, model.ErrInvalidParameter)
	}

	s.mu.Lock()
	if err := s.line.Set(m, b); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.publish(EventLineChanged)
	s.publish(EventDataChanged)
	return nil
}

// FitLine replaces the line parameters with the least-squares fit over the
// current points. fit.ErrInsufficientData and fit.ErrDegenerateFit are
// surfaced to the caller with no mutation.
func (s *State) FitLine() error {
	s.mu.Lock()
	m, b, err := fit.Fit(s.points.Points())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.line.Set(m, b); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.publish(EventLineChanged)
	s.publish(EventDataChanged)
	return nil
}

// ResetView asks the plot to restore its default view bounds. This is a
// pure view signal; no session data changes.
func (s *State) ResetView() {
	s.Emit(EventViewReset, nil)
}

// publish recomputes the render frame and emits it.
func (s *State) publish(event EventType) {
	s.Emit(event, s.Frame())
}
