// SPDX-License-Identifier: MIT

// Package scene keeps the set of posed surfaces that make up a world.
//
// Concurrency:
//   - Scene is safe for concurrent use; one sync.RWMutex guards the catalog.
//   - Snapshot copies the entries under a read lock, so a frame can render
//     while other goroutines keep moving objects.
//
// Determinism:
//   - IDs and Snapshot enumerate entries in insertion order.
package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/surface"
)

// Sentinel errors for scene operations.
var (
	// ErrNilSurface indicates that Add was called without a surface.
	ErrNilSurface = errors.New("scene: surface is nil")

	// ErrNoPose indicates the zero-value Transform was supplied.
	ErrNoPose = errors.New("scene: pose is not set")

	// ErrEntryNotFound indicates an operation referenced an unknown ID.
	ErrEntryNotFound = errors.New("scene: entry not found")

	// ErrDuplicateID indicates the ID source returned an ID already in use.
	ErrDuplicateID = errors.New("scene: duplicate entry id")
)

// Entry is one object in the world: a surface placed by a pose.
type Entry struct {
	// ID uniquely identifies this entry within its Scene.
	ID uuid.UUID

	// Pose places the surface in world space.
	Pose geometry.Transform

	// Surface is the intrinsic shape.
	Surface surface.Surface
}

// Option configures a Scene before use.
type Option func(s *Scene)

// WithIDSource replaces uuid.New as the ID generator. Useful for
// reproducible IDs in tests.
func WithIDSource(next func() uuid.UUID) Option {
	return func(s *Scene) {
		if next != nil {
			s.nextID = next
		}
	}
}

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return func(s *Scene) {
		if n > 0 {
			s.entries = make(map[uuid.UUID]*Entry, n)
			s.order = make([]uuid.UUID, 0, n)
		}
	}
}

// Scene is a thread-safe registry of entries keyed by UUID.
type Scene struct {
	mu sync.RWMutex // guards entries and order

	nextID  func() uuid.UUID
	entries map[uuid.UUID]*Entry
	order   []uuid.UUID // insertion order of live IDs
}

// New creates an empty Scene.
// Complexity: O(1).
func New(opts ...Option) *Scene {
	s := &Scene{
		nextID:  uuid.New,
		entries: make(map[uuid.UUID]*Entry),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add registers surf at pose and returns its new ID.
//
// Errors:
//   - ErrNilSurface, ErrNoPose, ErrDuplicateID.
//
// Complexity: O(1) amortized.
func (s *Scene) Add(pose geometry.Transform, surf surface.Surface) (uuid.UUID, error) {
	if surf == nil {
		return uuid.Nil, ErrNilSurface
	}
	if pose.IsZero() {
		return uuid.Nil, ErrNoPose
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	if _, exists := s.entries[id]; exists {
		return uuid.Nil, fmt.Errorf("%s: %w", id, ErrDuplicateID)
	}
	s.entries[id] = &Entry{ID: id, Pose: pose, Surface: surf}
	s.order = append(s.order, id)

	return id, nil
}

// Get returns a copy of the entry with the given ID.
func (s *Scene) Get(id uuid.UUID) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrEntryNotFound)
	}

	return *e, nil
}

// SetPose moves an existing entry.
func (s *Scene) SetPose(id uuid.UUID, pose geometry.Transform) error {
	if pose.IsZero() {
		return ErrNoPose
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrEntryNotFound)
	}
	e.Pose = pose

	return nil
}

// Update applies fn to the pose of id under the write lock and stores the result.
// If fn fails the entry is left unchanged and the error is returned.
func (s *Scene) Update(id uuid.UUID, fn func(geometry.Transform) (geometry.Transform, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrEntryNotFound)
	}
	next, err := fn(e.Pose)
	if err != nil {
		return err
	}
	if next.IsZero() {
		return ErrNoPose
	}
	e.Pose = next

	return nil
}

// Remove deletes an entry.
// Complexity: O(n) to keep insertion order.
func (s *Scene) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrEntryNotFound)
	}
	delete(s.entries, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Len returns the number of entries.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// IDs returns entry IDs in insertion order.
func (s *Scene) IDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]uuid.UUID, len(s.order))
	copy(out, s.order)

	return out
}

// Snapshot returns a copy of every entry in insertion order. Later changes
// to the scene do not affect the returned slice.
func (s *Scene) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.order))
	for i, id := range s.order {
		out[i] = *s.entries[id]
	}

	return out
}

// Clear removes all entries. Options are preserved.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[uuid.UUID]*Entry)
	s.order = nil
}

// Clone returns an independent Scene with the same entries and ID source.
func (s *Scene) Clone() *Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := &Scene{
		nextID:  s.nextID,
		entries: make(map[uuid.UUID]*Entry, len(s.entries)),
		order:   make([]uuid.UUID, len(s.order)),
	}
	copy(c.order, s.order)
	for id, e := range s.entries {
		cp := *e
		c.entries[id] = &cp
	}

	return c
}
