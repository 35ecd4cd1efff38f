// Package scene is the small scene graph behind the declarative render mode: a camera, the
// points object and per-frame hooks.
package scene

import (
	"slices"
	"time"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
)

type FrameState struct {
	Elapsed time.Duration
	Delta   time.Duration
	Input   models.Input
	Camera  *Camera
	Points  *Object
}

type FrameHook func(FrameState)

type Scene struct {
	Camera *Camera
	Points *Object

	hooks    []hookEntry
	nextID   int
	disposed bool
}

type hookEntry struct {
	id int
	fn FrameHook
}

func New(cam *Camera) *Scene {
	return &Scene{Camera: cam, Points: &Object{}}
}

// UseFrame registers fn to run on every Advance, in registration order. The returned
// function unregisters it and may be called any number of times.
func (s *Scene) UseFrame(fn FrameHook) (remove func()) {
	if s.disposed {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.hooks = append(s.hooks, hookEntry{id: id, fn: fn})
	return func() {
		for i, h := range s.hooks {
			if h.id == id {
				s.hooks = slices.Delete(slices.Clone(s.hooks), i, i+1)
				return
			}
		}
	}
}

func (s *Scene) Advance(elapsed, delta time.Duration, in models.Input) {
	if s.disposed {
		return
	}
	state := FrameState{
		Elapsed: elapsed,
		Delta:   delta,
		Input:   in,
		Camera:  s.Camera,
		Points:  s.Points,
	}
	// Hooks may register or remove hooks while running; those changes apply next frame.
	for _, h := range slices.Clone(s.hooks) {
		h.fn(state)
	}
}

func (s *Scene) HookCount() int {
	return len(s.hooks)
}

// Dispose drops every hook. Later calls do nothing.
func (s *Scene) Dispose() {
	s.disposed = true
	s.hooks = nil
}

func (s *Scene) Disposed() bool {
	return s.disposed
}
