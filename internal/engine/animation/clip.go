// Package animation provides clip handles and a time-advancing animator.
package animation

import (
	"errors"
	"fmt"
)

// ErrInvalidClip is returned when a clip definition cannot be played.
var ErrInvalidClip = errors.New("invalid clip")

// Clip is a named animation sequence. Clips are created once at startup and
// handed out by pointer; pointer identity is what distinguishes clips.
type Clip struct {
	Name     string
	Duration float32 // Length in seconds
	Loop     bool    // Wrap to the start instead of holding the last pose
}

// NewClip creates a clip handle, rejecting empty names and non-positive durations.
func NewClip(name string, duration float32, loop bool) (*Clip, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidClip)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %q has duration %v", ErrInvalidClip, name, duration)
	}
	return &Clip{Name: name, Duration: duration, Loop: loop}, nil
}

// String returns the clip name.
func (c *Clip) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// Definition describes a clip before it is loaded.
type Definition struct {
	Key      string // Lookup key, e.g. "walk"
	Name     string
	Duration float32
	Loop     bool
}

// Library owns a fixed set of clips keyed by name.
type Library struct {
	clips map[string]*Clip
}

// NewLibrary builds every clip in defs. Duplicate keys are an error.
func NewLibrary(defs []Definition) (*Library, error) {
	lib := &Library{clips: make(map[string]*Clip, len(defs))}
	for _, def := range defs {
		if _, dup := lib.clips[def.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidClip, def.Key)
		}
		clip, err := NewClip(def.Name, def.Duration, def.Loop)
		if err != nil {
			return nil, fmt.Errorf("clip %q: %w", def.Key, err)
		}
		lib.clips[def.Key] = clip
	}
	return lib, nil
}

// Get returns the clip stored under key, or nil.
func (l *Library) Get(key string) *Clip {
	return l.clips[key]
}

// Len returns the number of clips in the library.
func (l *Library) Len() int {
	return len(l.clips)
}
