package locomotion

import (
	"errors"
	"fmt"

	"github.com/Faultbox/locomotion/internal/engine/animation"
)

// ErrMissingClip is returned when a state has no clip assigned.
var ErrMissingClip = errors.New("missing clip")

// ClipSet maps every state to the clip played while in it.
type ClipSet struct {
	clips [stateCount]*animation.Clip
}

// NewClipSet builds a ClipSet. Every state must have a non-nil clip.
func NewClipSet(byState map[State]*animation.Clip) (ClipSet, error) {
	var set ClipSet
	for _, s := range States() {
		clip := byState[s]
		if clip == nil {
			return ClipSet{}, fmt.Errorf("%w: %s", ErrMissingClip, s)
		}
		set.clips[s] = clip
	}
	return set, nil
}

// ClipSetFromLibrary looks up each state's clip under its state name.
func ClipSetFromLibrary(lib *animation.Library) (ClipSet, error) {
	byState := make(map[State]*animation.Clip, stateCount)
	for _, s := range States() {
		byState[s] = lib.Get(s.String())
	}
	return NewClipSet(byState)
}

// For returns the clip for state s.
func (c ClipSet) For(s State) *animation.Clip {
	return c.clips[s]
}
