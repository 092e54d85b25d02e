// Package replay drives a character from a scripted key sequence without a
// window, producing one snapshot per frame.
package replay

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/locomotion/internal/locomotion"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("invalid script")

// Step holds a set of keys for Repeat consecutive frames of DT seconds each.
type Step struct {
	DT     float32  `yaml:"dt"`
	Keys   []string `yaml:"keys"`
	Repeat int      `yaml:"repeat"` // 0 means once
}

// Script is a sequence of steps.
type Script struct {
	Frames []Step `yaml:"frames"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every step's dt, repeat count and key names.
func (s *Script) Validate() error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidScript)
	}
	for i, st := range s.Frames {
		if st.DT < 0 || math.IsNaN(float64(st.DT)) || math.IsInf(float64(st.DT), 0) {
			return fmt.Errorf("%w: frame %d: dt %v", ErrInvalidScript, i, st.DT)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("%w: frame %d: repeat %d", ErrInvalidScript, i, st.Repeat)
		}
		if _, err := ParseKeys(st.Keys); err != nil {
			return fmt.Errorf("%w: frame %d: %v", ErrInvalidScript, i, err)
		}
	}
	return nil
}

// Len returns the number of frames the script expands to.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Frames {
		n += st.count()
	}
	return n
}

func (st Step) count() int {
	if st.Repeat <= 0 {
		return 1
	}
	return st.Repeat
}

// ParseKeys turns key names into a key level set. Names match the
// keys section of the config file.
func ParseKeys(names []string) (locomotion.Keys, error) {
	var k locomotion.Keys
	for _, name := range names {
		switch name {
		case "forward":
			k.Forward = true
		case "turn_left":
			k.TurnLeft = true
		case "turn_right":
			k.TurnRight = true
		case "jump":
			k.Jump = true
		case "dance":
			k.Dance = true
		default:
			return locomotion.Keys{}, fmt.Errorf("unknown key %q", name)
		}
	}
	return k, nil
}
