package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// decodeCue decodes WAV data into an in-memory buffer at the given rate so
// a cue can be replayed without decoding again.
func decodeCue(data []byte, rate beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
		format.SampleRate = rate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return buf, nil
}

// LoadCue registers WAV data under name, replacing any previous cue.
func (m *Manager) LoadCue(name string, data []byte) error {
	buf, err := decodeCue(data, m.sampleRate)
	if err != nil {
		return fmt.Errorf("cue %q: %w", name, err)
	}

	m.mu.Lock()
	m.cues[name] = buf
	m.mu.Unlock()
	return nil
}

// LoadCues reads every name -> path entry from disk. It stops at the first
// file that cannot be read or decoded.
func (m *Manager) LoadCues(paths map[string]string) error {
	for name, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cue %q: %w", name, err)
		}
		if err := m.LoadCue(name, data); err != nil {
			return err
		}
	}
	return nil
}

// HasCue reports whether a cue is registered under name.
func (m *Manager) HasCue(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cues[name]
	return ok
}

// PlayCue starts the cue registered under name. A name with no cue is a
// no-op; cues overlap freely.
func (m *Manager) PlayCue(name string) error {
	m.mu.RLock()
	initialized := m.initialized
	buf := m.cues[name]
	gain := m.effectiveVolume()
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if buf == nil || gain <= 0 {
		return nil
	}

	speaker.Lock()
	m.mixer.Add(volume(buf.Streamer(0, buf.Len()), gain))
	speaker.Unlock()
	return nil
}
