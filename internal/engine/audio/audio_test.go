package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestVolumeEffect(t *testing.T) {
	full := volume(nil, 1)
	assert.InDelta(t, 0, full.Volume, 1e-9)
	assert.False(t, full.Silent)

	half := volume(nil, 0.5)
	assert.InDelta(t, -1, half.Volume, 1e-9, "half gain is one power of two down")

	assert.True(t, volume(nil, 0).Silent)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	require.NotNil(t, m)

	assert.Equal(t, 1.0, m.GetMasterVolume())
	assert.Equal(t, 1.0, m.GetSFXVolume())
	assert.False(t, m.IsInitialized())
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	assert.Equal(t, 0.5, m.GetMasterVolume())

	m.SetMasterVolume(2.0)
	assert.Equal(t, 1.0, m.GetMasterVolume(), "clamped high")

	m.SetMasterVolume(-1.0)
	assert.Equal(t, 0.0, m.GetMasterVolume(), "clamped low")

	m.SetMasterVolume(0.5)
	m.SetSFXVolume(0.5)
	assert.InDelta(t, 0.25, m.effectiveVolume(), 1e-9)

	m.SetMuted(true)
	assert.Zero(t, m.effectiveVolume())
}

// ramp emits n mono samples rising from -1 to 1.
type ramp struct {
	n, pos int
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	if r.pos >= r.n {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && r.pos < r.n; i++ {
		v := -1 + 2*float64(r.pos)/float64(r.n)
		samples[i] = [2]float64{v, v}
		r.pos++
	}
	return i, true
}

func (r *ramp) Err() error { return nil }

func writeWAV(t *testing.T, dir string, n int, rate beep.SampleRate) string {
	t.Helper()
	path := filepath.Join(dir, "cue.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, &ramp{n: n}, format))
	return path
}

func TestLoadCue(t *testing.T) {
	path := writeWAV(t, t.TempDir(), 2205, DefaultSampleRate)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	buf, err := decodeCue(data, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, 2205, buf.Len())

	m := New()
	require.NoError(t, m.LoadCue("jumping", data))
	assert.True(t, m.HasCue("jumping"))
	assert.False(t, m.HasCue("dancing"))
}

func TestLoadCueResamples(t *testing.T) {
	path := writeWAV(t, t.TempDir(), 2205, 22050)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	buf, err := decodeCue(data, DefaultSampleRate)
	require.NoError(t, err)
	assert.Equal(t, DefaultSampleRate, buf.Format().SampleRate)
	assert.InDelta(t, 4410, buf.Len(), 50)
}

func TestLoadCueRejectsGarbage(t *testing.T) {
	m := New()
	assert.Error(t, m.LoadCue("idle", []byte("not a wav file")))
	assert.False(t, m.HasCue("idle"))
}

func TestLoadCues(t *testing.T) {
	dir := t.TempDir()
	path := writeWAV(t, dir, 100, DefaultSampleRate)

	m := New()
	require.NoError(t, m.LoadCues(map[string]string{"walking": path}))
	assert.True(t, m.HasCue("walking"))

	err := m.LoadCues(map[string]string{"dancing": filepath.Join(dir, "missing.wav")})
	assert.Error(t, err)
	assert.False(t, m.HasCue("dancing"))
}

func TestPlayCueBeforeInit(t *testing.T) {
	m := New()
	assert.ErrorIs(t, m.PlayCue("idle"), ErrNotInitialized)
}
