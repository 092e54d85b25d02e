package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClip(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewClip("Idle", 2, true)
		require.NoError(t, err)
		assert.Equal(t, "Idle", c.String())
		assert.True(t, c.Loop)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewClip("", 1, false)
		assert.True(t, errors.Is(err, ErrInvalidClip))
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := NewClip("Jump", 0, false)
		assert.ErrorIs(t, err, ErrInvalidClip)
	})
}

func TestNilClipString(t *testing.T) {
	var c *Clip
	assert.Equal(t, "<nil>", c.String())
}

func TestLibrary(t *testing.T) {
	lib, err := NewLibrary([]Definition{
		{Key: "idle", Name: "Idle", Duration: 2, Loop: true},
		{Key: "jump", Name: "Forward Jump", Duration: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, "Forward Jump", lib.Get("jump").Name)
	assert.Nil(t, lib.Get("dance"))

	_, err = NewLibrary([]Definition{
		{Key: "idle", Name: "Idle", Duration: 1},
		{Key: "idle", Name: "Idle 2", Duration: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidClip)

	_, err = NewLibrary([]Definition{{Key: "walk", Name: "Walking", Duration: -1}})
	assert.ErrorIs(t, err, ErrInvalidClip)
}

func TestAnimatorLoops(t *testing.T) {
	walk := &Clip{Name: "Walking", Duration: 1, Loop: true}
	a := New(walk)

	a.UpdateAnimation(0.75)
	assert.InDelta(t, 0.75, a.Time(), 1e-6)

	a.UpdateAnimation(0.5)
	assert.InDelta(t, 0.25, a.Time(), 1e-6)
	assert.False(t, a.Finished())
}

func TestAnimatorLoopsHugeDelta(t *testing.T) {
	idle, err := NewClip("idle", 0.5, true)
	require.NoError(t, err)
	a := New(idle)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.UpdateAnimation(1e9)
		a.UpdateAnimation(3e7 + 0.25)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("UpdateAnimation did not return")
	}

	assert.GreaterOrEqual(t, a.Time(), float32(0))
	assert.Less(t, a.Time(), idle.Duration)
	assert.False(t, a.Finished())
}

func TestAnimatorHoldsOneShot(t *testing.T) {
	jump := &Clip{Name: "Forward Jump", Duration: 1}
	a := New(jump)

	a.UpdateAnimation(0.6)
	assert.False(t, a.Finished())
	a.UpdateAnimation(0.6)
	assert.True(t, a.Finished())
	assert.InDelta(t, 1.0, a.Time(), 1e-6)
	assert.InDelta(t, 1.0, a.Progress(), 1e-6)
}

func TestPlayAnimationRewinds(t *testing.T) {
	idle := &Clip{Name: "Idle", Duration: 2, Loop: true}
	turn := &Clip{Name: "Left Turn", Duration: 0.5}
	a := New(idle)

	a.UpdateAnimation(1.2)
	a.PlayAnimation(turn)

	assert.Same(t, turn, a.Current())
	assert.Zero(t, a.Time())
	assert.Equal(t, 1, a.Switches())
}

func TestUpdateIgnoresNegativeDelta(t *testing.T) {
	a := New(&Clip{Name: "Idle", Duration: 1, Loop: true})
	a.UpdateAnimation(0.4)
	a.UpdateAnimation(-1)
	assert.InDelta(t, 0.4, a.Time(), 1e-6)
}
