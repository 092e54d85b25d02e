// Package game implements the main frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/locomotion/internal/config"
	"github.com/Faultbox/locomotion/internal/engine/audio"
	"github.com/Faultbox/locomotion/internal/engine/character"
	"github.com/Faultbox/locomotion/internal/engine/input"
	"github.com/Faultbox/locomotion/internal/engine/renderer"
	"github.com/Faultbox/locomotion/internal/engine/window"
	"github.com/Faultbox/locomotion/internal/locomotion"
	"github.com/Faultbox/locomotion/internal/logger"
)

// Title is the window title.
const Title = "Locomotion"

// maxFrameDelta caps dt in seconds after a stall (window drag, breakpoint).
const maxFrameDelta = 0.25

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings
	audio    *audio.Manager
	player   *character.Character
	watcher  *config.Watcher
	log      *zap.Logger
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{config: cfg, log: log, audio: audio.New()}

	var err error
	g.bindings, err = input.NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	g.player, err = character.New(cfg, locomotion.WithTransitionObserver(g.onTransition))
	if err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(Title, cfg.Graphics)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		GridExtent: 10,
		GridY:      cfg.Controller.StartPosition[1],
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.initAudio(cfg.Audio)

	if config.WatchEnabled() {
		g.startWatcher()
	}

	log.Info("game initialized successfully")
	return g, nil
}

// startWatcher leaves g.watcher nil when there is no file to watch.
func (g *Game) startWatcher() {
	path := config.Path()
	if path == "" {
		g.log.Warn("config watch disabled: no config file")
		return
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		g.log.Warn("config watch disabled", zap.Error(err))
		return
	}
	g.watcher = w
	g.log.Info("watching config", zap.String("path", w.Path()))
}

// initAudio leaves the manager uninitialized when there are no cues or the
// speaker cannot start; cues are then skipped.
func (g *Game) initAudio(cfg config.AudioConfig) {
	g.applyAudio(cfg)
	if len(cfg.Cues) == 0 {
		return
	}

	if err := g.audio.LoadCues(cfg.Cues); err != nil {
		g.log.Warn("audio cues not loaded", zap.Error(err))
		return
	}
	if err := g.audio.Init(); err != nil {
		g.log.Warn("audio disabled", zap.Error(err))
		return
	}
	g.log.Info("audio ready",
		zap.Int("cues", len(cfg.Cues)),
		zap.Float64("master_volume", g.audio.GetMasterVolume()),
		zap.Float64("sfx_volume", g.audio.GetSFXVolume()),
	)
}

func (g *Game) applyAudio(cfg config.AudioConfig) {
	g.audio.SetMasterVolume(cfg.MasterVolume)
	g.audio.SetSFXVolume(cfg.SFXVolume)
	g.audio.SetMuted(cfg.Muted)
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}

		if g.input.IsKeyPressed(g.bindings.Quit) {
			g.running = false
			break
		}

		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(g.window.DrawableSize())
			}
		}
		}

		// 2. Apply config changes between frames
		g.pollConfig()

		// 3. Update character
		g.player.Update(float32(dt), g.input.Sample(g.bindings))

		// 4. Render
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Stringer("state", g.player.State()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// pollConfig applies at most one pending reload without blocking.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}

	select {
	case cfg, ok := <-g.watcher.Changes:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.player.ApplyConfig(cfg.Controller); err != nil {
			g.log.Warn("reloaded tuning rejected", zap.Error(err))
			return
		}
		g.applyAudio(cfg.Audio)
		g.log.Info("config reloaded",
			zap.Float32("move_speed", cfg.Controller.MoveSpeed),
			zap.Float32("turn_duration", cfg.Controller.TurnDuration),
			zap.Float32("jump_duration", cfg.Controller.JumpDuration),
		)
	case err, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
			return
		}
		g.log.Warn("config reload failed", zap.Error(err))
	default:
	}
}

// onTransition logs every state change and plays its cue.
func (g *Game) onTransition(from, to locomotion.State) {
	g.log.Debug("state",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	if !g.audio.IsInitialized() {
		return
	}
	if err := g.audio.PlayCue(to.String()); err != nil {
		g.log.Warn("cue failed", zap.Stringer("state", to), zap.Error(err))
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("closing config watcher", zap.Error(err))
		}
	}
	g.audio.Close()
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) render() {
	g.renderer.Begin()
	g.renderer.DrawMarker(g.player.ModelMatrix(), renderer.TintFor(g.player.State()))
	g.renderer.End()
}
