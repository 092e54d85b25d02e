// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Controller ControllerConfig `yaml:"controller"`
	Keys       KeysConfig       `yaml:"keys"`
	Clips      ClipsConfig      `yaml:"clips"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ControllerConfig holds the character controller tuning.
type ControllerConfig struct {
	MoveSpeed     float32    `yaml:"move_speed"`     // World units per second
	TurnDuration  float32    `yaml:"turn_duration"`  // Seconds per turn
	TurnAngleDeg  float32    `yaml:"turn_angle_deg"` // Degrees per turn
	JumpDuration  float32    `yaml:"jump_duration"`  // Seconds before a jump ends
	ModelScale    float32    `yaml:"model_scale"`
	StartPosition [3]float32 `yaml:"start_position"`
}

// KeysConfig binds actions to SDL key names ("W", "Space", "Escape", ...).
type KeysConfig struct {
	Forward   string `yaml:"forward"`
	TurnLeft  string `yaml:"turn_left"`
	TurnRight string `yaml:"turn_right"`
	Jump      string `yaml:"jump"`
	Dance     string `yaml:"dance"`
	Quit      string `yaml:"quit"`
}

// ClipConfig describes one animation clip.
type ClipConfig struct {
	Name     string  `yaml:"name"`
	Duration float32 `yaml:"duration"` // Seconds
	Loop     bool    `yaml:"loop"`
}

// ClipsConfig assigns a clip to every character state.
type ClipsConfig struct {
	Idle         ClipConfig `yaml:"idle"`
	Walking      ClipConfig `yaml:"walking"`
	TurningLeft  ClipConfig `yaml:"turning_left"`
	TurningRight ClipConfig `yaml:"turning_right"`
	Jumping      ClipConfig `yaml:"jumping"`
	Dancing      ClipConfig `yaml:"dancing"`
}

// ByState returns the clips keyed by state name.
func (c ClipsConfig) ByState() map[string]ClipConfig {
	return map[string]ClipConfig{
		"idle":          c.Idle,
		"walking":       c.Walking,
		"turning_left":  c.TurningLeft,
		"turning_right": c.TurningRight,
		"jumping":       c.Jumping,
		"dancing":       c.Dancing,
	}
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64           `yaml:"master_volume"`
	SFXVolume    float64           `yaml:"sfx_volume"`
	Muted        bool              `yaml:"muted"`
	Cues         map[string]string `yaml:"cues"` // State name -> WAV path played on entry
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1000,
			Height:     700,
			Fullscreen: false,
			VSync:      true,
		},
		Controller: ControllerConfig{
			MoveSpeed:     2.0,
			TurnDuration:  0.5,
			TurnAngleDeg:  90,
			JumpDuration:  1.0,
			ModelScale:    0.5,
			StartPosition: [3]float32{0, -0.5, 0},
		},
		Keys: KeysConfig{
			Forward:   "W",
			TurnLeft:  "A",
			TurnRight: "D",
			Jump:      "Space",
			Dance:     "1",
			Quit:      "Escape",
		},
		Clips: ClipsConfig{
			Idle:         ClipConfig{Name: "Idle", Duration: 2.0, Loop: true},
			Walking:      ClipConfig{Name: "Walking", Duration: 1.1, Loop: true},
			TurningLeft:  ClipConfig{Name: "Left Turn", Duration: 0.5},
			TurningRight: ClipConfig{Name: "Right Turn", Duration: 0.5},
			Jumping:      ClipConfig{Name: "Forward Jump", Duration: 1.0},
			Dancing:      ClipConfig{Name: "Rumba Dancing", Duration: 4.0, Loop: true},
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
