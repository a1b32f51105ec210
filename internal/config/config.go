// Package config handles demo configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	Fullscreen   bool       `yaml:"fullscreen"`
	VSync        bool       `yaml:"vsync"`
	ReverseDepth bool       `yaml:"reverse_depth"`
	CullFaces    bool       `yaml:"cull_faces"`
	ClearColor   [4]float32 `yaml:"clear_color,flow"`
}

// SceneConfig holds what is drawn and how it moves.
type SceneConfig struct {
	Mesh           string       `yaml:"mesh"`            // "cube" or "shape"
	VertexShader   string       `yaml:"vertex_shader"`   // empty selects the built-in shader
	FragmentShader string       `yaml:"fragment_shader"` // empty selects the built-in shader
	SwingAmplitude float32      `yaml:"swing_amplitude"` // radians
	SwingFrequency float32      `yaml:"swing_frequency"` // radians per second
	SpinSpeed      float32      `yaml:"spin_speed"`      // radians per second around Y
	Camera         CameraConfig `yaml:"camera"`
}

// CameraConfig holds the fixed camera constants.
type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye,flow"`
	Target [3]float32 `yaml:"target,flow"`
	FOV    float32    `yaml:"fov"` // vertical, degrees
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
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
			Width:        1280,
			Height:       720,
			Fullscreen:   false,
			VSync:        true,
			ReverseDepth: false,
			CullFaces:    true,
			ClearColor:   [4]float32{0.1, 0.1, 0.15, 1.0},
		},
		Scene: SceneConfig{
			Mesh:           "cube",
			SwingAmplitude: 0.6,
			SwingFrequency: 3.0,
			SpinSpeed:      0.4,
			Camera: CameraConfig{
				Eye:    [3]float32{0, 1.5, 7},
				Target: [3]float32{0, 0, 0},
				FOV:    45,
				Near:   0.1,
				Far:    100,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
