// Package config loads the fireball settings file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	stdmath "math"
	"os"

	"fireball/controls"
	"fireball/core"
	"fireball/math"
)

type Settings struct {
	Window   WindowSettings  `json:"window"`
	Camera   CameraSettings  `json:"camera"`
	Render   RenderSettings  `json:"render"`
	Controls controls.Params `json:"controls"`
	Panel    PanelSettings   `json:"panel"`
}

type WindowSettings struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	VSync     bool   `json:"vsync"`
	Resizable bool   `json:"resizable"`
}

type CameraSettings struct {
	Position [3]float32 `json:"position"`
	Target   [3]float32 `json:"target"`
	Up       [3]float32 `json:"up"`
	FOVY     float32    `json:"fovY"` // degrees
	Near     float32    `json:"near"`
	Far      float32    `json:"far"`
}

type RenderSettings struct {
	ClearColor [4]float32 `json:"clearColor"`
	// TimeStep is added to the shader clock once per tick.
	TimeStep float32 `json:"timeStep"`
}

type PanelSettings struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:     1280,
			Height:    720,
			Title:     "Fireball",
			VSync:     true,
			Resizable: true,
		},
		Camera: CameraSettings{
			Position: [3]float32{0, 0, 5},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
			FOVY:     45,
			Near:     0.1,
			Far:      1000,
		},
		Render: RenderSettings{
			ClearColor: [4]float32{0.2, 0.2, 0.2, 1},
			TimeStep:   0.01,
		},
		Controls: controls.DefaultParams(),
		Panel: PanelSettings{
			Enabled: true,
			Addr:    "127.0.0.1:8090",
		},
	}
}

// Load overlays the JSON file at path onto Default. A missing file is not
// an error.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("Loaded settings: tessellation level %d, window %dx%d\n",
		settings.Controls.Tesselations, settings.Window.Width, settings.Window.Height)
	return settings, nil
}

// Validate clamps the initial controls into range and rejects settings the
// renderer cannot start with.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("camera clip planes near=%v far=%v are invalid", s.Camera.Near, s.Camera.Far)
	}
	if s.Camera.FOVY <= 0 || s.Camera.FOVY >= 180 {
		return fmt.Errorf("camera fovY %v must be between 0 and 180 degrees", s.Camera.FOVY)
	}
	if s.Render.TimeStep <= 0 {
		return fmt.Errorf("render timeStep %v must be positive", s.Render.TimeStep)
	}
	s.Controls.Clamp()
	return nil
}

func (c CameraSettings) PositionVec() math.Vec3 {
	return math.NewVec3(c.Position[0], c.Position[1], c.Position[2])
}

func (c CameraSettings) TargetVec() math.Vec3 {
	return math.NewVec3(c.Target[0], c.Target[1], c.Target[2])
}

func (c CameraSettings) UpVec() math.Vec3 {
	return math.NewVec3(c.Up[0], c.Up[1], c.Up[2])
}

// FOVRadians returns the vertical field of view in radians.
func (c CameraSettings) FOVRadians() float32 {
	return float32(float64(c.FOVY) * stdmath.Pi / 180)
}

func (r RenderSettings) Clear() core.Color {
	return core.Color{R: r.ClearColor[0], G: r.ClearColor[1], B: r.ClearColor[2], A: r.ClearColor[3]}
}
