package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"termpong/internal/geom"
	"termpong/internal/pong"
)

var Config Configuration

type Configuration struct {
	LogLevel int    `json:"logLevel"`
	// The terminal is in use while playing, so logs go to a file.
	LogPath  string `json:"logPath"`

	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	FPS    int     `json:"fps"`

	Seed        uint64 `json:"seed"`
	WallMode    string `json:"wallMode"`
	ResetPolicy string `json:"resetPolicy"`
	Motion      string `json:"motion"`

	// Fixed serve velocity, random when empty.
	Serve []float32 `json:"serve,omitempty"`

	// First player to reach WinScore ends the match. 0 plays forever.
	WinScore   int    `json:"winScore"`
	ReplayPath string `json:"replayPath"`
}

func Default() Configuration {
	return Configuration{
		LogLevel: int(slog.LevelInfo),
		LogPath:  "termpong.log",
		Width:    800,
		Height:   600,
		FPS:      60,
	}
}

// LoadConfig reads path (config.json when empty) into Config. Any problem
// is logged and the defaults are used instead.
func LoadConfig(path string) {
	if path == "" {
		path = "config.json"
	}

	c, err := Load(path)
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		c = Default()
	}

	Config = c
}

// Load reads a JSON configuration on top of Default.
func Load(path string) (Configuration, error) {
	c := Default()

	cf, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(cf, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, err := c.Rules(); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	if c.FPS <= 0 {
		return c, fmt.Errorf("parsing %s: fps must be positive, got %d", path, c.FPS)
	}
	if c.Width <= 0 || c.Height < pong.PaddleHeight {
		return c, fmt.Errorf("parsing %s: playfield %vx%v is too small", path, c.Width, c.Height)
	}

	return c, nil
}

func (c Configuration) Field() pong.Size {
	return pong.Size{Width: c.Width, Height: c.Height}
}

func (c Configuration) Rules() (pong.Rules, error) {
	var r pong.Rules
	var err error

	if r.Walls, err = pong.ParseWallMode(c.WallMode); err != nil {
		return r, err
	}
	if r.Reset, err = pong.ParseResetPolicy(c.ResetPolicy); err != nil {
		return r, err
	}
	if r.Motion, err = pong.ParseMotion(c.Motion); err != nil {
		return r, err
	}

	switch len(c.Serve) {
	case 0:
	case 2:
		r.Serve = &geom.Vector{X: c.Serve[0], Y: c.Serve[1]}
	default:
		return r, fmt.Errorf("serve needs 2 components, got %d", len(c.Serve))
	}

	return r, nil
}
