// SPDX-License-Identifier: MIT

// Package config loads and saves the renderer settings as YAML.
//
// File layout (all keys required):
//
//	screen_width: 300
//	screen_height: 200
//	target_fps: 30
//	camera_fov: 1.3089969389957472   # horizontal FOV, radians
//	camera_draw_distance: 100
//
// Load rejects files with missing keys or invalid values; Save writes every key.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultScreenWidth        = 300
	DefaultScreenHeight       = 200
	DefaultTargetFPS          = 30
	DefaultCameraFOV          = 75 * math.Pi / 180
	DefaultCameraDrawDistance = 100.0
)

// MaxTargetFPS bounds target_fps so the frame period stays a positive duration.
const MaxTargetFPS = 1000

// Config holds the settings consumed by the camera and the frame loop.
type Config struct {
	ScreenWidth        int     `yaml:"screen_width"`
	ScreenHeight       int     `yaml:"screen_height"`
	TargetFPS          int     `yaml:"target_fps"`
	CameraFOV          float64 `yaml:"camera_fov"`
	CameraDrawDistance float64 `yaml:"camera_draw_distance"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ScreenWidth:        DefaultScreenWidth,
		ScreenHeight:       DefaultScreenHeight,
		TargetFPS:          DefaultTargetFPS,
		CameraFOV:          DefaultCameraFOV,
		CameraDrawDistance: DefaultCameraDrawDistance,
	}
}

// AspectRatio returns width / height.
func (c Config) AspectRatio() float64 {
	return float64(c.ScreenWidth) / float64(c.ScreenHeight)
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%dx%d: %w", c.ScreenWidth, c.ScreenHeight, ErrBadScreenSize)
	}
	if c.TargetFPS <= 0 || c.TargetFPS > MaxTargetFPS {
		return fmt.Errorf("%d: %w", c.TargetFPS, ErrBadFPS)
	}
	// camera.VerticalFOV turns negative past π
	if !(c.CameraFOV > 0 && c.CameraFOV < math.Pi) {
		return fmt.Errorf("%g: %w", c.CameraFOV, ErrBadFOV)
	}
	if !(c.CameraDrawDistance > 0) || math.IsInf(c.CameraDrawDistance, 1) {
		return fmt.Errorf("%g: %w", c.CameraDrawDistance, ErrBadDrawDistance)
	}

	return nil
}

// fileConfig mirrors Config with pointer fields so absent keys can be told
// apart from zero values.
type fileConfig struct {
	ScreenWidth        *int     `yaml:"screen_width"`
	ScreenHeight       *int     `yaml:"screen_height"`
	TargetFPS          *int     `yaml:"target_fps"`
	CameraFOV          *float64 `yaml:"camera_fov"`
	CameraDrawDistance *float64 `yaml:"camera_draw_distance"`
}

// Parse decodes YAML bytes into a validated Config.
// Errors: ErrMissingKey, a yaml decode error, or any Validate error.
func Parse(data []byte) (Config, error) {
	var raw fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	missing := func(key string) error { return fmt.Errorf("%q: %w", key, ErrMissingKey) }
	switch {
	case raw.ScreenWidth == nil:
		return Config{}, missing("screen_width")
	case raw.ScreenHeight == nil:
		return Config{}, missing("screen_height")
	case raw.TargetFPS == nil:
		return Config{}, missing("target_fps")
	case raw.CameraFOV == nil:
		return Config{}, missing("camera_fov")
	case raw.CameraDrawDistance == nil:
		return Config{}, missing("camera_draw_distance")
	}

	cfg := Config{
		ScreenWidth:        *raw.ScreenWidth,
		ScreenHeight:       *raw.ScreenHeight,
		TargetFPS:          *raw.TargetFPS,
		CameraFOV:          *raw.CameraFOV,
		CameraDrawDistance: *raw.CameraDrawDistance,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML. Invalid settings are refused.
func Marshal(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return yaml.Marshal(cfg)
}

// Save writes cfg to path with mode 0o644, replacing any existing file.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}

	return nil
}
