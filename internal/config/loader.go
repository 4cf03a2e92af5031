package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadWindow parses the embedded window defaults.
func LoadWindow() (WindowConfig, error) {
	return load("window", defaultWindowYAML, DefaultWindowConfig(), validateWindow)
}

// LoadMemory parses the embedded Memory defaults.
func LoadMemory() (MemoryConfig, error) {
	return load("memory", defaultMemoryYAML, DefaultMemoryConfig(), validateMemory)
}

// LoadPong parses the embedded Pong defaults.
func LoadPong() (PongConfig, error) {
	return load("pong", defaultPongYAML, DefaultPongConfig(), validatePong)
}

// load decodes data strictly into T. On any failure it returns the hardcoded
// fallback together with the error, so callers can log and keep going.
func load[T any](name string, data []byte, fallback T, validate func(T) error) (T, error) {
	var cfg T

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return fallback, fmt.Errorf("config: failed to parse %s defaults: %w", name, err)
	}
	if err := validate(cfg); err != nil {
		return fallback, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func validateWindow(c WindowConfig) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.TickRate)
	}
	return nil
}

func validateMemory(c MemoryConfig) error {
	b := c.Board
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, b.Rows, b.Cols)
	}
	// Every face appears exactly twice, so the board needs an even tile count.
	if b.Tiles()%2 != 0 {
		return fmt.Errorf("%w: board %dx%d has an odd tile count", ErrInvalid, b.Rows, b.Cols)
	}
	if b.ReservedCols < 0 || b.TileBorder < 0 {
		return fmt.Errorf("%w: negative layout value", ErrInvalid)
	}
	if c.MismatchPauseMS < 0 {
		return fmt.Errorf("%w: mismatch_pause_ms %d", ErrInvalid, c.MismatchPauseMS)
	}
	return nil
}

func validatePong(c PongConfig) error {
	p := c.Paddle
	if p.Width <= 0 || p.Height <= 0 || p.Step <= 0 {
		return fmt.Errorf("%w: paddle %dx%d step %d", ErrInvalid, p.Width, p.Height, p.Step)
	}
	if p.LeftX >= p.RightX {
		return fmt.Errorf("%w: left paddle x %d must be left of right paddle x %d", ErrInvalid, p.LeftX, p.RightX)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("%w: ball radius %v", ErrInvalid, c.Ball.Radius)
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("%w: win_score %d", ErrInvalid, c.WinScore)
	}
	return nil
}
