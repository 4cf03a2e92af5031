// Package loop drives a game at a fixed tick rate.
// Each frame polls input, dispatches it, draws and presents the current state,
// then advances the simulation by one tick until the game reports completion.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// DefaultTickRate is the frame rate used when none is given.
const DefaultTickRate = 60

// Source supplies the input events gathered since the previous poll.
type Source interface {
	Poll(now time.Time) []core.Event
}

// Game is the part of a game the loop needs.
type Game interface {
	HandleEvent(ev core.Event)
	Draw(dst core.Surface)
	Update(now time.Time)
	Complete() bool
}

// Controller owns a game for the length of one run.
type Controller struct {
	game     Game
	src      Source
	dst      core.Surface
	interval time.Duration
	now      func() time.Time
	logger   *log.Logger

	frames   uint64
	finished bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTickRate sets the number of frames per second. Non-positive rates are ignored.
func WithTickRate(hz int) Option {
	return func(c *Controller) {
		if hz > 0 {
			c.interval = time.Second / time.Duration(hz)
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now as the frame timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a controller that plays game, reading from src and drawing to dst.
func New(game Game, src Source, dst core.Surface, opts ...Option) *Controller {
	c := &Controller{
		game:     game,
		src:      src,
		dst:      dst,
		interval: time.Second / DefaultTickRate,
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interval returns the time between frames.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Frames returns how many frames have been presented.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Frame runs one frame at time now. It reports quit when a Quit event was
// seen; the rest of that batch is dropped and nothing is drawn. A Present
// failure is returned as an error and ends the run.
func (c *Controller) Frame(now time.Time) (quit bool, err error) {
	for _, ev := range c.src.Poll(now) {
		if ev.Kind == core.EventQuit {
			c.logger.Debug("quit requested", "frame", c.frames)
			return true, nil
		}
		c.game.HandleEvent(ev)
	}

	c.game.Draw(c.dst)
	if err := c.dst.Present(); err != nil {
		return false, fmt.Errorf("loop: present frame %d: %w", c.frames, err)
	}
	c.frames++

	// Once complete, the final frame keeps being shown but nothing advances.
	if !c.game.Complete() {
		c.game.Update(now)
		if c.game.Complete() && !c.finished {
			c.finished = true
			c.logger.Info("game complete", "frame", c.frames)
		}
	}
	return false, nil
}

// Run plays frames until Quit, ctx cancellation or a render error.
// Quit and cancellation both end the run cleanly with a nil error.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Debug("loop started", "interval", c.interval)
	for {
		quit, err := c.Frame(c.now())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		select {
		case <-ctx.Done():
			c.logger.Debug("loop cancelled", "frames", c.frames)
			return nil
		case <-ticker.C:
		}
	}
}
