package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/ballpit/internal/world"
)

// Loop drives a world one frame per tick and fans the result out to
// metrics and observers.
type Loop struct {
	world     *world.World
	renderer  world.Renderer
	logger    *log.Logger
	metrics   []Metric
	observers []Observer
}

type Option func(*Loop)

func WithRenderer(r world.Renderer) Option { return func(l *Loop) { l.renderer = r } }
func WithLogger(lg *log.Logger) Option     { return func(l *Loop) { l.logger = lg } }

func New(w *world.World, opts ...Option) *Loop {
	l := &Loop{
		world:     w,
		logger:    log.New(io.Discard),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) World() *world.World { return l.world }

// Renderer is the renderer frames are drawn with, or nil when headless.
func (l *Loop) Renderer() world.Renderer { return l.renderer }

// Step runs exactly one frame.
func (l *Loop) Step() world.FrameStats {
	if len(l.metrics) == 0 && len(l.observers) == 0 {
		return l.world.Frame(l.renderer)
	}
	stats, _ := l.step()
	return stats
}

func (l *Loop) step() (world.FrameStats, world.Snapshot) {
	stats, snap := l.world.FrameSnapshot(l.renderer)
	for _, m := range l.metrics {
		m.Observe(snap, stats)
	}
	for _, o := range l.observers {
		o.OnFrame(snap, stats)
	}
	return stats, snap
}

// Configure applies a scene between frames. A degenerate ground is logged
// and not returned; the bodies are still spawned.
func (l *Loop) Configure(s world.Scene) {
	err := l.world.Configure(s)
	if err != nil {
		l.logger.Warn("ground disabled", "angle", s.AngleDeg, "err", err)
	}
	l.logger.Debug("scene configured", "count", s.Count, "color", s.Color, "angle", s.AngleDeg)
}

func (l *Loop) Resize(width, height float64) error {
	if err := l.world.Resize(width, height); err != nil {
		return err
	}
	l.logger.Debug("viewport resized", "width", width, "height", height)
	return nil
}

// Run steps one frame per tick until ctx is done or ticks is closed.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			l.Step()
		}
	}
}

// RunFrames steps cfg.Frames frames back to back and collects a Result.
func (l *Loop) RunFrames(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	result := &Result{
		Metrics: make(map[string]float64),
		Energy:  make([]float64, 0, cfg.Frames),
	}

	start := time.Now()
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		stats, snap := l.step()
		result.Frames++
		result.Collisions += stats.Collisions
		result.Energy = append(result.Energy, snap.KineticEnergy())
	}

	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.FinalBodies = l.world.Snapshot().Bodies

	l.logger.Debug("run finished", "frames", result.Frames, "elapsed", time.Since(start))
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Frames < 0 {
		return fmt.Errorf("frames must be non-negative, got %d", cfg.Frames)
	}
	return nil
}

// Ticker returns a tick channel at the configured frame rate and its stop
// function.
func Ticker(fps int) (<-chan time.Time, func()) {
	t := time.NewTicker(time.Second / time.Duration(fps))
	return t.C, t.Stop
}
