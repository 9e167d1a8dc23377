package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/jakecoffman/cp/v2"
	"github.com/san-kum/ballpit/internal/world"
)

func newTestLoop(count int) *Loop {
	w := world.New(world.Bounds{Width: 800, Height: 600}, world.DefaultParams(), rand.New(rand.NewSource(3)))
	l := New(w)
	l.Configure(world.Scene{Color: "#fff", Count: count, AngleDeg: 5})
	return l
}

type countMetric struct {
	frames int
}

func (c *countMetric) Name() string { return "count" }
func (c *countMetric) Observe(snap world.Snapshot, stats world.FrameStats) {
	c.frames++
}
func (c *countMetric) Value() float64 { return float64(c.frames) }
func (c *countMetric) Reset()         { c.frames = 0 }

func TestLoopRunFrames(t *testing.T) {
	l := newTestLoop(6)
	m := &countMetric{frames: 99}
	l.AddMetric(m)

	result, err := l.RunFrames(context.Background(), Config{FPS: 60, Frames: 120})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 120 {
		t.Errorf("expected 120 frames, got %d", result.Frames)
	}
	if len(result.Energy) != 120 {
		t.Errorf("expected 120 energy samples, got %d", len(result.Energy))
	}
	if result.Metrics["count"] != 120 {
		t.Errorf("metric not reset or not observed: %v", result.Metrics["count"])
	}
	if len(result.FinalBodies) != 6 {
		t.Errorf("expected 6 final bodies, got %d", len(result.FinalBodies))
	}
}

func TestLoopInvalidConfig(t *testing.T) {
	l := newTestLoop(1)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero fps", Config{FPS: 0, Frames: 10}},
		{"negative fps", Config{FPS: -30, Frames: 10}},
		{"negative frames", Config{FPS: 60, Frames: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.RunFrames(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoopRunFramesCanceled(t *testing.T) {
	l := newTestLoop(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := l.RunFrames(ctx, Config{FPS: 60, Frames: 100})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.Frames != 0 {
		t.Errorf("expected empty partial result, got %+v", result)
	}
}

func TestLoopRunTicks(t *testing.T) {
	l := newTestLoop(2)

	frames := 0
	l.AddObserver(ObserverFunc(func(snap world.Snapshot, stats world.FrameStats) {
		frames++
		if snap.Frame != stats.Frame {
			t.Errorf("snapshot frame %d != stats frame %d", snap.Frame, stats.Frame)
		}
	}))

	ticks := make(chan time.Time, 5)
	for i := 0; i < 5; i++ {
		ticks <- time.Now()
	}
	close(ticks)

	if err := l.Run(context.Background(), ticks); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if frames != 5 {
		t.Errorf("expected 5 frames, got %d", frames)
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	l := newTestLoop(2)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ticks, stop := Ticker(200)
	defer stop()

	if err := l.Run(ctx, ticks); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestLoopResize(t *testing.T) {
	l := newTestLoop(0)
	if err := l.Resize(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if err := l.Resize(320, 240); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if b := l.World().Bounds(); b.Width != 320 || b.Height != 240 {
		t.Errorf("bounds = %+v", b)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := validateConfig(cfg); err != nil {
		t.Errorf("DefaultConfig invalid: %v", err)
	}
}

func TestLoopRunNoStepAfterCancel(t *testing.T) {
	l := newTestLoop(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	l.AddObserver(ObserverFunc(func(snap world.Snapshot, stats world.FrameStats) {
		frames++
		if frames == 3 {
			cancel()
		}
	}))

	ticks := make(chan time.Time, 10)
	for i := 0; i < 10; i++ {
		ticks <- time.Now()
	}

	if err := l.Run(ctx, ticks); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if frames != 3 {
		t.Errorf("expected 3 frames, got %d", frames)
	}
}

func TestLoopObserversSeeFrameBodies(t *testing.T) {
	l := newTestLoop(3)

	mismatches := 0
	l.AddObserver(ObserverFunc(func(snap world.Snapshot, stats world.FrameStats) {
		if len(snap.Bodies) != stats.Bodies || snap.Frame != stats.Frame {
			mismatches++
		}
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			l.Configure(world.Scene{Color: "#fff", Count: 1 + i%6, AngleDeg: 10})
		}
	}()

	for i := 0; i < 300; i++ {
		l.Step()
	}
	<-done

	if mismatches != 0 {
		t.Errorf("observer saw %d frames whose snapshot did not match the stats", mismatches)
	}
}

func TestLoopRenderer(t *testing.T) {
	w := world.New(world.Bounds{Width: 800, Height: 600}, world.DefaultParams(), rand.New(rand.NewSource(3)))
	if r := New(w).Renderer(); r != nil {
		t.Errorf("headless loop renderer = %v, want nil", r)
	}

	r := &countingRenderer{}
	l := New(w, WithRenderer(r))
	if l.Renderer() != world.Renderer(r) {
		t.Error("Renderer() did not return the configured renderer")
	}
	l.Configure(world.Scene{Color: "#fff", Count: 5})
	for i := 0; i < 10; i++ {
		l.Step()
	}
	if r.circles != 50 {
		t.Errorf("circles drawn = %d, want 50", r.circles)
	}
}

type countingRenderer struct{ clears, circles int }

func (r *countingRenderer) Clear()                                            { r.clears++ }
func (r *countingRenderer) StrokeRect(x, y, w, h float64)                     {}
func (r *countingRenderer) StrokeLine(a, b cp.Vector)                         {}
func (r *countingRenderer) FillCircle(c cp.Vector, rad float64, color string) { r.circles++ }
