package sim

import (
	"github.com/san-kum/ballpit/internal/world"
)

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(snap world.Snapshot, stats world.FrameStats)
	Value() float64
	Reset()
}

// Observer is notified after every frame.
type Observer interface {
	OnFrame(snap world.Snapshot, stats world.FrameStats)
}

type ObserverFunc func(snap world.Snapshot, stats world.FrameStats)

func (f ObserverFunc) OnFrame(snap world.Snapshot, stats world.FrameStats) { f(snap, stats) }

type Config struct {
	FPS    int
	Frames int
}

func DefaultConfig() Config {
	return Config{
		FPS:    60,
		Frames: 600,
	}
}

type Result struct {
	Frames      int
	Collisions  int
	Metrics     map[string]float64
	Energy      []float64
	FinalBodies []world.Body
}
