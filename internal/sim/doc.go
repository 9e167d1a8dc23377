// Package sim schedules frames of a [world.World].
//
// The world knows how to run one frame; [Loop] decides when. Hosts feed it
// ticks (a [time.Ticker], a bubbletea tick message or a raylib frame) and
// may reconfigure or resize the world from other goroutines between frames.
package sim
