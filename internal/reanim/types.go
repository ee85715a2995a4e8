// Package reanim provides the playback state used by every simulated entity.
// Animation progress is not cosmetic here: state machines poll the repeat
// counter to detect finished animations, and zombie movement samples the
// current frame pair to derive its displacement.
package reanim

import "github.com/decker502/pvzemu/pkg/types"

// TickDuration is the simulated time of one tick in seconds.
const TickDuration = 0.01

// Reanimate is the playback record of a single entity.
type Reanimate struct {
	// FPS is the current playback rate. Negative values play backwards.
	FPS float64 `json:"fps"`

	// PrevFPS remembers the last non-zero rate so frozen zombies can resume.
	PrevFPS float64 `json:"prev_fps"`

	// BeginFrame and NFrames select the active frame range.
	BeginFrame int `json:"begin_frame"`
	NFrames    int `json:"n_frames"`

	// NRepeated counts wraps (repeat mode) or the single clamp at 1 (once mode)
	// since the last state transition.
	NRepeated int `json:"n_repeated"`

	// Progress is the normalized position in [0, 1].
	Progress     float64 `json:"progress"`
	PrevProgress float64 `json:"prev_progress"`

	Type types.ReanimType `json:"type"`
}

// FrameStatus is a discretized progress value.
type FrameStatus struct {
	// Frame is the absolute frame index at the current progress.
	Frame int
	// NextFrame is Frame+1, or Frame itself at the end of the range.
	NextFrame int
	// Fraction is the sub-frame interpolation factor in [0, 1).
	Fraction float64
}
