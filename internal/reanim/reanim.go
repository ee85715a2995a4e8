package reanim

import "github.com/decker502/pvzemu/pkg/types"

// Advance moves progress forward by one tick.
//
// Repeat mode wraps progress and bumps NRepeated once per wrap. Once mode
// clamps at the end of the range and sets NRepeated to exactly 1, so polling
// it every tick is idempotent until the next Play.
func (r *Reanimate) Advance() {
	if r.NFrames == 0 {
		return
	}

	r.PrevProgress = r.Progress
	r.Progress += r.FPS * TickDuration / float64(r.NFrames)

	if r.Type == types.ReanimOnce {
		if r.Progress >= 1 {
			r.NRepeated = 1
			r.Progress = 1
		} else if r.Progress < 0 {
			r.NRepeated = 1
			r.Progress = 0
		}
		return
	}

	for r.Progress >= 1 {
		r.NRepeated++
		r.Progress--
	}
	for r.Progress < 0 {
		r.NRepeated++
		r.Progress++
	}
}

// Finished reports whether the animation completed at least once since the
// last Play.
func (r *Reanimate) Finished() bool {
	return r.NRepeated > 0
}

// IsInProgress reports whether the last Advance crossed p, taking a wrap
// into account.
func (r *Reanimate) IsInProgress(p float64) bool {
	if r.PrevProgress <= r.Progress {
		return r.PrevProgress <= p && p < r.Progress
	}
	return r.PrevProgress <= p || p < r.Progress
}

// FrameStatus converts progress into a frame pair for table sampling.
func (r *Reanimate) FrameStatus() FrameStatus {
	current := r.Progress*float64(r.NFrames-1) + float64(r.BeginFrame)
	floored := int(current)

	fs := FrameStatus{Fraction: current - float64(floored)}
	end := r.BeginFrame + r.NFrames - 1
	if floored < end {
		fs.Frame = floored
		fs.NextFrame = floored + 1
	} else {
		fs.Frame = end
		fs.NextFrame = end
	}
	return fs
}

// SetRange selects a new frame range. A zero-length range is ignored.
func (r *Reanimate) SetRange(begin, n int) bool {
	if n <= 0 {
		return false
	}
	r.BeginFrame = begin
	r.NFrames = n
	return true
}

// Play selects a frame range and restarts playback in the given mode,
// clearing the repeat counter. A zero-length range leaves the record
// untouched and returns false.
func (r *Reanimate) Play(begin, n int, mode types.ReanimType, fps float64) bool {
	if !r.SetRange(begin, n) {
		return false
	}
	r.Type = mode
	r.FPS = fps
	r.Progress = 0
	r.NRepeated = 0
	return true
}
