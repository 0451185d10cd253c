/*
Package frames computes the timing of a flip-book animation.

A flip-book is a container whose children are the frames of a hand-drawn
animation. Exactly one frame is visible at a time; each frame owns a window
of the animation's timeline, given in percent of the total duration. Windows
are contiguous and cover [0,100] without gaps or overlaps.

Generate is a pure function: it has no state, never blocks, and may be called
concurrently. The resulting Spec is the input for serialization into
stylesheet rules (see package flipbook).

Iteration Counts

Playback engines count every pass of an animation as an iteration, including
the reversed pass of an alternating animation. Clients think of a round trip
as one iteration. Generate therefore doubles finite iteration counts of
alternating animations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frames

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flipbook.frames'.
func tracer() tracing.Trace {
	return tracing.Select("flipbook.frames")
}
