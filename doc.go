/*
Package flipbook generates stylesheets for flip-book animations.

A flip-book is a container element whose children are the frames of a
hand-drawn animation. Instead of encoding the frames into an animated raster
image, flipbook emits CSS which shows one child at a time:

    .walk > * {
      animation-duration: 0.75s;
      animation-direction: alternate;
      animation-iteration-count: infinite;
      animation-timing-function: steps(1);
      opacity: 0;
    }
    @keyframes walk-1 {
      0% {
        opacity: 1;
      }
      33.33333% {
        opacity: 0;
      }
    }
    .walk > :nth-child(1) {
      animation-name: walk-1;
    }
    …

Timing is computed by package frames. This package binds frames to elements
(see Binding) and serializes the result into a stylesheet, see Compile.

Status

Early draft, the API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flipbook

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flipbook'.
func tracer() tracing.Trace {
	return tracing.Select("flipbook")
}
