/*
Package dom binds flip-book animations to HTML markup.

A flip-book is a container element with one child element per frame. This
package finds the frame elements of a page, derives a binding of frames to
selectors from them, and writes a generated stylesheet back into the page.

The number of frames is always taken from the markup. Frames are bound by
id whenever a frame element carries an id usable as a CSS identifier, so the
binding survives re-ordering of the page's children. Frames without such an
id are bound by position.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'flipbook.dom'
func tracer() tracing.Trace {
	return tracing.Select("flipbook.dom")
}
