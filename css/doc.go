/*
Package css provides the CSS value types a flip-book animation is made of.

Animation properties are few, but their values are textual and some of them
are sum types in disguise. "animation-iteration-count", for example, is either
a positive number or the keyword "infinite". This package shields clients from
handling these values as raw strings and is responsible for the textual form
numbers, percentages and durations take in a generated stylesheet.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/animation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flipbook.css'.
func tracer() tracing.Trace {
	return tracing.Select("flipbook.css")
}
