/*
Package cssom provides an object model for generated stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
A flip-book is serialized as a stylesheet consisting of three kinds of rules:
a style rule carrying the playback parameters, one @keyframes at-rule per
frame, and one style rule per frame binding an element to its keyframes.
Clients (and tests) inspect the generated stylesheet through interfaces
StyleSheet and Rule rather than by matching on text.

CSS handling is de-coupled by introducing these interfaces.
A concrete implementation may be found in sub-package douceuradapter.

Further to consider:

   https://developer.mozilla.org/en-US/docs/Web/API/CSS_Object_Model
   https://developer.mozilla.org/en-US/docs/Web/API/CSSKeyframesRule

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'flipbook.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("flipbook.cssom")
}
