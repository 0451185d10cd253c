package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'flipbook.style'
func tracer() tracing.Trace {
	return tracing.Select("flipbook.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     animation-direction: alternate
//
// a property value of "alternate" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty is true for NullStyle, i.e. a property without a value.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Property keys a flip-book sets.
const (
	AnimationName           = "animation-name"
	AnimationDuration       = "animation-duration"
	AnimationDirection      = "animation-direction"
	AnimationIterationCount = "animation-iteration-count"
	AnimationTimingFunction = "animation-timing-function"
	Opacity                 = "opacity"
)

// Opacity values of a visible and a hidden frame.
const (
	Shown  Property = "1"
	Hidden Property = "0"
)

// Block is an ordered list of declarations, i.e. the body of a style rule
// or of a keyframe. Keys are unique within a block.
type Block []KeyValue

// Set sets a property's value. Overwrites an existing value, if present,
// keeping its position.
func (b Block) Set(key string, p Property) Block {
	for i, kv := range b {
		if kv.Key == key {
			tracer().Debugf("overwriting %s: %s with %s", key, kv.Value, p)
			b[i].Value = p
			return b
		}
	}
	return append(b, KeyValue{Key: key, Value: p})
}

// Get a property's value.
func (b Block) Get(key string) (Property, bool) {
	for _, kv := range b {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}
