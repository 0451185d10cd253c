package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// DefaultPrecision is the number of decimals numbers are rounded to when
// written to a stylesheet.
const DefaultPrecision = 5

// StepTiming is the timing function of a flip-book: every keyframe takes
// effect at once, frames never cross-fade.
const StepTiming = "steps(1)"

// Direction is a type for CSS property "animation-direction".
type Direction string

// Directions of playback.
const (
	Normal    Direction = "normal"    // restart from the first keyframe after each pass
	Alternate Direction = "alternate" // reverse after each pass
)

// DirectionFor returns Alternate for true and Normal for false.
func DirectionFor(alternate bool) Direction {
	if alternate {
		return Alternate
	}
	return Normal
}

func (d Direction) String() string {
	return string(d)
}

// maxPlain is the magnitude from which numbers are written in exponent
// notation.
const maxPlain = 1e21

// FormatNumber writes x rounded to prec decimals, without trailing zeros.
// A negative prec is treated as DefaultPrecision.
//
// Numbers too large to be scaled, and non-zero numbers which would round to
// zero, are written unrounded in exponent notation, e.g. "2e-06".
func FormatNumber(x float64, prec int) string {
	if prec < 0 {
		prec = DefaultPrecision
	}
	scale := math.Pow(10, float64(prec))
	if math.Abs(x) >= maxPlain || math.IsInf(x*scale, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	r := math.Round(x*scale) / scale
	if r == 0 {
		if x != 0 {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Percent formats a percentage, e.g. "33.33333%".
func Percent(x float64, prec int) string {
	return FormatNumber(x, prec) + "%"
}

// Seconds formats a time value, e.g. "0.75s".
func Seconds(x float64, prec int) string {
	return FormatNumber(x, prec) + "s"
}

// CSS-wide keywords and "none" are not usable as an animation name.
var reservedNames = map[string]bool{
	"none":    true,
	"initial": true,
	"inherit": true,
	"unset":   true,
	"revert":  true,
	"default": true,
}

// IsIdent checks if s is exactly one CSS identifier token.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	sc := scanner.New(s)
	tok := sc.Next()
	if tok.Type != scanner.TokenIdent || tok.Value != s {
		return false
	}
	return sc.Next().Type == scanner.TokenEOF
}

// IsAnimationName checks if s may name a @keyframes rule.
func IsAnimationName(s string) bool {
	if !IsIdent(s) {
		tracer().Debugf("%q is not a CSS identifier", s)
		return false
	}
	return !reservedNames[strings.ToLower(s)]
}

// BaseName derives a name from a selector by stripping its leading class
// or id marker: ".walk" ⇒ "walk". Other selectors are returned unchanged.
func BaseName(selector string) string {
	selector = strings.TrimSpace(selector)
	if strings.HasPrefix(selector, ".") || strings.HasPrefix(selector, "#") {
		return selector[1:]
	}
	return selector
}
