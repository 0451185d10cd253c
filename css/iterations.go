package css

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	iterUnset    uint32 = 0
	iterFinite   uint32 = 0x0001
	iterInfinite uint32 = 0x0002
	iterMask     uint32 = 0x000f
)

// KeywordInfinite is the CSS keyword for endless repetition.
const KeywordInfinite = "infinite"

// IterationCount is an option type for CSS property "animation-iteration-count".
//
// The zero value is unset. Clients decide what unset means; the flip-book
// generator treats it as infinite.
type IterationCount struct {
	n     int
	flags uint32
}

/*
type IterationCount
	= Unset
	| Infinite
	| Times N
*/

// Infinite creates an iteration count repeating forever.
func Infinite() IterationCount {
	return IterationCount{flags: iterInfinite}
}

// Times creates a finite iteration count of n. It does not check n,
// use Valid for that.
func Times(n int) IterationCount {
	return IterationCount{n: n, flags: iterFinite}
}

// IsSet is false for the zero value.
func (c IterationCount) IsSet() bool {
	return c.flags&iterMask != iterUnset
}

// IsZero reports whether c is unset. It lets yaml omit unset counts.
func (c IterationCount) IsZero() bool {
	return !c.IsSet()
}

// IsInfinite returns true for Infinite().
func (c IterationCount) IsInfinite() bool {
	return c.flags&iterInfinite > 0
}

// Count returns the number of iterations of a finite count.
// ok is false for infinite or unset counts.
func (c IterationCount) Count() (n int, ok bool) {
	if c.flags&iterFinite > 0 {
		return c.n, true
	}
	return 0, false
}

// Valid is true for Infinite() and for finite counts of at least 1.
func (c IterationCount) Valid() bool {
	switch {
	case c.IsInfinite():
		return true
	case c.flags&iterFinite > 0:
		return c.n >= 1
	}
	return false
}

// Double returns a count twice as large. Infinite and unset counts are
// returned unchanged.
func (c IterationCount) Double() IterationCount {
	if c.flags&iterFinite > 0 {
		return Times(c.n * 2)
	}
	return c
}

// String returns the CSS text of a count: "infinite", a decimal number,
// or the empty string if unset.
func (c IterationCount) String() string {
	switch {
	case c.IsInfinite():
		return KeywordInfinite
	case c.flags&iterFinite > 0:
		return strconv.Itoa(c.n)
	}
	return ""
}

// ParseIterationCount reads "infinite" or a positive base-10 integer.
func ParseIterationCount(s string) (IterationCount, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, KeywordInfinite) {
		return Infinite(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return IterationCount{}, fmt.Errorf("iteration count %q is neither %q nor an integer", s, KeywordInfinite)
	}
	if n < 1 {
		return IterationCount{}, fmt.Errorf("iteration count %d is not positive", n)
	}
	return Times(n), nil
}

// Set implements flag.Value.
func (c *IterationCount) Set(s string) error {
	ic, err := ParseIterationCount(s)
	if err != nil {
		return err
	}
	*c = ic
	return nil
}

// MarshalYAML writes infinite counts as a string and finite ones as an int.
func (c IterationCount) MarshalYAML() (interface{}, error) {
	if n, ok := c.Count(); ok {
		return n, nil
	}
	return c.String(), nil
}

// UnmarshalYAML accepts the same forms as ParseIterationCount.
func (c *IterationCount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: iteration count must be a scalar", value.Line)
	}
	ic, err := ParseIterationCount(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	tracer().Debugf("decoded iteration count %s", ic)
	*c = ic
	return nil
}

// ---------------------------------------------------------------------------

// Match starts a match switch on an iteration count:
//
//     switch m := c.Match(); m {
//     case m.Infinite():
//     case m.Times(&n):
//     }
//
func (c IterationCount) Match() *IterMatcher {
	return &IterMatcher{count: c}
}

// IterMatcher matches kinds of iteration counts.
type IterMatcher struct {
	count IterationCount
}

// Infinite matches an infinite count.
func (m *IterMatcher) Infinite() *IterMatcher {
	if m.count.IsInfinite() {
		return m
	}
	return nil
}

// Times matches a finite count and stores it in n, if n is non-nil.
func (m *IterMatcher) Times(n *int) *IterMatcher {
	if k, ok := m.count.Count(); ok {
		if n != nil {
			*n = k
		}
		return m
	}
	return nil
}

// Unset matches the zero value.
func (m *IterMatcher) Unset() *IterMatcher {
	if !m.count.IsSet() {
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// IterationPatterns holds a result per kind of iteration count.
type IterationPatterns[T any] struct {
	Unset    T
	Infinite T
	Times    T
	Default  T
}

// IterationPattern starts an expression match on an iteration count.
func IterationPattern[T any](c IterationCount) *IterExpr[T] {
	return &IterExpr[T]{count: c}
}

// IterExpr selects one of a set of IterationPatterns.
type IterExpr[T any] struct {
	count IterationCount
}

// OneOf returns the pattern for the kind of count.
func (m *IterExpr[T]) OneOf(patterns IterationPatterns[T]) T {
	switch {
	case m.count.flags&iterInfinite > 0:
		return patterns.Infinite
	case m.count.flags&iterFinite > 0:
		return patterns.Times
	case m.count.flags&iterMask == iterUnset:
		return patterns.Unset
	}
	return patterns.Default
}

// With stores the count of a finite iteration count in n.
func (m *IterExpr[T]) With(n *int) *IterExpr[T] {
	*n = m.count.n
	return m
}

// Const returns x.
func (m *IterExpr[T]) Const(x T) T {
	return x
}
