package cssom

import (
	"strings"

	"github.com/npillmayer/flipbook/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple the generation of flip-book rules from the
// representation of CSS, we introduce an interface for CSS stylesheets
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
	String() string         // CSS text of the stylesheet
}

// Rule is the type stylesheets consists of. A rule is either a style rule
// (including the blocks of a @keyframes rule, which are selected by a
// percentage) or an at-rule.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "opacity"
	Value(string) style.Property // property value for key, e.g. "1"
	IsImportant(string) bool     // is property key marked as important?
	AtKeyword() string           // e.g. "@keyframes", empty for style rules
	Nested() []Rule              // rules embedded in an at-rule
}

// IsKeyframes is a predicate for @keyframes at-rules.
func IsKeyframes(r Rule) bool {
	return strings.EqualFold(r.AtKeyword(), "@keyframes")
}

// FindKeyframes returns the @keyframes rule named name, or nil.
func FindKeyframes(sheet StyleSheet, name string) Rule {
	for _, r := range sheet.Rules() {
		if IsKeyframes(r) && strings.TrimSpace(r.Selector()) == name {
			return r
		}
	}
	tracer().Debugf("no @keyframes %s in stylesheet", name)
	return nil
}

// FindRule returns the first style rule with the given selector which
// declares all of keys, or nil.
func FindRule(sheet StyleSheet, selector string, keys ...string) Rule {
	for _, r := range sheet.Rules() {
		if r.AtKeyword() == "" && strings.TrimSpace(r.Selector()) == selector && declares(r, keys) {
			return r
		}
	}
	return nil
}

func declares(r Rule, keys []string) bool {
	for _, key := range keys {
		if r.Value(key).IsEmpty() {
			return false
		}
	}
	return true
}
