package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/flipbook/dom/style"
)

// StyleRule creates a style rule for a selector (or a comma-separated
// list of selectors).
func StyleRule(selector string, block style.Block) *css.Rule {
	return &css.Rule{
		Kind:         css.QualifiedRule,
		Prelude:      selector,
		Selectors:    []string{selector},
		Declarations: declarations(block),
	}
}

// KeyframesRule creates a @keyframes at-rule named name. Blocks are
// created with Keyframe.
func KeyframesRule(name string, blocks ...*css.Rule) *css.Rule {
	return &css.Rule{
		Kind:    css.AtRule,
		Name:    "@keyframes",
		Prelude: name,
		Rules:   blocks,
	}
}

// Keyframe creates a keyframe block within a @keyframes rule, selected by
// a percentage like "25%".
func Keyframe(percent string, block style.Block) *css.Rule {
	r := StyleRule(percent, block)
	r.EmbedLevel = 1
	return r
}

// declarations skips properties without a value.
func declarations(block style.Block) []*css.Declaration {
	decls := make([]*css.Declaration, 0, len(block))
	for _, kv := range block {
		if kv.Value.IsEmpty() {
			tracer().Debugf("skipping empty property %s", kv.Key)
			continue
		}
		decls = append(decls, &css.Declaration{
			Property: kv.Key,
			Value:    kv.Value.String(),
		})
	}
	return decls
}
