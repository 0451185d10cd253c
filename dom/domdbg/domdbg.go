/*
Package domdbg implements helpers to debug flip-book animations.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/dom/style"
	"github.com/npillmayer/flipbook/dom/style/cssom"
	"github.com/npillmayer/flipbook/frames"
	tp "github.com/xlab/treeprint"
)

// Dump returns a tree of the frames of compiled flip-books, with their
// timing windows and the selectors they are bound to.
//
//     .
//     └── walk: 3 frames × 0.25s = 0.75s, alternate, forever
//         ├── walk-1 [0% … 33.33333%] ⇒ .walk > :nth-child(1)
//         ├── ...
//
func Dump(results ...*flipbook.Result) string {
	p := tp.New()
	for _, r := range results {
		if r == nil || r.Spec == nil {
			continue
		}
		branch := p.AddBranch(header(r))
		for _, w := range r.Spec.Windows {
			branch.AddNode(frame(r, w))
		}
	}
	return p.String()
}

func header(r *flipbook.Result) string {
	s := r.Spec
	n, _ := s.EffectiveIterations.Count()
	plays := css.IterationPattern[string](s.EffectiveIterations).OneOf(css.IterationPatterns[string]{
		Infinite: "forever",
		Times:    fmt.Sprintf("%d passes", n),
		Default:  "?",
	})
	return fmt.Sprintf("%s: %d frames × %ss = %ss, %s, %s", r.Name, s.FrameCount,
		css.FormatNumber(s.Rate, css.DefaultPrecision),
		css.FormatNumber(s.Duration, css.DefaultPrecision),
		s.Direction, plays)
}

// frame reports the animation name the stylesheet binds to a frame's
// selector, or "?" if the sheet holds no such binding.
func frame(r *flipbook.Result, w frames.Window) string {
	sel := r.Binding.FrameSelector(w.Frame)
	name := "?"
	if r.Sheet != nil {
		if rule := cssom.FindRule(r.Sheet, sel, style.AnimationName); rule != nil {
			name = rule.Value(style.AnimationName).String()
		}
	}
	var b strings.Builder
	b.WriteString(name)
	fmt.Fprintf(&b, " [%s … %s]", css.Percent(w.Start, css.DefaultPrecision),
		css.Percent(w.End, css.DefaultPrecision))
	b.WriteString(" ⇒ ")
	b.WriteString(sel)
	return b.String()
}
