package flipbook

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	fbcss "github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/dom/style"
	"github.com/npillmayer/flipbook/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/flipbook/frames"
)

// maxPrecision is the number of decimals float64 reliably carries for
// percentages.
const maxPrecision = 12

// Options control serialization.
type Options struct {
	Precision int // decimals of percentages and durations; 0 means css.DefaultPrecision
	Workers   int // concurrent compilations in CompileAll; 0 means one per CPU
}

func (o Options) precision() int {
	switch {
	case o.Precision <= 0:
		return fbcss.DefaultPrecision
	case o.Precision > maxPrecision:
		return maxPrecision
	}
	return o.Precision
}

// KeyframesName returns the name of the @keyframes rule of frame i.
func KeyframesName(name string, i int) string {
	return fmt.Sprintf("%s-%d", name, i)
}

// Render serializes the timing of a flip-book into a stylesheet. It emits
//
//   - a rule for all frame elements, setting the playback parameters and
//     hiding frames outside of their window,
//   - a @keyframes rule per frame, named "{name}-{i}", showing the frame at
//     the start of its window and hiding it at the end,
//   - a rule per frame, binding the frame element to its keyframes.
//
// name has to be a CSS identifier. Errors are of kind frames.ErrInvalidArgument.
func Render(spec *frames.Spec, name string, b Binding, opts Options) (*douceuradapter.CSSStyles, error) {
	if spec == nil || len(spec.Windows) != spec.FrameCount {
		return nil, frames.InvalidArgument("spec", spec, "incomplete flip-book timing")
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := b.check(spec.FrameCount); err != nil {
		return nil, err
	}
	prec := opts.precision()
	rules := make([]*css.Rule, 0, 1+2*spec.FrameCount)
	rules = append(rules, douceuradapter.StyleRule(b.ChildrenSelector(), playback(spec, prec)))
	for _, w := range spec.Windows {
		kfname := KeyframesName(name, w.Frame)
		rules = append(rules, douceuradapter.KeyframesRule(kfname,
			douceuradapter.Keyframe(fbcss.Percent(w.Start, prec), style.Block{{Key: style.Opacity, Value: style.Shown}}),
			douceuradapter.Keyframe(fbcss.Percent(w.End, prec), style.Block{{Key: style.Opacity, Value: style.Hidden}}),
		))
		rules = append(rules, douceuradapter.StyleRule(b.FrameSelector(w.Frame),
			style.Block{{Key: style.AnimationName, Value: style.Property(kfname)}}))
	}
	tracer().Debugf("rendered %d rules for flip-book %s", len(rules), name)
	return douceuradapter.New(rules...), nil
}

func playback(spec *frames.Spec, prec int) style.Block {
	var b style.Block
	b = b.Set(style.AnimationDuration, style.Property(fbcss.Seconds(spec.Duration, prec)))
	b = b.Set(style.AnimationDirection, style.Property(spec.Direction))
	b = b.Set(style.AnimationIterationCount, style.Property(spec.EffectiveIterations.String()))
	b = b.Set(style.AnimationTimingFunction, style.Property(spec.Timing))
	b = b.Set(style.Opacity, style.Hidden)
	return b
}

func checkName(name string) error {
	if !fbcss.IsAnimationName(name) {
		return frames.InvalidArgument("name", name, "must be a CSS identifier other than a CSS-wide keyword")
	}
	return nil
}
