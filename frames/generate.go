package frames

import (
	"fmt"
	"math"

	"github.com/npillmayer/flipbook/css"
)

// DefaultRate is the default display time of a frame, in seconds.
const DefaultRate = 0.25

// Params are the inputs of Generate.
type Params struct {
	Frames     int                // number of frames, at least 1
	Rate       float64            // seconds per frame, > 0
	Alternate  bool               // reverse playback after each pass
	Iterations css.IterationCount // positive count or infinite; unset means infinite
}

// Defaults returns parameters for n frames at DefaultRate, playing forever
// in alternating direction.
func Defaults(n int) Params {
	return Params{
		Frames:     n,
		Rate:       DefaultRate,
		Alternate:  true,
		Iterations: css.Infinite(),
	}
}

// Window is the share of the timeline during which a frame is the visible one.
// Start and End are percentages of the total duration.
type Window struct {
	Frame int     `yaml:"frame"` // 1…n
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Span is End − Start.
func (w Window) Span() float64 {
	return w.End - w.Start
}

// Spec is the timing of a flip-book animation. A Spec is derived anew on
// every call of Generate and never changed afterwards.
type Spec struct {
	FrameCount          int                `yaml:"frames"`
	Rate                float64            `yaml:"rate"`
	Alternate           bool               `yaml:"alternate"`
	Iterations          css.IterationCount `yaml:"iterations"`
	Duration            float64            `yaml:"duration"` // FrameCount × Rate, in seconds
	Direction           css.Direction      `yaml:"direction"`
	EffectiveIterations css.IterationCount `yaml:"effective-iterations"`
	Timing              string             `yaml:"timing"`
	Windows             []Window           `yaml:"windows"` // ordered by frame
}

// Generate computes the timing for a flip-book animation.
//
// Errors are of kind ErrInvalidArgument and name the parameter at fault.
// No partial result is returned.
func Generate(p Params) (*Spec, error) {
	if p.Iterations.IsZero() {
		p.Iterations = css.Infinite()
	}
	if err := p.check(); err != nil {
		tracer().Debugf("rejecting flip-book parameters: %v", err)
		return nil, err
	}
	n := p.Frames
	spec := &Spec{
		FrameCount: n,
		Rate:       p.Rate,
		Alternate:  p.Alternate,
		Iterations: p.Iterations,
		Duration:   float64(n) * p.Rate,
		Direction:  css.DirectionFor(p.Alternate),
		Timing:     css.StepTiming,
		Windows:    make([]Window, n),
	}
	spec.EffectiveIterations = effectiveIterations(p.Iterations, p.Alternate)
	// Window i spans [100(i−1)/n, 100i/n]. Both bounds are computed by the
	// same expression, so neighbours share a bound exactly and the last
	// window ends at exactly 100.
	for i := 1; i <= n; i++ {
		spec.Windows[i-1] = Window{
			Frame: i,
			Start: percentOf(i-1, n),
			End:   percentOf(i, n),
		}
	}
	tracer().Debugf("generated %d frames, duration=%gs, direction=%s, iterations=%s",
		n, spec.Duration, spec.Direction, spec.EffectiveIterations)
	return spec, nil
}

func (p Params) check() error {
	if p.Frames <= 0 {
		return InvalidArgument("frameCount", p.Frames, "must be a positive integer")
	}
	if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) || p.Rate <= 0 {
		return InvalidArgument("frameRate", p.Rate, "must be a positive number of seconds")
	}
	if math.IsInf(float64(p.Frames)*p.Rate, 0) {
		return InvalidArgument("frameRate", p.Rate, fmt.Sprintf("duration of %d frames overflows", p.Frames))
	}
	if !p.Iterations.Valid() {
		return InvalidArgument("iterations", p.Iterations, `must be a positive integer or "infinite"`)
	}
	if k, ok := p.Iterations.Count(); ok && p.Alternate && k > math.MaxInt/2 {
		return InvalidArgument("iterations", p.Iterations,
			fmt.Sprintf("must not exceed %d for alternating playback", math.MaxInt/2))
	}
	return nil
}

// effectiveIterations counts a round trip of an alternating animation as a
// single iteration.
func effectiveIterations(c css.IterationCount, alternate bool) css.IterationCount {
	if alternate {
		return c.Double()
	}
	return c
}

func percentOf(i, n int) float64 {
	return 100 * float64(i) / float64(n)
}

// Params returns the parameters s has been generated from.
func (s *Spec) Params() Params {
	return Params{
		Frames:     s.FrameCount,
		Rate:       s.Rate,
		Alternate:  s.Alternate,
		Iterations: s.Iterations,
	}
}

// Window returns the window of frame i (1-based).
func (s *Spec) Window(i int) (Window, bool) {
	if i < 1 || i > len(s.Windows) {
		return Window{}, false
	}
	return s.Windows[i-1], true
}
