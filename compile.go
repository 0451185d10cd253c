package flipbook

import (
	"context"
	"fmt"
	"runtime"

	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/flipbook/frames"
	"golang.org/x/sync/errgroup"
)

// Animation is a flip-book to compile.
type Animation struct {
	Name    string // keyframes base name; empty means derived from the container selector
	Binding Binding
	Params  frames.Params
}

// BaseName returns the keyframes base name of a.
func (a Animation) BaseName() string {
	if a.Name != "" {
		return a.Name
	}
	return css.BaseName(a.Binding.Container)
}

// Result is a compiled flip-book.
type Result struct {
	Name    string
	Binding Binding
	Spec    *frames.Spec
	Sheet   *douceuradapter.CSSStyles
}

// Compile computes the timing of an animation and serializes it.
// All input is checked before any output is produced.
func Compile(a Animation, opts Options) (*Result, error) {
	name := a.BaseName()
	if err := checkName(name); err != nil {
		return nil, err
	}
	spec, err := frames.Generate(a.Params)
	if err != nil {
		return nil, err
	}
	sheet, err := Render(spec, name, a.Binding, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Name: name, Binding: a.Binding, Spec: spec, Sheet: sheet}, nil
}

// CompileAll compiles a set of animations concurrently. Results are in the
// order of anims, and the stylesheet holds the rules of all of them in the
// same order. The first error cancels the remaining compilations; no partial
// stylesheet is returned.
func CompileAll(ctx context.Context, anims []Animation, opts Options) ([]*Result, *douceuradapter.CSSStyles, error) {
	seen := make(map[string]int, len(anims))
	for i, a := range anims {
		name := a.BaseName()
		if j, dup := seen[name]; dup {
			return nil, nil, frames.InvalidArgument("name", name,
				fmt.Sprintf("used by animations #%d and #%d", j+1, i+1))
		}
		seen[name] = i
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*Result, len(anims))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range anims {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Compile(anims[i], opts)
			if err != nil {
				return fmt.Errorf("animation #%d (%s): %w", i+1, anims[i].BaseName(), err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("%v", err)
		return nil, nil, err
	}
	sheet := douceuradapter.New()
	for _, r := range results {
		sheet.AppendRules(r.Sheet)
	}
	tracer().Infof("compiled %d flip-books", len(results))
	return results, sheet, nil
}
