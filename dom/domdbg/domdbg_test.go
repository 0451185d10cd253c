package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/dom/style"
	"github.com/npillmayer/flipbook/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/flipbook/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	walk, err := flipbook.Compile(flipbook.Animation{
		Binding: flipbook.Positional(".walk"),
		Params:  frames.Defaults(3),
	}, flipbook.Options{})
	require.NoError(t, err)
	run, err := flipbook.Compile(flipbook.Animation{
		Name:    "run",
		Binding: flipbook.Explicit(".runner", "#r1", "#r2"),
		Params:  frames.Params{Frames: 2, Rate: 0.5, Iterations: css.Times(3)},
	}, flipbook.Options{})
	require.NoError(t, err)

	out := Dump(walk, nil, run)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "walk: 3 frames × 0.25s = 0.75s, alternate, forever")
	assert.Contains(t, out, "walk-2 [33.33333% … 66.66667%] ⇒ .walk > :nth-child(2)")
	assert.Contains(t, out, "run: 2 frames × 0.5s = 1s, normal, 3 passes")
	assert.Contains(t, out, "run-2 [50% … 100%] ⇒ #r2")
	assert.Equal(t, 5, strings.Count(out, "⇒"))
}

func TestDumpUnboundFrames(t *testing.T) {
	r, err := flipbook.Compile(flipbook.Animation{
		Binding: flipbook.Positional(".walk"),
		Params:  frames.Defaults(2),
	}, flipbook.Options{})
	require.NoError(t, err)
	r.Sheet = douceuradapter.New(douceuradapter.StyleRule(".walk > :nth-child(2)",
		style.Block{{Key: style.AnimationName, Value: "other"}}))
	out := Dump(r)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "? [0% … 50%] ⇒ .walk > :nth-child(1)")
	assert.Contains(t, out, "other [50% … 100%] ⇒ .walk > :nth-child(2)")
	r.Sheet = nil
	assert.Equal(t, 2, strings.Count(Dump(r), "? ["))
}

func TestDumpSingleFrame(t *testing.T) {
	r, err := flipbook.Compile(flipbook.Animation{
		Name:    "still",
		Binding: flipbook.Explicit(".pic", "#only"),
		Params:  frames.Defaults(1),
	}, flipbook.Options{})
	require.NoError(t, err)
	assert.Contains(t, Dump(r), "still-1 [0% … 100%] ⇒ #only")
}
