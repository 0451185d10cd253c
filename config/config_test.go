package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/frames"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
precision: 3
workers: 2
animations:
  - selector: .walk
    frames: 12
    rate: 0.1
    alternate: false
    iterations: 2
  - selector: .wave
    name: hello
    iterations: infinite
    children: ["#w1", "#w2", "#w3"]
  - selector: "#spin"
    frames: 4
`

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flipbook.config")
	defer teardown()
	//
	c, err := Decode(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, flipbook.Options{Precision: 3, Workers: 2}, c.Options())
	anims := c.Build()
	require.Len(t, anims, 3)

	assert.Equal(t, "walk", anims[0].BaseName())
	assert.Equal(t, frames.Params{Frames: 12, Rate: 0.1, Alternate: false, Iterations: css.Times(2)},
		anims[0].Params)
	assert.False(t, anims[0].Binding.IsExplicit())

	assert.Equal(t, "hello", anims[1].BaseName())
	assert.Equal(t, frames.Defaults(3), anims[1].Params)
	assert.Equal(t, flipbook.Explicit(".wave", "#w1", "#w2", "#w3"), anims[1].Binding)

	assert.Equal(t, "spin", anims[2].BaseName())
	assert.Equal(t, frames.Defaults(4), anims[2].Params)

	for _, a := range anims {
		_, err := flipbook.Compile(a, c.Options())
		assert.NoError(t, err, "animation %s", a.BaseName())
	}
}

func TestDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flipbook.config")
	defer teardown()
	//
	for _, doc := range []string{
		"",
		"animations: []",
		"animations:\n  - frames: 3",
		"animations:\n  - selector: .a\n    iterations: 0",
		"animations:\n  - selector: .a\n    iterations: often",
		"animations:\n  - selector: .a\n    fps: 12",
		"precision: -1\nanimations:\n  - selector: .a",
	} {
		_, err := Decode(strings.NewReader(doc))
		assert.Error(t, err, "config %q", doc)
		t.Logf("%q: %v", doc, err)
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flipbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))
	c, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, c.Animations, 3)

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
