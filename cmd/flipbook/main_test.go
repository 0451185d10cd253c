package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/dom"
	"github.com/npillmayer/flipbook/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecPath(t *testing.T) {
	assert.Equal(t, "timing.yaml", specPath("timing.yaml", "walk", false))
	assert.Equal(t, "out/timing-walk.yaml", specPath("out/timing.yaml", "walk", true))
	assert.Equal(t, "timing-walk", specPath("timing", "walk", true))
}

func TestBindToMarkup(t *testing.T) {
	page, err := dom.Parse(strings.NewReader(
		`<html><body><div id="clip"><p id="a">1</p><p id="b">2</p></div></body></html>`))
	require.NoError(t, err)

	a := flipbook.Animation{Binding: flipbook.Positional("#clip"), Params: frames.Defaults(0)}
	bindToMarkup(page, &a)
	assert.Equal(t, 2, a.Params.Frames)
	assert.Equal(t, []string{"#a", "#b"}, a.Binding.Frames)

	explicit := flipbook.Explicit("#clip", "#b", "#a")
	a = flipbook.Animation{Binding: explicit, Params: frames.Defaults(2)}
	bindToMarkup(page, &a)
	assert.Equal(t, explicit, a.Binding)
}
