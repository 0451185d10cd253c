package css_test

import (
	"math"
	"testing"

	"github.com/npillmayer/flipbook/css"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		x    float64
		prec int
		want string
	}{
		{0, 5, "0"},
		{100, 5, "100"},
		{100.0 / 3, 5, "33.33333"},
		{200.0 / 3, 5, "66.66667"},
		{200.0 / 3, 2, "66.67"},
		{12 * 0.1, 5, "1.2"},
		{0.75, -1, "0.75"},
		{math.Copysign(0, -1), 3, "0"},
		{0.000001, 3, "1e-06"},
		{-0.000001, 3, "-1e-06"},
		{2e-06, 5, "2e-06"},
		{2e+305, 5, "2e+305"},
		{math.MaxFloat64, 2, "1.7976931348623157e+308"},
		{1e21, 0, "1e+21"},
		{123456.5, 0, "123457"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, css.FormatNumber(tt.x, tt.prec), "FormatNumber(%v, %d)", tt.x, tt.prec)
	}
	assert.Equal(t, "8.33333%", css.Percent(100.0/12, 5))
	assert.Equal(t, "0.75s", css.Seconds(3*0.25, 5))
	assert.Equal(t, "2e-06s", css.Seconds(2*1e-6, 5))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, css.Alternate, css.DirectionFor(true))
	assert.Equal(t, "normal", css.DirectionFor(false).String())
}

func TestIdent(t *testing.T) {
	for _, ok := range []string{"walk", "walk-1", "_x", "Run2"} {
		assert.True(t, css.IsIdent(ok), "expected %q to be an identifier", ok)
	}
	for _, bad := range []string{"", "1walk", "walk cycle", "walk.1", ".walk", "a{b"} {
		assert.False(t, css.IsIdent(bad), "expected %q not to be an identifier", bad)
	}
	assert.True(t, css.IsAnimationName("walk"))
	assert.False(t, css.IsAnimationName("none"))
	assert.False(t, css.IsAnimationName("Inherit"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "walk", css.BaseName(".walk"))
	assert.Equal(t, "hero", css.BaseName(" #hero"))
	assert.Equal(t, "div", css.BaseName("div"))
}
