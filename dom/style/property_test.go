package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBlockSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flipbook.style")
	defer teardown()
	//
	var b Block
	b = b.Set(AnimationDuration, "1s")
	b = b.Set(Opacity, Hidden)
	b = b.Set(AnimationDuration, "2s")
	if len(b) != 2 {
		t.Fatalf("expected block to hold 2 declarations, holds %d", len(b))
	}
	if b[0].Key != AnimationDuration || b[0].Value != "2s" {
		t.Errorf("expected first declaration to be overwritten in place, is %v", b[0])
	}
	if p, ok := b.Get(Opacity); !ok || p != Hidden {
		t.Errorf("expected opacity to be hidden, is %q", p)
	}
	if _, ok := b.Get(AnimationName); ok {
		t.Errorf("expected animation-name to be unset")
	}
}

func TestEmptyProperty(t *testing.T) {
	if !NullStyle.IsEmpty() || Hidden.IsEmpty() {
		t.Errorf("expected only the null style to be empty")
	}
	var b Block
	if p, _ := b.Get(Opacity); !p.IsEmpty() {
		t.Errorf("expected unset property to be empty, is %q", p)
	}
}
