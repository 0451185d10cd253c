package flipbook

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/flipbook/frames"
)

// Binding assigns each frame of an animation to the element displaying it.
//
// A positional binding has no Frames: frame i is the i-th child of the
// container. Child order in the markup then has to match frame order, which
// nobody checks. An explicit binding lists one selector per frame, in frame
// order, and does not depend on document order.
type Binding struct {
	Container string   // selector of the container element
	Frames    []string // explicit frame selectors; empty for a positional binding
}

// Positional creates a binding of frames to the children of a container.
func Positional(container string) Binding {
	return Binding{Container: container}
}

// Explicit creates a binding of frame i to frames[i-1].
func Explicit(container string, frames ...string) Binding {
	return Binding{Container: container, Frames: frames}
}

// IsExplicit is false for positional bindings.
func (b Binding) IsExplicit() bool {
	return len(b.Frames) > 0
}

// FrameSelector returns the selector for frame i (1-based).
func (b Binding) FrameSelector(i int) string {
	if b.IsExplicit() {
		return b.Frames[i-1]
	}
	return fmt.Sprintf("%s > :nth-child(%d)", strings.TrimSpace(b.Container), i)
}

// ChildrenSelector selects all frame elements at once.
func (b Binding) ChildrenSelector() string {
	if b.IsExplicit() {
		return strings.Join(b.Frames, ", ")
	}
	return strings.TrimSpace(b.Container) + " > *"
}

// check validates the binding for n frames. Every selector has to compile.
func (b Binding) check(n int) error {
	if !b.IsExplicit() {
		if strings.TrimSpace(b.Container) == "" {
			return frames.InvalidArgument("container", b.Container, "positional binding needs a container selector")
		}
		if _, err := cascadia.Compile(b.Container); err != nil {
			return frames.InvalidArgument("container", b.Container, err.Error())
		}
		return nil
	}
	if len(b.Frames) != n {
		return frames.InvalidArgument("frames", len(b.Frames),
			fmt.Sprintf("explicit binding must name exactly %d frame selectors", n))
	}
	for i, sel := range b.Frames {
		if _, err := cascadia.Compile(sel); err != nil {
			return frames.InvalidArgument("frames", sel, fmt.Sprintf("frame %d: %v", i+1, err))
		}
	}
	return nil
}
