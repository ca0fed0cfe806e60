package page

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Element Handles
// =============================================================================

// Element is an opaque handle to a box in the host layout tree.
// The engine only ever asks an element for its current content size;
// everything else (position, styling) goes through the Page.
type Element interface {
	// Size returns the current width and height of the element's box.
	Size() (width, height float64)
}

// =============================================================================
// Read Contracts
// =============================================================================

// Viewport reports the state of the root scrolling area.
type Viewport interface {
	// ScrollOffset returns the current horizontal and vertical scroll
	// offsets of the root scrolling area.
	ScrollOffset() (x, y float64)

	// Size returns the visible width and height of the viewport.
	Size() (width, height float64)
}

// Measurer computes absolute page coordinates for an element by walking
// its offset-parent chain and accumulating offsets until the root.
type Measurer interface {
	AbsolutePosition(el Element) (left, top float64)
}

// =============================================================================
// Notification Contracts
// =============================================================================

// SizeObserver notifies on content-box size changes of el and every
// ancestor up to the root. The returned cancel function unregisters the
// observation and is safe to call more than once.
type SizeObserver interface {
	ObserveSize(el Element, fn func()) (cancel func())
}

// ScrollSource notifies on every scroll position change of the root
// scrolling area. Registration must not block scrolling. The returned
// cancel function unregisters the subscription.
type ScrollSource interface {
	SubscribeScroll(fn func()) (cancel func())
}

// FrameScheduler invokes fn once before the next visual update. At most one
// registration is pending at a time; the caller is responsible for not
// scheduling again until the pending callback has run.
type FrameScheduler interface {
	Schedule(fn func())
}

// =============================================================================
// Write Contract
// =============================================================================

// Styler applies computed styles back to the host layout tree.
type Styler interface {
	// ApplyStyle sets all five tracked style properties on el at once.
	// Properties absent from a partial computation have already been merged
	// with the configured baseline by the caller; the host never sees a
	// partial write.
	ApplyStyle(el Element, style Style)

	// SetPosition sets only the position property of el. Used for the
	// bounding container, whose other properties are never touched.
	SetPosition(el Element, position string)
}

// Page bundles every host contract the sticky engine consumes.
type Page interface {
	Viewport
	Measurer
	SizeObserver
	ScrollSource
	FrameScheduler
	Styler
}

// =============================================================================
// Style
// =============================================================================

// Style is the complete set of tracked style properties written to the
// managed element each cycle. Length fields hold CSS-style pixel strings
// (e.g. "64px") or are empty for "unset".
type Style struct {
	Position  string
	Top       string
	Left      string
	Width     string
	Transform string
}

// Px formats a length as a CSS pixel value. Whole numbers render without a
// fractional part ("64px", not "64.000000px").
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Translate3D formats a vertical translation as a translate3d transform.
// The 3d form is used to keep the element on its own compositing layer.
func Translate3D(y float64) string {
	return fmt.Sprintf("translate3d(0, %s, 0)", Px(y))
}

// String returns a compact one-line rendering for logs and traces.
func (s Style) String() string {
	parts := make([]string, 0, 5)
	add := func(name, v string) {
		if v != "" {
			parts = append(parts, name+"="+v)
		}
	}
	add("position", s.Position)
	add("top", s.Top)
	add("left", s.Left)
	add("width", s.Width)
	add("transform", s.Transform)
	if len(parts) == 0 {
		return "{}"
	}
	return strings.Join(parts, " ")
}
