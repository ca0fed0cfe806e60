package sticky

// =============================================================================
// Snapshot - Per-Cycle Geometry
// =============================================================================

// Snapshot captures everything the engine needs to know about the world at
// the start of one recompute cycle. It is immutable once taken: the
// controller builds a fresh value each cycle and keeps the previous one for
// delta comparisons.
//
// All coordinates are absolute page coordinates. The collider is the
// vertical slice of the viewport reduced by the configured top and bottom
// spaces; ColliderHeight can legitimately be negative when the spaces exceed
// the viewport height, which the transition rules treat as a zero usable
// band rather than an error.
type Snapshot struct {
	// Bounding container, absolute page coordinates.
	ContainerLeft   float64
	ContainerTop    float64
	ContainerWidth  float64
	ContainerHeight float64

	// Visible band. ColliderTop = scrollY + spaceTop;
	// ColliderHeight = viewport height - spaceTop - spaceBottom.
	ColliderTop    float64
	ColliderHeight float64

	// Current measured height of the managed element. Changes independently
	// of the container (content can expand or collapse).
	ElementHeight float64

	// Root scrolling area offsets.
	ScrollX float64
	ScrollY float64
}

// ContainerBottom returns the absolute page coordinate of the container's
// bottom edge.
func (s Snapshot) ContainerBottom() float64 {
	return s.ContainerTop + s.ContainerHeight
}

// MaxTranslate returns the largest legal downward offset of the element
// within its container. Negative when the element is taller than the
// container, in which case no strategy applies anyway.
func (s Snapshot) MaxTranslate() float64 {
	return s.ContainerHeight - s.ElementHeight
}

// viewChanged reports whether any of the style-relevant horizontal or
// container inputs moved since the previous snapshot. The ColliderTop and
// ColliderBottom states re-affirm themselves when this happens so that
// left/width-dependent styling is refreshed.
func (s Snapshot) viewChanged(prev Snapshot) bool {
	return s.ScrollX != prev.ScrollX ||
		s.ContainerLeft != prev.ContainerLeft ||
		s.ContainerWidth != prev.ContainerWidth ||
		s.ContainerTop != prev.ContainerTop
}

// =============================================================================
// Spaces - Configured Viewport Insets
// =============================================================================

// Spaces are the configured top and bottom viewport insets that shrink the
// visible band. Both are distances in pixels and must be non-negative.
type Spaces struct {
	Top    float64
	Bottom float64
}

// =============================================================================
// Direction - Vertical Scroll Delta
// =============================================================================

// Direction is the vertical scroll direction since the previous cycle.
type Direction int

// Scroll directions.
const (
	// DirectionNone means no vertical delta since the last cycle, either
	// because nothing scrolled or because the scroll was horizontal only.
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// DirectionOf derives the scroll direction from two vertical offsets.
func DirectionOf(prevY, curY float64) Direction {
	switch {
	case curY > prevY:
		return DirectionDown
	case curY < prevY:
		return DirectionUp
	default:
		return DirectionNone
	}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection converts a lowercase direction name back to a Direction.
// Unknown names map to DirectionNone, keeping the parse total.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirectionUp
	case "down":
		return DirectionDown
	default:
		return DirectionNone
	}
}
