package sticky

import "github.com/sidepin/sidepin/pkg/page"

// =============================================================================
// Rules - Partial Style Computation
// =============================================================================

// Rules is the partial style record produced by Resolve for one cycle.
// Unset fields fall back to the caller's baseline when merged, so a zero
// Rules value means "restore everything to the default".
//
// Top, Left, Width, and TranslateY are pointers because zero is a
// meaningful value for each of them.
type Rules struct {
	Position   string   `json:"position,omitempty"`
	Top        *float64 `json:"top,omitempty"`
	Left       *float64 `json:"left,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	TranslateY *float64 `json:"translate_y,omitempty"`
}

// Merge combines the partial rules with the baseline into the complete set
// of tracked style properties. Every property is set each cycle, either
// from the rules or from the baseline — never left at a prior cycle's
// stale value.
func (r Rules) Merge(disabledPosition string) page.Style {
	st := page.Style{Position: disabledPosition}
	if r.Position != "" {
		st.Position = r.Position
	}
	if r.Top != nil {
		st.Top = page.Px(*r.Top)
	}
	if r.Left != nil {
		st.Left = page.Px(*r.Left)
	}
	if r.Width != nil {
		st.Width = page.Px(*r.Width)
	}
	if r.TranslateY != nil {
		st.Transform = page.Translate3D(*r.TranslateY)
	}
	return st
}

// Positions written by the resolver.
const (
	positionFixed    = "fixed"
	positionSticky   = "sticky"
	positionRelative = "relative"

	// containerPositionDefault is what the container's position is reset to
	// whenever it is not serving as a sticky anchor.
	containerPositionDefault = "initial"
)

// ContainerPosition returns the position the bounding container itself
// needs for the given state. Only StateContainerBottom anchors the sticky
// child to the container and requires "relative"; every other state leaves
// the container alone.
func ContainerPosition(state State) string {
	if state == StateContainerBottom {
		return positionRelative
	}
	return containerPositionDefault
}

// =============================================================================
// Resolver
// =============================================================================

// Resolve maps a layout state to its partial style rules and the updated
// translate offset. It is a pure function: identical inputs always yield
// identical rules.
//
// prevState and prev matter only when entering StateTranslate — the offset
// is derived from the state being exited so the element does not jump:
//
//   - exiting StateColliderTop: the element stays where the band top left it.
//   - exiting StateColliderBottom: the element's bottom stays at the band
//     bottom, using the element height it had when anchored.
//   - exiting StateContainerBottom: the element stays at its container-bottom
//     resting offset.
//
// StateRest never reaches the resolver; the controller keeps the previous
// rules applied. Calling Resolve with StateRest returns the zero rules and
// the unchanged offset.
func Resolve(state State, cur Snapshot, prevState State, prev Snapshot, spaces Spaces, prevTranslate float64) (Rules, float64) {
	switch state {
	case StateContainerBottom:
		ty := cur.MaxTranslate()
		top := spaces.Top
		left := 0.0
		return Rules{
			Position: positionSticky,
			Top:      &top,
			Left:     &left,
			Width:    &cur.ContainerWidth,
		}, ty

	case StateColliderBottom:
		top := cur.ColliderHeight + spaces.Top - cur.ElementHeight
		left := cur.ContainerLeft - cur.ScrollX
		return Rules{
			Position: positionFixed,
			Top:      &top,
			Left:     &left,
			Width:    &cur.ContainerWidth,
		}, 0

	case StateColliderTop:
		top := spaces.Top
		left := cur.ContainerLeft - cur.ScrollX
		return Rules{
			Position: positionFixed,
			Top:      &top,
			Left:     &left,
			Width:    &cur.ContainerWidth,
		}, 0

	case StateTranslate:
		ty := translateFrom(prevState, cur, prev, prevTranslate)
		return Rules{
			Position:   positionRelative,
			TranslateY: &ty,
		}, ty

	case StateRest:
		return Rules{}, prevTranslate

	default: // StateNone
		return Rules{}, 0
	}
}

// translateFrom computes the hand-off offset when entering StateTranslate
// from the given exited state.
func translateFrom(exited State, cur, prev Snapshot, prevTranslate float64) float64 {
	switch exited {
	case StateColliderTop:
		return cur.ColliderTop - cur.ContainerTop
	case StateColliderBottom:
		return cur.ColliderTop + cur.ColliderHeight - cur.ContainerTop - prev.ElementHeight
	case StateContainerBottom:
		return cur.ContainerHeight - cur.ElementHeight
	default:
		return prevTranslate
	}
}
