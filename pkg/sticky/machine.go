package sticky

// =============================================================================
// Transition Machine
// =============================================================================

// Input bundles everything one transition evaluation reads. Cur is the
// fresh snapshot for this cycle, Last the committed snapshot of the
// previous cycle.
type Input struct {
	Prev State

	Cur  Snapshot
	Last Snapshot

	// Strategy is the strategy classified for this cycle; PrevStrategy is
	// the strategy committed with the previous frame (the strategy in force
	// when Prev was adopted). They differ only on the first cycle after a
	// reclassification.
	Strategy     Strategy
	PrevStrategy Strategy

	Direction Direction

	// TranslateY is the live, not-yet-committed offset of the element
	// within its container. Meaningful when Prev is StateTranslate.
	TranslateY float64
}

// Decision is the outcome of one transition evaluation. Next is StateRest
// when no rule matched, meaning the previously rendered state stays applied.
//
// AdvanceStrategy is an explicit machine side effect: when set, the caller
// must record Input.Strategy as the strategy in force for the adopted state
// before committing the frame. It accompanies the element-growth exit from
// StateColliderTop.
type Decision struct {
	Next            State
	AdvanceStrategy bool
}

// rest is the no-transition decision.
var rest = Decision{Next: StateRest}

// Next evaluates the transition table for one cycle. Conditions are tested
// in listed order and the first match wins; if none match the result is
// StateRest. Callers must only invoke Next when Input.Strategy is not
// StrategyNone — the controller short-circuits to StateNone otherwise.
//
// Each state's exit conditions are phrased relative to that state's own
// docking point, which keeps the rule count linear in the number of states.
// The ordering encodes priority: leaving the container entirely always
// wins, and docking at the far container edge beats all translate logic.
func Next(in Input) Decision {
	switch in.Prev {
	case StateColliderTop:
		return nextFromColliderTop(in)
	case StateColliderBottom:
		return nextFromColliderBottom(in)
	case StateContainerBottom:
		return nextFromContainerBottom(in)
	case StateTranslate:
		return nextFromTranslate(in)
	default:
		return nextFromNone(in)
	}
}

// nextFromColliderTop handles exits from the band-top dock.
func nextFromColliderTop(in Input) Decision {
	cur := in.Cur
	switch {
	// Scrolled back above the container entirely.
	case cur.ColliderTop <= cur.ContainerTop:
		return Decision{Next: StateNone}

	// The element's bottom edge would exit the container bottom; dock to
	// the container bottom instead.
	case cur.ColliderTop+cur.ElementHeight >= cur.ContainerBottom():
		return Decision{Next: StateContainerBottom}

	// The element grew past the band since this dock was adopted under
	// StrategyTop (content expanded). Start sliding, and advance the
	// recorded strategy so the check does not re-fire.
	case in.PrevStrategy == StrategyTop && cur.ElementHeight > cur.ColliderHeight:
		return Decision{Next: StateTranslate, AdvanceStrategy: true}

	// Under StrategyBoth a downward scroll must start revealing the
	// element's bottom before it can dock there.
	case in.Strategy == StrategyBoth && in.Direction == DirectionDown:
		return Decision{Next: StateTranslate}

	// Horizontal or container movement: re-affirm the same state to
	// refresh left/width-dependent styling.
	case cur.viewChanged(in.Last):
		return Decision{Next: StateColliderTop}
	}
	return rest
}

// nextFromColliderBottom handles exits from the band-bottom dock.
func nextFromColliderBottom(in Input) Decision {
	cur := in.Cur
	switch {
	case cur.ColliderTop <= cur.ContainerTop:
		return Decision{Next: StateNone}

	// The band's bottom edge reached the container bottom.
	case cur.ColliderTop+cur.ColliderHeight >= cur.ContainerBottom():
		return Decision{Next: StateContainerBottom}

	// The element shrank to fit the band; no need to anchor at the bottom.
	case cur.ElementHeight <= cur.ColliderHeight:
		return Decision{Next: StateColliderTop}

	// Upward scroll, or an element height change, invalidates the bottom
	// anchor; slide until a dock condition holds again.
	case in.Direction == DirectionUp || cur.ElementHeight != in.Last.ElementHeight:
		return Decision{Next: StateTranslate}

	case cur.viewChanged(in.Last):
		return Decision{Next: StateColliderBottom}
	}
	return rest
}

// nextFromContainerBottom handles exits from the container-bottom dock.
func nextFromContainerBottom(in Input) Decision {
	cur := in.Cur
	switch {
	case cur.ColliderTop <= cur.ContainerTop:
		return Decision{Next: StateNone}

	// Scrolling up with the band above the element's resting offset.
	case in.Direction == DirectionUp && cur.ColliderTop <= cur.ContainerTop+cur.MaxTranslate():
		return Decision{Next: StateColliderTop}

	// The element now fits between the band top and the container bottom.
	case cur.ElementHeight < cur.ContainerBottom()-cur.ColliderTop:
		return Decision{Next: StateColliderTop}

	// Width-dependent style refresh only.
	case cur.ContainerWidth != in.Last.ContainerWidth:
		return Decision{Next: StateContainerBottom}
	}
	return rest
}

// nextFromNone handles entries from default flow.
func nextFromNone(in Input) Decision {
	cur := in.Cur
	switch {
	case cur.ColliderTop+cur.ElementHeight >= cur.ContainerBottom():
		return Decision{Next: StateContainerBottom}

	case cur.ElementHeight < cur.ColliderHeight && cur.ColliderTop >= cur.ContainerTop:
		return Decision{Next: StateColliderTop}

	case in.Strategy == StrategyBoth && cur.ColliderTop+cur.ColliderHeight >= cur.ContainerTop+cur.ElementHeight:
		return Decision{Next: StateColliderBottom}
	}
	return rest
}

// nextFromTranslate handles exits from the sliding state. Input.TranslateY
// is the offset the element currently sits at.
func nextFromTranslate(in Input) Decision {
	cur := in.Cur
	switch {
	// No room left below the current offset; dock to the container bottom.
	case cur.ContainerHeight-in.TranslateY < cur.ElementHeight:
		return Decision{Next: StateContainerBottom}

	// The element fits the band again, or the band top caught up with the
	// element's top edge.
	case cur.ElementHeight < cur.ColliderHeight || cur.ColliderTop <= cur.ContainerTop+in.TranslateY:
		return Decision{Next: StateColliderTop}

	// The band bottom passed the element's bottom edge with travel room
	// still available below.
	case in.TranslateY < cur.MaxTranslate() && cur.ColliderTop+cur.ColliderHeight > cur.ContainerTop+in.TranslateY+cur.ElementHeight:
		return Decision{Next: StateColliderBottom}
	}
	return rest
}
