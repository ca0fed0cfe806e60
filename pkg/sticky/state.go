package sticky

// State is the fine-grained positioning mode currently applied to the
// managed element. States are mutually exclusive; the persisted previous
// state is always one of the five concrete states, never StateRest.
type State int

// Layout states.
const (
	// StateNone: default flow, no stickiness applied.
	StateNone State = iota

	// StateColliderTop: fixed to the top of the visible band.
	StateColliderTop

	// StateColliderBottom: fixed to the bottom of the visible band.
	StateColliderBottom

	// StateTranslate: offset within the container via a transform and
	// scrolling normally with the page. Used to slide a band-overflowing
	// element between its two docking points without a visual jump.
	StateTranslate

	// StateContainerBottom: stuck to the bottom of the container, scrolling
	// with the page via native sticky positioning anchored to the container.
	StateContainerBottom

	// StateRest is the sentinel meaning "no transition fires this cycle" —
	// the previously rendered state stays applied. It is a machine output
	// only and is never persisted as the previous state.
	StateRest
)

// valid state names, used by String and ParseState.
const (
	stateNameNone            = "none"
	stateNameColliderTop     = "collider-top"
	stateNameColliderBottom  = "collider-bottom"
	stateNameTranslate       = "translate"
	stateNameContainerBottom = "container-bottom"
	stateNameRest            = "rest"
)

// String returns the kebab-case name of the state.
func (s State) String() string {
	switch s {
	case StateColliderTop:
		return stateNameColliderTop
	case StateColliderBottom:
		return stateNameColliderBottom
	case StateTranslate:
		return stateNameTranslate
	case StateContainerBottom:
		return stateNameContainerBottom
	case StateRest:
		return stateNameRest
	default:
		return stateNameNone
	}
}

// ParseState converts a kebab-case state name back to a State. The second
// return value reports whether the name was recognized.
func ParseState(s string) (State, bool) {
	switch s {
	case stateNameNone:
		return StateNone, true
	case stateNameColliderTop:
		return StateColliderTop, true
	case stateNameColliderBottom:
		return StateColliderBottom, true
	case stateNameTranslate:
		return StateTranslate, true
	case stateNameContainerBottom:
		return StateContainerBottom, true
	case stateNameRest:
		return StateRest, true
	default:
		return StateNone, false
	}
}
