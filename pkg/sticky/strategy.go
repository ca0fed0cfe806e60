package sticky

// Strategy is the coarse classification of which sticky behaviors are
// geometrically possible for the current container, element, and band sizes.
// It is derived purely from heights and recomputed on every resize cycle.
type Strategy int

// Strategies, in classification order.
const (
	// StrategyNone: the element is at least as tall as its container, so it
	// cannot move meaningfully inside it. No sticky effect is possible.
	StrategyNone Strategy = iota

	// StrategyTop: the element fits entirely within the visible band. Once
	// it reaches the band it docks at the top and never needs to move again.
	StrategyTop

	// StrategyBoth: the element is shorter than its container but taller
	// than the visible band. It must be able to dock at both band edges so
	// that both of its ends remain reachable while scrolling.
	StrategyBoth
)

// Classify decides which strategy applies for the given heights.
//
// The rules are ordered and the first match wins:
//
//  1. containerHeight <= elementHeight: StrategyNone. The comparison is
//     deliberately non-strict — an element exactly as tall as its container
//     has no room to travel.
//  2. colliderHeight < elementHeight: StrategyBoth.
//  3. otherwise: StrategyTop.
//
// Classify is total: every input, including degenerate geometry such as a
// negative collider height, reaches exactly one branch.
func Classify(containerHeight, elementHeight, colliderHeight float64) Strategy {
	switch {
	case containerHeight <= elementHeight:
		return StrategyNone
	case colliderHeight < elementHeight:
		return StrategyBoth
	default:
		return StrategyTop
	}
}

// String returns the lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyTop:
		return "top"
	case StrategyBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseStrategy converts a lowercase strategy name back to a Strategy.
// Unknown names map to StrategyNone, keeping the parse total.
func ParseStrategy(s string) Strategy {
	switch s {
	case "top":
		return StrategyTop
	case "both":
		return StrategyBoth
	default:
		return StrategyNone
	}
}
