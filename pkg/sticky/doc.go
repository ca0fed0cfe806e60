// Package sticky implements scroll-aware sticky positioning for a managed
// element inside a bounding container.
//
// Native sticky positioning pins an element to the viewport and nothing
// else. This engine goes further: when the element is taller than the
// visible band it is also translated within its container as the page
// scrolls, so the whole element can be read. The engine is pure geometry —
// it never touches a real layout tree. All platform access goes through the
// contracts in package page.
//
// # Architecture
//
// The engine is a closed state machine evaluated once per coalesced
// scroll/resize tick:
//
//  1. Snapshot: read container/element/viewport geometry into an immutable
//     Snapshot value.
//  2. Classify: decide which Strategy (None, Top, Both) is geometrically
//     possible for the current sizes.
//  3. Next: compute the next State from the previous frame, the fresh
//     snapshot, and the scroll direction. Rest means "no change".
//  4. Resolve: map the new State to partial style Rules and an updated
//     translate offset, merge with the configured baseline, and write the
//     result back through the host.
//
// Classify, Next, and Resolve are pure functions; the Controller owns the
// two Frame values (current and previous) that carry state between ticks.
//
// # States
//
//   - None: default flow, no stickiness applied.
//   - ColliderTop: fixed to the top of the visible band.
//   - ColliderBottom: fixed to the bottom of the visible band.
//   - Translate: offset within the container, scrolling with the page.
//   - ContainerBottom: stuck to the container's bottom edge via native
//     sticky positioning.
//   - Rest: sentinel for "no transition this cycle"; never persisted.
//
// # Usage
//
//	ctrl, err := sticky.New(sticky.Options{
//	    Page:      host,
//	    Container: container,
//	    Element:   sidebar,
//	    SpaceTop:  64,
//	})
//	if err != nil {
//	    return err
//	}
//	ctrl.Enable()
//	defer ctrl.Disable()
//
// The controller is single-threaded by design: Enable, Disable,
// UpdateSpaces, and every host notification must be delivered from the
// host's event loop. The coalescing guard ensures at most one recompute per
// scheduled frame.
package sticky
