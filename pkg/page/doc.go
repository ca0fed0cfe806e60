// Package page defines the host-platform contracts the sticky engine is
// wired to.
//
// The engine itself never touches a real layout tree. Everything it needs
// from the host — box sizes, absolute positions, scroll offsets, change
// notifications, frame scheduling, and style writes — goes through the small
// interfaces in this package. A host adapter (a browser bridge, a terminal
// renderer, or the deterministic simulator in page/sim) implements Page and
// hands it to sticky.New.
//
// # Contracts
//
// The interfaces mirror the platform primitives they abstract:
//
//   - Measurer walks the offset-parent chain to produce absolute page
//     coordinates. The walk itself is host-specific and out of engine scope.
//   - SizeObserver must notify on content-box changes of the observed element
//     and every ancestor up to the root, because a container can resize
//     without its child resizing and vice versa.
//   - ScrollSource must not block the host's scrolling; registrations are
//     expected to be passive.
//   - FrameScheduler runs a callback once before the next visual update and
//     holds at most one pending registration at a time.
//
// # Usage
//
//	ctrl, err := sticky.New(sticky.Options{
//	    Page:      host,         // implements page.Page
//	    Container: containerEl,
//	    Element:   sidebarEl,
//	})
package page
