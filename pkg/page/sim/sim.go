// Package sim provides a deterministic in-memory implementation of
// page.Page for tests, traces, and demos.
//
// A sim page is a tree of boxes with offset-parent coordinates, a
// scriptable viewport, and a manual frame pump. Nothing happens
// spontaneously: scroll and resize notifications fire synchronously from
// SetScroll/Resize calls, and scheduled frame callbacks run only when
// Step is called. That makes every engine cycle reproducible and
// assertable.
//
// # Usage
//
//	p := sim.NewPage(1024, 800)
//	container := p.NewBox(nil, 100, 200, 300, 3000)
//	sidebar := p.NewBox(container, 0, 0, 300, 500)
//
//	p.SetScroll(0, 400) // notifies scroll subscribers
//	p.Step()            // runs the pending scheduled callback
//	_ = sidebar.Style() // last applied style
package sim

import "github.com/sidepin/sidepin/pkg/page"

// =============================================================================
// Box
// =============================================================================

// Box is a rectangle in the simulated page, positioned relative to its
// offset parent (nil parent means the document origin). It implements
// page.Element and records the styles the engine writes to it.
type Box struct {
	p      *Page
	parent *Box

	offsetLeft float64
	offsetTop  float64
	width      float64
	height     float64

	style    page.Style
	position string
}

// Size returns the box's current width and height.
func (b *Box) Size() (width, height float64) {
	return b.width, b.height
}

// Resize changes the box's size and notifies every size observation whose
// observed element is this box or one of its descendants, mirroring the
// ancestor-inclusive observation contract.
func (b *Box) Resize(width, height float64) {
	b.width = width
	b.height = height
	b.p.notifySize(b)
}

// Move changes the box's offset relative to its parent. Moves do not fire
// size observations; the host would fold them into the next resize or
// scroll signal.
func (b *Box) Move(offsetLeft, offsetTop float64) {
	b.offsetLeft = offsetLeft
	b.offsetTop = offsetTop
}

// Style returns the last style the engine applied to this box.
func (b *Box) Style() page.Style {
	return b.style
}

// Position returns the last position written via SetPosition. Empty until
// the engine first touches the box as a container.
func (b *Box) Position() string {
	return b.position
}

// hasAncestor reports whether anc is b or one of b's offset parents.
func (b *Box) hasAncestor(anc *Box) bool {
	for cur := b; cur != nil; cur = cur.parent {
		if cur == anc {
			return true
		}
	}
	return false
}

// =============================================================================
// Page
// =============================================================================

type sizeObservation struct {
	el *Box
	fn func()
}

// Page is a deterministic in-memory page. It implements page.Page.
type Page struct {
	viewportWidth  float64
	viewportHeight float64
	scrollX        float64
	scrollY        float64

	nextID     int
	scrollSubs map[int]func()
	sizeObs    map[int]sizeObservation

	pending func()

	// scheduleCount counts Schedule calls since creation, for asserting
	// the engine's one-pending-callback guard.
	scheduleCount int
}

// NewPage creates a page with the given viewport size and scroll offset
// (0, 0).
func NewPage(viewportWidth, viewportHeight float64) *Page {
	return &Page{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		scrollSubs:     map[int]func(){},
		sizeObs:        map[int]sizeObservation{},
	}
}

// NewBox adds a box to the page. parent nil positions the box relative to
// the document origin.
func (p *Page) NewBox(parent *Box, offsetLeft, offsetTop, width, height float64) *Box {
	return &Box{
		p:          p,
		parent:     parent,
		offsetLeft: offsetLeft,
		offsetTop:  offsetTop,
		width:      width,
		height:     height,
	}
}

// =============================================================================
// Scripting
// =============================================================================

// SetScroll moves the viewport scroll offset and synchronously notifies
// every scroll subscriber.
func (p *Page) SetScroll(x, y float64) {
	p.scrollX = x
	p.scrollY = y
	for _, fn := range p.scrollSubs {
		fn()
	}
}

// ScrollBy moves the vertical scroll offset by delta.
func (p *Page) ScrollBy(delta float64) {
	p.SetScroll(p.scrollX, p.scrollY+delta)
}

// SetViewportSize changes the viewport size and notifies every size
// observation: the root scrolling area is an ancestor of everything.
func (p *Page) SetViewportSize(width, height float64) {
	p.viewportWidth = width
	p.viewportHeight = height
	for _, obs := range p.sizeObs {
		obs.fn()
	}
}

// Step runs the pending scheduled frame callback, if any, and returns
// whether one ran. The callback is cleared before it runs so it can
// schedule a successor.
func (p *Page) Step() bool {
	fn := p.pending
	if fn == nil {
		return false
	}
	p.pending = nil
	fn()
	return true
}

// HasPendingFrame reports whether a scheduled callback is waiting for Step.
func (p *Page) HasPendingFrame() bool {
	return p.pending != nil
}

// ScheduleCount returns the number of Schedule calls seen so far.
func (p *Page) ScheduleCount() int {
	return p.scheduleCount
}

// notifySize fires every observation watching changed or a descendant of
// changed.
func (p *Page) notifySize(changed *Box) {
	for _, obs := range p.sizeObs {
		if obs.el.hasAncestor(changed) {
			obs.fn()
		}
	}
}

// =============================================================================
// page.Page Implementation
// =============================================================================

// ScrollOffset returns the current scroll offsets.
func (p *Page) ScrollOffset() (x, y float64) {
	return p.scrollX, p.scrollY
}

// Size returns the viewport size.
func (p *Page) Size() (width, height float64) {
	return p.viewportWidth, p.viewportHeight
}

// AbsolutePosition walks the offset-parent chain and accumulates offsets
// until the document origin.
func (p *Page) AbsolutePosition(el page.Element) (left, top float64) {
	b, ok := el.(*Box)
	if !ok {
		return 0, 0
	}
	for cur := b; cur != nil; cur = cur.parent {
		left += cur.offsetLeft
		top += cur.offsetTop
	}
	return left, top
}

// ObserveSize registers fn for size changes of el and its ancestors.
func (p *Page) ObserveSize(el page.Element, fn func()) (cancel func()) {
	b, ok := el.(*Box)
	if !ok {
		return func() {}
	}
	id := p.nextID
	p.nextID++
	p.sizeObs[id] = sizeObservation{el: b, fn: fn}
	return func() { delete(p.sizeObs, id) }
}

// SubscribeScroll registers fn for scroll offset changes.
func (p *Page) SubscribeScroll(fn func()) (cancel func()) {
	id := p.nextID
	p.nextID++
	p.scrollSubs[id] = fn
	return func() { delete(p.scrollSubs, id) }
}

// Schedule registers fn to run on the next Step. The engine guarantees at
// most one pending registration; a second registration before Step
// replaces the first, which a conforming caller never triggers.
func (p *Page) Schedule(fn func()) {
	p.scheduleCount++
	p.pending = fn
}

// ApplyStyle records the style on the box.
func (p *Page) ApplyStyle(el page.Element, style page.Style) {
	if b, ok := el.(*Box); ok {
		b.style = style
	}
}

// SetPosition records the position on the box.
func (p *Page) SetPosition(el page.Element, position string) {
	if b, ok := el.(*Box); ok {
		b.position = position
	}
}
