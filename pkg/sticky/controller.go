package sticky

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/sidepin/sidepin/pkg/errors"
	"github.com/sidepin/sidepin/pkg/observability"
	"github.com/sidepin/sidepin/pkg/page"
)

// =============================================================================
// Options - Controller Configuration
// =============================================================================

// DefaultDisabledPosition is the position property the managed element
// falls back to whenever no sticky state applies.
const DefaultDisabledPosition = "initial"

// Options contains all configuration for a Controller.
type Options struct {
	// Page is the host adapter the controller reads from and writes to.
	Page page.Page

	// Container is the bounding element that defines the maximum travel
	// range for the managed element.
	Container page.Element

	// Element is the managed element being given sticky behavior.
	Element page.Element

	// SpaceTop and SpaceBottom are the viewport insets that shrink the
	// visible band. Both must be >= 0; both default to 0.
	SpaceTop    float64
	SpaceBottom float64

	// DisabledPosition is the baseline position property applied when no
	// sticky state is active. Defaults to DefaultDisabledPosition.
	DisabledPosition string

	// Logger receives debug-level transition and style logs. Defaults to a
	// discard logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Page == nil {
		return errors.New(errors.ErrCodeInvalidInput, "page is required")
	}
	if o.Container == nil {
		return errors.New(errors.ErrCodeInvalidInput, "container element is required")
	}
	if o.Element == nil {
		return errors.New(errors.ErrCodeInvalidInput, "managed element is required")
	}
	if err := errors.ValidateSpaces(o.SpaceTop, o.SpaceBottom); err != nil {
		return err
	}
	if o.DisabledPosition == "" {
		o.DisabledPosition = DefaultDisabledPosition
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// =============================================================================
// Controller
// =============================================================================

// Recompute cycle kinds, reported through the observability hooks.
const (
	cycleInitial = "initial"
	cycleResize  = "resize"
	cycleScroll  = "scroll"
)

// Controller orchestrates the engine: it owns the current and previous
// frames, coalesces host signals into at most one recompute per scheduled
// tick, and writes resolved styles back through the host.
//
// A Controller is not safe for concurrent use. All methods and all host
// notifications must be delivered from the same event loop; the coalescing
// guard makes the controller the single writer of the managed element's
// tracked style properties.
type Controller struct {
	opts   Options
	spaces Spaces

	enabled bool

	// Two-flag coalescing queue drained by one scheduled tick. New signals
	// arriving while a tick is pending only set flags.
	pendingResize bool
	pendingScroll bool
	scheduled     bool

	// prev is the committed frame of the last completed cycle.
	prev Frame

	cancels []func()
}

// New creates a Controller from the given options. The container and
// element must already be attached to the host page; measuring detached
// elements yields zero geometry, which is a documented precondition rather
// than a reported error.
func New(opts Options) (*Controller, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Controller{
		opts:   opts,
		spaces: Spaces{Top: opts.SpaceTop, Bottom: opts.SpaceBottom},
	}, nil
}

// Frame returns the last committed frame. Useful for inspection, traces,
// and tests.
func (c *Controller) Frame() Frame {
	return c.prev
}

// Spaces returns the viewport insets currently in force.
func (c *Controller) Spaces() Spaces {
	return c.spaces
}

// Enabled reports whether the controller is observing and computing.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// =============================================================================
// Public Operations
// =============================================================================

// Enable begins observing scroll and size changes and applies an initial
// layout pass. Enable is idempotent.
func (c *Controller) Enable() {
	if c.enabled {
		return
	}
	c.enabled = true

	c.cancels = append(c.cancels,
		c.opts.Page.SubscribeScroll(c.onScroll),
		c.opts.Page.ObserveSize(c.opts.Element, c.onResize),
		c.opts.Page.ObserveSize(c.opts.Container, c.onResize),
	)

	snap := c.measure()
	strat := Classify(snap.ContainerHeight, snap.ElementHeight, snap.ColliderHeight)
	c.prev = Frame{Snapshot: snap, Strategy: strat, State: StateNone}
	c.step(cycleInitial, snap, strat)
}

// Disable stops observing, cancels pending work, and resets the managed
// element's tracked style properties to the configured baseline, with the
// container's position reset too. A recompute callback already in flight
// becomes a no-op. Disable is idempotent.
func (c *Controller) Disable() {
	if !c.enabled {
		return
	}
	c.enabled = false
	c.pendingResize = false
	c.pendingScroll = false

	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil

	c.opts.Page.ApplyStyle(c.opts.Element, Rules{}.Merge(c.opts.DisabledPosition))
	c.opts.Page.SetPosition(c.opts.Container, containerPositionDefault)
	c.prev = Frame{}
}

// SpacesUpdate carries optional new values for the viewport insets. Nil
// fields leave the current value unchanged.
type SpacesUpdate struct {
	Top    *float64
	Bottom *float64
}

// UpdateSpaces changes the top/bottom viewport insets and, if the
// controller is enabled, forces an immediate geometry and layout recompute,
// bypassing the coalescing queue.
func (c *Controller) UpdateSpaces(u SpacesUpdate) error {
	top, bottom := c.spaces.Top, c.spaces.Bottom
	if u.Top != nil {
		top = *u.Top
	}
	if u.Bottom != nil {
		bottom = *u.Bottom
	}
	if err := errors.ValidateSpaces(top, bottom); err != nil {
		return err
	}
	c.spaces = Spaces{Top: top, Bottom: bottom}

	if c.enabled {
		snap := c.measure()
		strat := Classify(snap.ContainerHeight, snap.ElementHeight, snap.ColliderHeight)
		c.step(cycleResize, snap, strat)
	}
	return nil
}

// =============================================================================
// Signal Handling
// =============================================================================

func (c *Controller) onResize() {
	if !c.enabled {
		return
	}
	c.pendingResize = true
	c.scheduleTick()
}

func (c *Controller) onScroll() {
	if !c.enabled {
		return
	}
	c.pendingScroll = true
	c.scheduleTick()
}

// scheduleTick registers the drain callback unless one is already pending.
func (c *Controller) scheduleTick() {
	if c.scheduled {
		return
	}
	c.scheduled = true
	c.opts.Page.Schedule(c.tick)
}

// tick drains the coalescing queue: at most one recompute of each kind per
// tick, resize before scroll, because a resize invalidates geometry the
// scroll math depends on.
func (c *Controller) tick() {
	c.scheduled = false
	if !c.enabled {
		c.pendingResize = false
		c.pendingScroll = false
		return
	}
	if c.pendingResize {
		c.pendingResize = false
		snap := c.measure()
		strat := Classify(snap.ContainerHeight, snap.ElementHeight, snap.ColliderHeight)
		c.step(cycleResize, snap, strat)
	}
	if c.pendingScroll {
		c.pendingScroll = false
		snap := c.refreshScroll(c.prev.Snapshot)
		c.step(cycleScroll, snap, c.prev.Strategy)
	}
}

// =============================================================================
// Geometry
// =============================================================================

// measure takes a full geometry snapshot: container absolute position and
// size, element height, and viewport state.
func (c *Controller) measure() Snapshot {
	left, top := c.opts.Page.AbsolutePosition(c.opts.Container)
	cw, ch := c.opts.Container.Size()
	_, eh := c.opts.Element.Size()
	sx, sy := c.opts.Page.ScrollOffset()
	_, vh := c.opts.Page.Size()

	return Snapshot{
		ContainerLeft:   left,
		ContainerTop:    top,
		ContainerWidth:  cw,
		ContainerHeight: ch,
		ColliderTop:     sy + c.spaces.Top,
		ColliderHeight:  vh - c.spaces.Top - c.spaces.Bottom,
		ElementHeight:   eh,
		ScrollX:         sx,
		ScrollY:         sy,
	}
}

// refreshScroll updates only the cheap scroll-dependent fields of a
// snapshot. Container and element geometry carry over from the last full
// measure.
func (c *Controller) refreshScroll(base Snapshot) Snapshot {
	sx, sy := c.opts.Page.ScrollOffset()
	base.ScrollX = sx
	base.ScrollY = sy
	base.ColliderTop = sy + c.spaces.Top
	return base
}

// =============================================================================
// Cycle
// =============================================================================

// step runs one recompute cycle over a prepared snapshot and strategy:
// machine, resolver, style write, frame commit. Non-scroll cycles force a
// style refresh of the persisted state even when no transition fires —
// geometry the styles depend on (band height, spaces) can change without
// any transition rule noticing.
func (c *Controller) step(kind string, snap Snapshot, strat Strategy) {
	dir := DirectionOf(c.prev.Snapshot.ScrollY, snap.ScrollY)
	force := kind != cycleScroll
	observability.Controller().OnRecompute(kind, snap.ScrollY)

	if strat == StrategyNone {
		// Stickiness is impossible; re-render only on the way in.
		if c.prev.State != StateNone || force {
			c.logTransition(c.prev.State, StateNone, dir)
			c.apply(StateNone, Rules{}, 0)
		}
		c.prev = Frame{Snapshot: snap, Strategy: strat, State: StateNone}
		return
	}

	d := Next(Input{
		Prev:         c.prev.State,
		Cur:          snap,
		Last:         c.prev.Snapshot,
		Strategy:     strat,
		PrevStrategy: c.prev.Strategy,
		Direction:    dir,
		TranslateY:   c.prev.TranslateY,
	})

	if d.AdvanceStrategy {
		// Machine side effect: the strategy recorded for the adopted state
		// advances to the current one.
		c.prev.Strategy = strat
	}

	if d.Next == StateRest {
		if force {
			rules, ty := Resolve(c.prev.State, snap, c.prev.State, c.prev.Snapshot, c.spaces, c.prev.TranslateY)
			c.apply(c.prev.State, rules, ty)
			c.prev = Frame{Snapshot: snap, Strategy: strat, State: c.prev.State, TranslateY: ty}
			return
		}
		c.prev = Frame{
			Snapshot:   snap,
			Strategy:   strat,
			State:      c.prev.State,
			TranslateY: c.prev.TranslateY,
		}
		return
	}

	rules, ty := Resolve(d.Next, snap, c.prev.State, c.prev.Snapshot, c.spaces, c.prev.TranslateY)
	c.logTransition(c.prev.State, d.Next, dir)
	c.apply(d.Next, rules, ty)
	c.prev = Frame{Snapshot: snap, Strategy: strat, State: d.Next, TranslateY: ty}
}

// apply merges rules with the baseline and writes all five tracked
// properties to the element, plus the container position for the state.
func (c *Controller) apply(state State, rules Rules, translateY float64) {
	style := rules.Merge(c.opts.DisabledPosition)
	c.opts.Page.ApplyStyle(c.opts.Element, style)
	c.opts.Page.SetPosition(c.opts.Container, ContainerPosition(state))

	c.opts.Logger.Debug("apply", "state", state, "translate_y", translateY, "style", style)
	observability.Controller().OnStyleApply(state.String(), translateY)
}

func (c *Controller) logTransition(from, to State, dir Direction) {
	c.opts.Logger.Debug("transition", "from", from, "to", to, "direction", dir)
	observability.Controller().OnTransition(from.String(), to.String(), dir.String())
}
