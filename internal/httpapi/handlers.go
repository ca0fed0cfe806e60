package httpapi

import (
	"net/http"

	"github.com/sidepin/sidepin/pkg/errors"
	"github.com/sidepin/sidepin/pkg/sticky"
)

// =============================================================================
// Wire Types
// =============================================================================

// wireSnapshot is the JSON shape of a geometry snapshot.
type wireSnapshot struct {
	ContainerLeft   float64 `json:"container_left"`
	ContainerTop    float64 `json:"container_top"`
	ContainerWidth  float64 `json:"container_width"`
	ContainerHeight float64 `json:"container_height"`
	ColliderTop     float64 `json:"collider_top"`
	ColliderHeight  float64 `json:"collider_height"`
	ElementHeight   float64 `json:"element_height"`
	ScrollX         float64 `json:"scroll_x"`
	ScrollY         float64 `json:"scroll_y"`
}

func (w wireSnapshot) snapshot() sticky.Snapshot {
	return sticky.Snapshot{
		ContainerLeft:   w.ContainerLeft,
		ContainerTop:    w.ContainerTop,
		ContainerWidth:  w.ContainerWidth,
		ContainerHeight: w.ContainerHeight,
		ColliderTop:     w.ColliderTop,
		ColliderHeight:  w.ColliderHeight,
		ElementHeight:   w.ElementHeight,
		ScrollX:         w.ScrollX,
		ScrollY:         w.ScrollY,
	}
}

// validate checks that every snapshot field is finite and that lengths are
// non-negative. ColliderHeight may be negative (insets can exceed the
// viewport) so it only needs to be finite.
func (w wireSnapshot) validate() error {
	for name, v := range map[string]float64{
		"container_width":  w.ContainerWidth,
		"container_height": w.ContainerHeight,
		"element_height":   w.ElementHeight,
	} {
		if err := errors.ValidateLength(name, v); err != nil {
			return err
		}
	}
	for name, v := range map[string]float64{
		"container_left":  w.ContainerLeft,
		"container_top":   w.ContainerTop,
		"collider_top":    w.ColliderTop,
		"collider_height": w.ColliderHeight,
		"scroll_x":        w.ScrollX,
		"scroll_y":        w.ScrollY,
	} {
		if err := errors.ValidateCoordinate(name, v); err != nil {
			return err
		}
	}
	return nil
}

// parseState parses a wire state name, rejecting unknown names and the
// rest sentinel, which is a machine output, not a valid input state.
func parseState(field, name string) (sticky.State, error) {
	state, ok := sticky.ParseState(name)
	if !ok {
		return sticky.StateNone, errors.New(errors.ErrCodeInvalidState, "%s: unknown state %q", field, name)
	}
	if state == sticky.StateRest {
		return sticky.StateNone, errors.New(errors.ErrCodeInvalidState, "%s: %q is not a persistable state", field, name)
	}
	return state, nil
}

// =============================================================================
// POST /v1/classify
// =============================================================================

type classifyRequest struct {
	ContainerHeight float64 `json:"container_height"`
	ElementHeight   float64 `json:"element_height"`
	ColliderHeight  float64 `json:"collider_height"`
}

type classifyResponse struct {
	Strategy string `json:"strategy"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	if err := errors.ValidateLength("container_height", req.ContainerHeight); err != nil {
		s.respondError(w, err)
		return
	}
	if err := errors.ValidateLength("element_height", req.ElementHeight); err != nil {
		s.respondError(w, err)
		return
	}
	if err := errors.ValidateCoordinate("collider_height", req.ColliderHeight); err != nil {
		s.respondError(w, err)
		return
	}

	strategy := sticky.Classify(req.ContainerHeight, req.ElementHeight, req.ColliderHeight)
	s.respond(w, http.StatusOK, classifyResponse{Strategy: strategy.String()})
}

// =============================================================================
// POST /v1/next
// =============================================================================

type nextRequest struct {
	PrevState    string       `json:"prev_state"`
	Current      wireSnapshot `json:"current"`
	Last         wireSnapshot `json:"last"`
	Strategy     string       `json:"strategy"`
	PrevStrategy string       `json:"prev_strategy"`
	Direction    string       `json:"direction"`
	TranslateY   float64      `json:"translate_y"`
}

type nextResponse struct {
	State           string `json:"state"`
	AdvanceStrategy bool   `json:"advance_strategy"`
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	if err := decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	prevState, err := parseState("prev_state", req.PrevState)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := req.Current.validate(); err != nil {
		s.respondError(w, err)
		return
	}
	if err := req.Last.validate(); err != nil {
		s.respondError(w, err)
		return
	}

	d := sticky.Next(sticky.Input{
		Prev:         prevState,
		Cur:          req.Current.snapshot(),
		Last:         req.Last.snapshot(),
		Strategy:     sticky.ParseStrategy(req.Strategy),
		PrevStrategy: sticky.ParseStrategy(req.PrevStrategy),
		Direction:    sticky.ParseDirection(req.Direction),
		TranslateY:   req.TranslateY,
	})
	s.respond(w, http.StatusOK, nextResponse{
		State:           d.Next.String(),
		AdvanceStrategy: d.AdvanceStrategy,
	})
}

// =============================================================================
// POST /v1/resolve
// =============================================================================

type resolveRequest struct {
	State       string       `json:"state"`
	Current     wireSnapshot `json:"current"`
	PrevState   string       `json:"prev_state"`
	Prev        wireSnapshot `json:"prev"`
	SpaceTop    float64      `json:"space_top"`
	SpaceBottom float64      `json:"space_bottom"`
	TranslateY  float64      `json:"translate_y"`
}

type resolveResponse struct {
	Rules      sticky.Rules `json:"rules"`
	TranslateY float64      `json:"translate_y"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decode(r, &req); err != nil {
		s.respondError(w, err)
		return
	}
	state, ok := sticky.ParseState(req.State)
	if !ok {
		s.respondError(w, errors.New(errors.ErrCodeInvalidState, "state: unknown state %q", req.State))
		return
	}
	prevState, err := parseState("prev_state", req.PrevState)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if err := req.Current.validate(); err != nil {
		s.respondError(w, err)
		return
	}
	if err := req.Prev.validate(); err != nil {
		s.respondError(w, err)
		return
	}
	if err := errors.ValidateSpaces(req.SpaceTop, req.SpaceBottom); err != nil {
		s.respondError(w, err)
		return
	}

	rules, ty := sticky.Resolve(state, req.Current.snapshot(), prevState, req.Prev.snapshot(),
		sticky.Spaces{Top: req.SpaceTop, Bottom: req.SpaceBottom}, req.TranslateY)
	s.respond(w, http.StatusOK, resolveResponse{Rules: rules, TranslateY: ty})
}
