package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	c := NoopControllerHooks{}
	c.OnRecompute("scroll", 250)
	c.OnTransition("none", "collider-top", "down")
	c.OnStyleApply("collider-top", 0)

	h := NoopHTTPHooks{}
	h.OnRequest("POST", "/v1/classify")
	h.OnResponse("POST", "/v1/classify", 200, time.Millisecond)
}

// countingControllerHooks records how many events it received.
type countingControllerHooks struct {
	NoopControllerHooks
	recomputes  int
	transitions int
}

func (h *countingControllerHooks) OnRecompute(string, float64)         { h.recomputes++ }
func (h *countingControllerHooks) OnTransition(string, string, string) { h.transitions++ }

type countingHTTPHooks struct {
	NoopHTTPHooks
	requests int
}

func (h *countingHTTPHooks) OnRequest(string, string) { h.requests++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	// Verify defaults are noop
	if _, ok := Controller().(NoopControllerHooks); !ok {
		t.Error("Controller() should return NoopControllerHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Register custom hooks
	ch := &countingControllerHooks{}
	hh := &countingHTTPHooks{}
	SetControllerHooks(ch)
	SetHTTPHooks(hh)

	Controller().OnRecompute("initial", 0)
	Controller().OnTransition("none", "collider-top", "down")
	HTTP().OnRequest("POST", "/v1/next")

	if ch.recomputes != 1 || ch.transitions != 1 {
		t.Errorf("controller hooks saw %d/%d events, want 1/1", ch.recomputes, ch.transitions)
	}
	if hh.requests != 1 {
		t.Errorf("http hooks saw %d requests, want 1", hh.requests)
	}

	// Reset restores the noops
	Reset()
	if _, ok := Controller().(NoopControllerHooks); !ok {
		t.Error("Reset() should restore NoopControllerHooks")
	}
}

func TestSetHooksIgnoresNil(t *testing.T) {
	Reset()
	SetControllerHooks(nil)
	SetHTTPHooks(nil)

	if Controller() == nil {
		t.Error("Controller() = nil after SetControllerHooks(nil)")
	}
	if HTTP() == nil {
		t.Error("HTTP() = nil after SetHTTPHooks(nil)")
	}
}
