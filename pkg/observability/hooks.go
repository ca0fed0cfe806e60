// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about recompute cycles, state transitions,
// and HTTP evaluator requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetControllerHooks(&myControllerHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Controller().OnTransition(from, to, direction)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Controller Hooks
// =============================================================================

// ControllerHooks receives events from the sticky positioning controller.
// State, strategy, and direction values are passed as their string names so
// this package stays free of engine types.
type ControllerHooks interface {
	// OnRecompute records one drained recompute cycle. kind is "resize",
	// "scroll", or "initial"; scrollY is the vertical offset the cycle saw.
	OnRecompute(kind string, scrollY float64)

	// OnTransition records a fired state transition. Re-affirming
	// transitions report from == to.
	OnTransition(from, to, direction string)

	// OnStyleApply records a style write to the managed element.
	OnStyleApply(state string, translateY float64)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP evaluator.
type HTTPHooks interface {
	// OnRequest records an incoming evaluator request.
	OnRequest(method, path string)

	// OnResponse records a completed evaluator response.
	OnResponse(method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopControllerHooks is a no-op implementation of ControllerHooks.
type NoopControllerHooks struct{}

func (NoopControllerHooks) OnRecompute(string, float64)         {}
func (NoopControllerHooks) OnTransition(string, string, string) {}
func (NoopControllerHooks) OnStyleApply(string, float64)        {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(string, string)                      {}
func (NoopHTTPHooks) OnResponse(string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	controllerHooks ControllerHooks = NoopControllerHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetControllerHooks registers custom controller hooks.
// This should be called once at application startup before any controller
// is enabled.
func SetControllerHooks(h ControllerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		controllerHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the evaluator
// starts serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Controller returns the registered controller hooks.
func Controller() ControllerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return controllerHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	controllerHooks = NoopControllerHooks{}
	httpHooks = NoopHTTPHooks{}
}
