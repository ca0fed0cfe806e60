package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestServer() *Server {
	return NewServer(log.NewWithOptions(io.Discard, log.Options{}))
}

// post sends a JSON body and decodes the JSON response into out.
func post(t *testing.T, s *Server, path string, body any, out any) int {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if out != nil {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec.Code
}

func TestClassify(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		req  classifyRequest
		want string
	}{
		{
			name: "element taller than container",
			req:  classifyRequest{ContainerHeight: 1000, ElementHeight: 2000, ColliderHeight: 800},
			want: "none",
		},
		{
			name: "element overflows the band",
			req:  classifyRequest{ContainerHeight: 3000, ElementHeight: 1200, ColliderHeight: 800},
			want: "both",
		},
		{
			name: "element fits the band",
			req:  classifyRequest{ContainerHeight: 3000, ElementHeight: 250, ColliderHeight: 800},
			want: "top",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp classifyResponse
			code := post(t, s, "/v1/classify", tt.req, &resp)
			if code != http.StatusOK {
				t.Fatalf("status = %d, want %d", code, http.StatusOK)
			}
			if resp.Strategy != tt.want {
				t.Errorf("strategy = %q, want %q", resp.Strategy, tt.want)
			}
		})
	}
}

func TestClassify_RejectsNegativeHeight(t *testing.T) {
	s := newTestServer()

	var resp errorBody
	code := post(t, s, "/v1/classify", classifyRequest{ContainerHeight: -1}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp.Code != "INVALID_GEOMETRY" {
		t.Errorf("code = %q, want INVALID_GEOMETRY", resp.Code)
	}
}

func TestClassify_RejectsUnknownFields(t *testing.T) {
	s := newTestServer()

	var resp errorBody
	code := post(t, s, "/v1/classify", map[string]any{"container_height": 10, "bogus": 1}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", resp.Code)
	}
}

func TestNext_DocksAtBandTop(t *testing.T) {
	s := newTestServer()

	// Band top has passed the container top while scrolled down.
	snap := wireSnapshot{
		ContainerLeft: 100, ContainerTop: 200,
		ContainerWidth: 300, ContainerHeight: 3000,
		ColliderTop: 250, ColliderHeight: 800,
		ElementHeight: 250, ScrollY: 250,
	}

	var resp nextResponse
	code := post(t, s, "/v1/next", nextRequest{
		PrevState:    "none",
		Current:      snap,
		Last:         snap,
		Strategy:     "top",
		PrevStrategy: "top",
		Direction:    "down",
	}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if resp.State != "collider-top" {
		t.Errorf("state = %q, want collider-top", resp.State)
	}
	if resp.AdvanceStrategy {
		t.Error("advance_strategy = true, want false")
	}
}

func TestNext_RestWhenNothingFires(t *testing.T) {
	s := newTestServer()

	snap := wireSnapshot{
		ContainerTop: 200, ContainerWidth: 300, ContainerHeight: 3000,
		ColliderTop: 250, ColliderHeight: 800,
		ElementHeight: 250, ScrollY: 250,
	}

	var resp nextResponse
	code := post(t, s, "/v1/next", nextRequest{
		PrevState:    "collider-top",
		Current:      snap,
		Last:         snap,
		Strategy:     "top",
		PrevStrategy: "top",
		Direction:    "none",
	}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if resp.State != "rest" {
		t.Errorf("state = %q, want rest", resp.State)
	}
}

func TestNext_RejectsRestAsInput(t *testing.T) {
	s := newTestServer()

	var resp errorBody
	code := post(t, s, "/v1/next", nextRequest{PrevState: "rest"}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp.Code != "INVALID_STATE" {
		t.Errorf("code = %q, want INVALID_STATE", resp.Code)
	}
}

func TestNext_RejectsUnknownState(t *testing.T) {
	s := newTestServer()

	var resp errorBody
	code := post(t, s, "/v1/next", nextRequest{PrevState: "sideways"}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp.Code != "INVALID_STATE" {
		t.Errorf("code = %q, want INVALID_STATE", resp.Code)
	}
}

func TestResolve_ColliderTop(t *testing.T) {
	s := newTestServer()

	snap := wireSnapshot{
		ContainerLeft: 100, ContainerTop: 200,
		ContainerWidth: 300, ContainerHeight: 3000,
		ColliderTop: 314, ColliderHeight: 728,
		ElementHeight: 250, ScrollX: 40, ScrollY: 250,
	}

	var resp resolveResponse
	code := post(t, s, "/v1/resolve", resolveRequest{
		State:     "collider-top",
		Current:   snap,
		PrevState: "none",
		Prev:      snap,
		SpaceTop:  64,
	}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if resp.Rules.Position != "fixed" {
		t.Errorf("position = %q, want fixed", resp.Rules.Position)
	}
	if resp.Rules.Top == nil || *resp.Rules.Top != 64 {
		t.Errorf("top = %v, want 64", resp.Rules.Top)
	}
	if resp.Rules.Left == nil || *resp.Rules.Left != 60 {
		t.Errorf("left = %v, want 60", resp.Rules.Left)
	}
	if resp.TranslateY != 0 {
		t.Errorf("translate_y = %v, want 0", resp.TranslateY)
	}
}

func TestResolve_TranslateContinuity(t *testing.T) {
	s := newTestServer()

	// The example from the docking hand-off: leaving collider-top at
	// colliderTop 500 with containerTop 100 yields offset 400.
	cur := wireSnapshot{
		ContainerTop: 100, ContainerWidth: 300, ContainerHeight: 3000,
		ColliderTop: 500, ColliderHeight: 800,
		ElementHeight: 1200, ScrollY: 500,
	}

	var resp resolveResponse
	code := post(t, s, "/v1/resolve", resolveRequest{
		State:     "translate",
		Current:   cur,
		PrevState: "collider-top",
		Prev:      cur,
	}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if resp.TranslateY != 400 {
		t.Errorf("translate_y = %v, want 400", resp.TranslateY)
	}
	if resp.Rules.Position != "relative" {
		t.Errorf("position = %q, want relative", resp.Rules.Position)
	}
}

func TestResolve_RejectsNegativeSpaces(t *testing.T) {
	s := newTestServer()

	var resp errorBody
	code := post(t, s, "/v1/resolve", resolveRequest{
		State:     "none",
		PrevState: "none",
		SpaceTop:  -1,
	}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp.Code != "INVALID_SPACES" {
		t.Errorf("code = %q, want INVALID_SPACES", resp.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
}
