package sticky

import (
	"reflect"
	"testing"

	"github.com/sidepin/sidepin/pkg/page"
)

func TestResolve_ColliderTop(t *testing.T) {
	cur := testSnap(500, 700)
	cur.ScrollX = 40

	rules, ty := Resolve(StateColliderTop, cur, StateNone, cur, Spaces{Top: 64}, 0)

	if ty != 0 {
		t.Errorf("translateY = %v, want 0", ty)
	}
	if rules.Position != "fixed" {
		t.Errorf("Position = %q, want %q", rules.Position, "fixed")
	}
	if rules.Top == nil || *rules.Top != 64 {
		t.Errorf("Top = %v, want 64", rules.Top)
	}
	if rules.Left == nil || *rules.Left != 60 { // containerLeft 100 - scrollX 40
		t.Errorf("Left = %v, want 60", rules.Left)
	}
	if rules.Width == nil || *rules.Width != 300 {
		t.Errorf("Width = %v, want 300", rules.Width)
	}
	if rules.TranslateY != nil {
		t.Errorf("TranslateY = %v, want nil", rules.TranslateY)
	}
}

func TestResolve_ColliderBottom(t *testing.T) {
	cur := testSnap(700, 1200)

	rules, ty := Resolve(StateColliderBottom, cur, StateNone, cur, Spaces{Top: 64}, 0)

	if ty != 0 {
		t.Errorf("translateY = %v, want 0", ty)
	}
	// colliderHeight 800 + spaceTop 64 - elementHeight 1200
	if rules.Top == nil || *rules.Top != -336 {
		t.Errorf("Top = %v, want -336", rules.Top)
	}
	if rules.Position != "fixed" {
		t.Errorf("Position = %q, want %q", rules.Position, "fixed")
	}
}

func TestResolve_ContainerBottom(t *testing.T) {
	cur := testSnap(3001, 200)

	rules, ty := Resolve(StateContainerBottom, cur, StateColliderTop, cur, Spaces{Top: 10}, 0)

	if want := cur.MaxTranslate(); ty != want {
		t.Errorf("translateY = %v, want %v", ty, want)
	}
	if rules.Position != "sticky" {
		t.Errorf("Position = %q, want %q", rules.Position, "sticky")
	}
	if rules.Top == nil || *rules.Top != 10 {
		t.Errorf("Top = %v, want 10", rules.Top)
	}
	if rules.Left == nil || *rules.Left != 0 {
		t.Errorf("Left = %v, want 0", rules.Left)
	}
	if rules.Width == nil || *rules.Width != 300 {
		t.Errorf("Width = %v, want 300", rules.Width)
	}
}

// Entering the sliding state must not move the element: the offset is
// derived from the state being exited.
func TestResolve_TranslateContinuity(t *testing.T) {
	tests := []struct {
		name   string
		exited State
		cur    Snapshot
		prev   Snapshot
		wantTY float64
	}{
		{
			name: "exiting collider top",
			exited: StateColliderTop,
			cur: Snapshot{
				ColliderTop: 500, ContainerTop: 100,
				ContainerHeight: 3000, ElementHeight: 1200, ColliderHeight: 800,
			},
			prev:   Snapshot{ElementHeight: 1200},
			wantTY: 400,
		},
		{
			name: "exiting collider bottom uses the anchored element height",
			exited: StateColliderBottom,
			cur: Snapshot{
				ColliderTop: 600, ColliderHeight: 800, ContainerTop: 200,
				ContainerHeight: 3000, ElementHeight: 1250,
			},
			prev: Snapshot{ElementHeight: 1200},
			// 600 + 800 - 200 - 1200
			wantTY: 0,
		},
		{
			name: "exiting container bottom",
			exited: StateContainerBottom,
			cur: Snapshot{
				ContainerHeight: 3000, ElementHeight: 1200,
			},
			prev:   Snapshot{ElementHeight: 1200},
			wantTY: 1800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, ty := Resolve(StateTranslate, tt.cur, tt.exited, tt.prev, Spaces{}, 0)
			if ty != tt.wantTY {
				t.Errorf("translateY = %v, want %v", ty, tt.wantTY)
			}
			if rules.Position != "relative" {
				t.Errorf("Position = %q, want %q", rules.Position, "relative")
			}
			if rules.TranslateY == nil || *rules.TranslateY != tt.wantTY {
				t.Errorf("TranslateY = %v, want %v", rules.TranslateY, tt.wantTY)
			}
		})
	}
}

func TestResolve_None(t *testing.T) {
	cur := testSnap(400, 1200)
	rules, ty := Resolve(StateNone, cur, StateColliderTop, cur, Spaces{Top: 64}, 123)
	if ty != 0 {
		t.Errorf("translateY = %v, want 0", ty)
	}
	if !reflect.DeepEqual(rules, Rules{}) {
		t.Errorf("rules = %+v, want zero rules", rules)
	}
}

func TestResolve_RestKeepsOffset(t *testing.T) {
	cur := testSnap(400, 1200)
	rules, ty := Resolve(StateRest, cur, StateTranslate, cur, Spaces{}, 321)
	if ty != 321 {
		t.Errorf("translateY = %v, want 321", ty)
	}
	if !reflect.DeepEqual(rules, Rules{}) {
		t.Errorf("rules = %+v, want zero rules", rules)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	cur := testSnap(500, 1200)
	prev := testSnap(400, 1200)

	a, tyA := Resolve(StateTranslate, cur, StateColliderTop, prev, Spaces{Top: 8}, 0)
	b, tyB := Resolve(StateTranslate, cur, StateColliderTop, prev, Spaces{Top: 8}, 0)

	if tyA != tyB {
		t.Errorf("translateY differs: %v != %v", tyA, tyB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("rules differ: %+v != %+v", a, b)
	}
}

func TestRulesMerge(t *testing.T) {
	top, left, width := 64.0, 60.0, 300.0
	rules := Rules{Position: "fixed", Top: &top, Left: &left, Width: &width}

	got := rules.Merge("initial")
	want := page.Style{Position: "fixed", Top: "64px", Left: "60px", Width: "300px"}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}

func TestRulesMerge_ZeroFallsBackToBaseline(t *testing.T) {
	got := Rules{}.Merge("static")
	want := page.Style{Position: "static"}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
}

func TestRulesMerge_Translate(t *testing.T) {
	ty := 400.0
	got := Rules{Position: "relative", TranslateY: &ty}.Merge("initial")
	if got.Transform != "translate3d(0, 400px, 0)" {
		t.Errorf("Transform = %q, want %q", got.Transform, "translate3d(0, 400px, 0)")
	}
}

func TestContainerPosition(t *testing.T) {
	if got := ContainerPosition(StateContainerBottom); got != "relative" {
		t.Errorf("ContainerPosition(StateContainerBottom) = %q, want %q", got, "relative")
	}
	for _, s := range []State{StateNone, StateColliderTop, StateColliderBottom, StateTranslate} {
		if got := ContainerPosition(s); got != "initial" {
			t.Errorf("ContainerPosition(%v) = %q, want %q", s, got, "initial")
		}
	}
}
