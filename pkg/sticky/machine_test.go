package sticky

import "testing"

// testSnap builds a snapshot over the fixture page used throughout the
// machine tests: container at (100, 200), 300 wide, 3000 tall, band height
// 800, no spaces (so ColliderTop == ScrollY).
func testSnap(colliderTop, elementHeight float64) Snapshot {
	return Snapshot{
		ContainerLeft:   100,
		ContainerTop:    200,
		ContainerWidth:  300,
		ContainerHeight: 3000,
		ColliderTop:     colliderTop,
		ColliderHeight:  800,
		ElementHeight:   elementHeight,
		ScrollY:         colliderTop,
	}
}

// baseInput wires cur as both the current and the previous snapshot, so no
// "changed since last cycle" rule fires unless a test overrides Last.
func baseInput(prev State, cur Snapshot) Input {
	return Input{
		Prev:         prev,
		Cur:          cur,
		Last:         cur,
		Strategy:     StrategyBoth,
		PrevStrategy: StrategyBoth,
	}
}

func TestNext_FromColliderTop(t *testing.T) {
	tests := []struct {
		name        string
		in          func() Input
		want        State
		wantAdvance bool
	}{
		{
			name: "band above container exits to none",
			in: func() Input {
				return baseInput(StateColliderTop, testSnap(150, 1200))
			},
			want: StateNone,
		},
		{
			name: "element bottom past container bottom docks to container",
			in: func() Input {
				return baseInput(StateColliderTop, testSnap(3001, 200))
			},
			want: StateContainerBottom,
		},
		{
			name: "element grew past band under top strategy",
			in: func() Input {
				in := baseInput(StateColliderTop, testSnap(250, 900))
				in.PrevStrategy = StrategyTop
				return in
			},
			want:        StateTranslate,
			wantAdvance: true,
		},
		{
			name: "scrolling down under both strategy starts sliding",
			in: func() Input {
				in := baseInput(StateColliderTop, testSnap(400, 1200))
				in.Direction = DirectionDown
				return in
			},
			want: StateTranslate,
		},
		{
			name: "horizontal movement reaffirms the dock",
			in: func() Input {
				in := baseInput(StateColliderTop, testSnap(400, 200))
				in.Strategy = StrategyTop
				in.PrevStrategy = StrategyTop
				in.Last.ScrollX = 10
				return in
			},
			want: StateColliderTop,
		},
		{
			name: "no condition holds rests",
			in: func() Input {
				in := baseInput(StateColliderTop, testSnap(400, 200))
				in.Strategy = StrategyTop
				in.PrevStrategy = StrategyTop
				return in
			},
			want: StateRest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Next(tt.in())
			if d.Next != tt.want {
				t.Errorf("Next = %v, want %v", d.Next, tt.want)
			}
			if d.AdvanceStrategy != tt.wantAdvance {
				t.Errorf("AdvanceStrategy = %v, want %v", d.AdvanceStrategy, tt.wantAdvance)
			}
		})
	}
}

func TestNext_FromColliderBottom(t *testing.T) {
	tests := []struct {
		name string
		in   func() Input
		want State
	}{
		{
			name: "band above container exits to none",
			in: func() Input {
				return baseInput(StateColliderBottom, testSnap(150, 1200))
			},
			want: StateNone,
		},
		{
			name: "band bottom at container bottom docks to container",
			in: func() Input {
				return baseInput(StateColliderBottom, testSnap(2400, 1200))
			},
			want: StateContainerBottom,
		},
		{
			name: "element shrank to fit band moves to top dock",
			in: func() Input {
				return baseInput(StateColliderBottom, testSnap(400, 700))
			},
			want: StateColliderTop,
		},
		{
			name: "upward scroll starts sliding",
			in: func() Input {
				in := baseInput(StateColliderBottom, testSnap(600, 1200))
				in.Direction = DirectionUp
				return in
			},
			want: StateTranslate,
		},
		{
			name: "element height change starts sliding",
			in: func() Input {
				in := baseInput(StateColliderBottom, testSnap(600, 1250))
				in.Last.ElementHeight = 1200
				return in
			},
			want: StateTranslate,
		},
		{
			name: "container movement reaffirms the dock",
			in: func() Input {
				in := baseInput(StateColliderBottom, testSnap(600, 1200))
				in.Last.ContainerLeft = 120
				return in
			},
			want: StateColliderBottom,
		},
		{
			name: "no condition holds rests",
			in: func() Input {
				return baseInput(StateColliderBottom, testSnap(600, 1200))
			},
			want: StateRest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Next(tt.in()); d.Next != tt.want {
				t.Errorf("Next = %v, want %v", d.Next, tt.want)
			}
		})
	}
}

func TestNext_FromContainerBottom(t *testing.T) {
	tests := []struct {
		name string
		in   func() Input
		want State
	}{
		{
			name: "band above container exits to none",
			in: func() Input {
				return baseInput(StateContainerBottom, testSnap(150, 1200))
			},
			want: StateNone,
		},
		{
			name: "upward scroll above the resting offset releases to top dock",
			in: func() Input {
				in := baseInput(StateContainerBottom, testSnap(2000, 1200))
				in.Direction = DirectionUp
				return in
			},
			want: StateColliderTop,
		},
		{
			name: "element fits between band top and container bottom",
			in: func() Input {
				in := baseInput(StateContainerBottom, testSnap(1900, 1200))
				in.Direction = DirectionDown
				return in
			},
			want: StateColliderTop,
		},
		{
			name: "width change refreshes width-dependent style",
			in: func() Input {
				in := baseInput(StateContainerBottom, testSnap(2500, 1200))
				in.Direction = DirectionDown
				in.Cur.ContainerWidth = 350
				return in
			},
			want: StateContainerBottom,
		},
		{
			name: "no condition holds rests",
			in: func() Input {
				in := baseInput(StateContainerBottom, testSnap(2500, 1200))
				in.Direction = DirectionDown
				return in
			},
			want: StateRest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Next(tt.in()); d.Next != tt.want {
				t.Errorf("Next = %v, want %v", d.Next, tt.want)
			}
		})
	}
}

func TestNext_FromNone(t *testing.T) {
	tests := []struct {
		name string
		in   func() Input
		want State
	}{
		{
			name: "element bottom past container bottom docks to container",
			in: func() Input {
				return baseInput(StateNone, testSnap(2000, 1200))
			},
			want: StateContainerBottom,
		},
		{
			name: "band reached container with fitting element docks top",
			in: func() Input {
				in := baseInput(StateNone, testSnap(250, 700))
				in.Strategy = StrategyTop
				in.PrevStrategy = StrategyTop
				return in
			},
			want: StateColliderTop,
		},
		{
			name: "band bottom past element bottom under both docks bottom",
			in: func() Input {
				return baseInput(StateNone, testSnap(700, 1200))
			},
			want: StateColliderBottom,
		},
		{
			name: "band above container rests",
			in: func() Input {
				return baseInput(StateNone, testSnap(100, 1200))
			},
			want: StateRest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Next(tt.in()); d.Next != tt.want {
				t.Errorf("Next = %v, want %v", d.Next, tt.want)
			}
		})
	}
}

func TestNext_FromTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   func() Input
		want State
	}{
		{
			name: "no room below current offset docks to container",
			in: func() Input {
				in := baseInput(StateTranslate, testSnap(2500, 1200))
				in.TranslateY = 1900
				return in
			},
			want: StateContainerBottom,
		},
		{
			name: "element fits band again docks top",
			in: func() Input {
				in := baseInput(StateTranslate, testSnap(600, 700))
				in.TranslateY = 500
				return in
			},
			want: StateColliderTop,
		},
		{
			name: "band top caught up with element top docks top",
			in: func() Input {
				in := baseInput(StateTranslate, testSnap(400, 1200))
				in.TranslateY = 300
				return in
			},
			want: StateColliderTop,
		},
		{
			name: "band bottom passed element bottom docks bottom",
			in: func() Input {
				in := baseInput(StateTranslate, testSnap(801, 1200))
				in.TranslateY = 200
				return in
			},
			want: StateColliderBottom,
		},
		{
			name: "band bottom exactly at element bottom rests",
			in: func() Input {
				in := baseInput(StateTranslate, testSnap(800, 1200))
				in.TranslateY = 200
				return in
			},
			want: StateRest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Next(tt.in()); d.Next != tt.want {
				t.Errorf("Next = %v, want %v", d.Next, tt.want)
			}
		})
	}
}

// Next must be deterministic: the same input always yields the same
// decision.
func TestNext_Deterministic(t *testing.T) {
	in := baseInput(StateTranslate, testSnap(801, 1200))
	in.TranslateY = 200
	a := Next(in)
	b := Next(in)
	if a != b {
		t.Errorf("Next not deterministic: %+v != %+v", a, b)
	}
}
