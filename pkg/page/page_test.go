package page

import "testing"

func TestPx(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0px"},
		{64, "64px"},
		{-400, "-400px"},
		{12.5, "12.5px"},
	}
	for _, tt := range tests {
		if got := Px(tt.v); got != tt.want {
			t.Errorf("Px(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTranslate3D(t *testing.T) {
	if got := Translate3D(400); got != "translate3d(0, 400px, 0)" {
		t.Errorf("Translate3D(400) = %q", got)
	}
	if got := Translate3D(-12.5); got != "translate3d(0, -12.5px, 0)" {
		t.Errorf("Translate3D(-12.5) = %q", got)
	}
}

func TestStyleString(t *testing.T) {
	s := Style{Position: "fixed", Top: "64px", Width: "300px"}
	if got := s.String(); got != "position=fixed top=64px width=300px" {
		t.Errorf("String() = %q", got)
	}
	if got := (Style{}).String(); got != "{}" {
		t.Errorf("empty String() = %q, want {}", got)
	}
}
