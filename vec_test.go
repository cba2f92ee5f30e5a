package boxel

import "testing"

func TestVec2(t *testing.T) {
	p := V(3, -2).Add(V(-5, 4))
	if p != (Point{X: -2, Y: 2}) {
		t.Errorf("expected -2,2, got %v", p)
	}

	u := V[uint16](7, 1).Add(V[uint16](1, 1))
	if u.X != 8 || u.Y != 2 {
		t.Errorf("expected 8,2, got %v", u)
	}
}
