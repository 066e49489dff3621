package chart

import (
	"math"
	"testing"
)

// ============================================================
// Geometry
// ============================================================

func TestPickDefaultViewport(t *testing.T) {
	g := DefaultGeometry(8)
	tests := []struct {
		x    float64
		want int
	}{
		{12, 0},
		{308, 7},
		{-50, 0},
		{0, 0},
		{400, 7},
		{12 + 42.28*3, 3},
		{12 + 42.28*3 + 22, 4},
		{1e19, 7},
		{1e30, 7},
		{math.Inf(1), 7},
		{-1e30, 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		got, ok := g.Pick(tt.x)
		if !ok || got != tt.want {
			t.Errorf("Pick(%v) = %d, %v; want %d", tt.x, got, ok, tt.want)
		}
	}
}

func TestPickEmptyAndSingle(t *testing.T) {
	if _, ok := DefaultGeometry(0).Pick(100); ok {
		t.Fatal("empty chart should not pick")
	}
	g := DefaultGeometry(1)
	for _, x := range []float64{-10, 12, 160, 500} {
		if i, ok := g.Pick(x); !ok || i != 0 {
			t.Fatalf("single point Pick(%v) = %d, %v", x, i, ok)
		}
	}
	if i, ok := DefaultGeometry(7).Pick(math.NaN()); !ok || i != 0 {
		t.Fatalf("NaN Pick = %d, %v", i, ok)
	}
}

func TestPickRoundTripsX(t *testing.T) {
	for _, n := range []int{2, 7, 28, 31} {
		g := DefaultGeometry(n)
		for i := 0; i < n; i++ {
			if got, _ := g.Pick(g.X(i)); got != i {
				t.Fatalf("n=%d: Pick(X(%d)) = %d", n, i, got)
			}
		}
	}
}

func TestGeometryY(t *testing.T) {
	g := DefaultGeometry(7)
	if g.Y(5) != 12 {
		t.Fatalf("Y(5) = %v", g.Y(5))
	}
	if g.Y(1) != 138 {
		t.Fatalf("Y(1) = %v", g.Y(1))
	}
	if g.Y(3) != 75 {
		t.Fatalf("Y(3) = %v", g.Y(3))
	}
}

func TestFromClient(t *testing.T) {
	g := DefaultGeometry(8)
	// Rendered at half scale starting at x=100.
	if x := g.FromClient(100+154, 100, 160); x != 308 {
		t.Fatalf("FromClient = %v", x)
	}
	if x := g.FromClient(5, 0, 0); x != g.PadX {
		t.Fatalf("zero width FromClient = %v", x)
	}
}

// ============================================================
// Interaction
// ============================================================

func active(t *testing.T, in Interaction) int {
	t.Helper()
	i, ok := in.Active()
	if !ok {
		return -1
	}
	return i
}

func TestInteractionHoverAndLeave(t *testing.T) {
	var in Interaction
	if in.State() != Idle || active(t, in) != -1 {
		t.Fatal("zero value should be idle")
	}
	in.Move(2)
	if in.State() != Hovering || active(t, in) != 2 {
		t.Fatalf("after Move: %s %d", in.State(), active(t, in))
	}
	in.Leave()
	if in.State() != Idle {
		t.Fatalf("after Leave: %s", in.State())
	}
}

func TestInteractionClickLockAndUnlock(t *testing.T) {
	var in Interaction
	in.Click()
	if in.State() != Idle {
		t.Fatal("click without hover should do nothing")
	}

	in.Move(3)
	in.Click()
	if in.State() != Locked || active(t, in) != 3 {
		t.Fatalf("after Click: %s %d", in.State(), active(t, in))
	}

	// Mouse movement and leaving are ignored while locked.
	in.Move(5)
	in.Leave()
	if active(t, in) != 3 {
		t.Fatalf("lock should hold, got %d", active(t, in))
	}

	// Clicking the locked point releases it.
	in.Click()
	if in.State() != Idle {
		t.Fatalf("second click should unlock, state %s", in.State())
	}
}

func TestInteractionTouch(t *testing.T) {
	var in Interaction
	in.TouchEnd()
	if in.State() != Idle {
		t.Fatal("TouchEnd without hover should do nothing")
	}

	in.TouchMove(1)
	in.TouchEnd()
	if in.State() != Locked || active(t, in) != 1 {
		t.Fatalf("after touch: %s %d", in.State(), active(t, in))
	}

	// Dragging while locked moves hover but the lock stays active.
	in.TouchMove(4)
	if active(t, in) != 1 {
		t.Fatalf("active = %d, want locked 1", active(t, in))
	}
	if h, ok := in.Hover(); !ok || h != 4 {
		t.Fatalf("hover = %d, %v", h, ok)
	}

	// Lifting relocks on the new point.
	in.TouchEnd()
	if active(t, in) != 4 {
		t.Fatalf("active = %d, want 4", active(t, in))
	}

	// Clicking a different hovered point moves the lock.
	in.TouchMove(6)
	in.Click()
	if active(t, in) != 6 || in.State() != Locked {
		t.Fatalf("active = %d, state %s", active(t, in), in.State())
	}

	in.Reset()
	if in.State() != Idle {
		t.Fatal("Reset should return to idle")
	}
}

// ============================================================
// Tooltip
// ============================================================

func TestTooltipPlace(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{12, 6},
		{100, 60},
		{308, 234},
		{1000, 234},
	}
	for _, tt := range tests {
		if got := DefaultTooltip.Place(tt.x, DefaultWidth); got != tt.want {
			t.Errorf("Place(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	// Viewport narrower than the box pins to the margin.
	if got := DefaultTooltip.Place(20, 50); got != 6 {
		t.Fatalf("narrow Place = %v", got)
	}
}

func TestLabel(t *testing.T) {
	v := 4.2
	if got := Label("2024-03-09", &v); got != "03/09 🙂" {
		t.Fatalf("Label = %q", got)
	}
	if got := Label("2024-03-09", nil); got != "03/09 —" {
		t.Fatalf("Label(nil) = %q", got)
	}
}
