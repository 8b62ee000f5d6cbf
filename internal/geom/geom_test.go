package geom

import (
	"math"
	"testing"

	"hexchess/internal/game"
)

func TestPickCenterReturnsHex(t *testing.T) {
	for hex := 0; hex < game.HexCount; hex++ {
		x, y := Center(hex)
		got, ok := Pick(x+0.2, y-0.2)
		if !ok || got != hex {
			t.Errorf("Pick near %d = %d,%v", hex, got, ok)
		}
	}
	if _, ok := Pick(-20, -20); ok {
		t.Error("far point should be off board")
	}
}

func TestNeighbourCentresAreOneHexApart(t *testing.T) {
	for hex := 0; hex < game.HexCount; hex++ {
		x0, y0 := Center(hex)
		for _, n := range game.Adjacent(hex) {
			x1, y1 := Center(n)
			d := math.Hypot(x1-x0, y1-y0)
			if math.Abs(d-2*Cos30) > 1e-9 {
				t.Errorf("%d-%d distance %.4f", hex, n, d)
			}
		}
	}
}

func TestCenteredTransformRoundTrip(t *testing.T) {
	tr := Centered(800, 600, 30)
	minX, minY, maxX, maxY := Bounds()
	if cx := tr.OriginX + (minX+maxX)/2*tr.Tile; math.Abs(cx-400) > 1e-9 {
		t.Errorf("board centre x = %.2f", cx)
	}
	if cy := tr.OriginY + (minY+maxY)/2*tr.Tile; math.Abs(cy-300) > 1e-9 {
		t.Errorf("board centre y = %.2f", cy)
	}
	px, py := tr.ToScreen(45)
	if got, ok := tr.PickScreen(px, py); !ok || got != 45 {
		t.Errorf("PickScreen = %d,%v", got, ok)
	}
}
