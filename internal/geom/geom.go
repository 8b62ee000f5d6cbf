// Package geom places board hexes on screen and maps pointer positions back
// to hex indices. Units are tiles: a hex has circumradius 1.
package geom

import (
	"math"

	"hexchess/internal/game"
)

// Cos30 = cos(π/6)，尖顶六边形半宽
const Cos30 = 0.8660254037844386

// HexVertices 单位尖顶六边形的六个顶点（顺时针，从正上方开始）
var HexVertices = [6][2]float64{
	{0, -1},
	{Cos30, -0.5},
	{Cos30, 0.5},
	{0, 1},
	{-Cos30, 0.5},
	{-Cos30, -0.5},
}

var centers [game.HexCount][2]float64

func init() {
	for hex := 0; hex < game.HexCount; hex++ {
		r, f := game.Rank(hex), game.File(hex)
		// 行首向左缩进：越靠近中间行越靠左
		off := -float64(5 - abs(5-r))
		centers[hex] = [2]float64{(off + 2*float64(f)) * Cos30, 1.5 * float64(r)}
	}
}

// Center 返回格子中心（以 tile 为单位）
func Center(hex int) (x, y float64) {
	c := centers[hex]
	return c[0], c[1]
}

// Bounds returns the bounding box of all hex centres.
func Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range centers {
		minX, maxX = math.Min(minX, c[0]), math.Max(maxX, c[0])
		minY, maxY = math.Min(minY, c[1]), math.Max(maxY, c[1])
	}
	return
}

// Pick 找离 (x, y) 最近的格子中心，距离超过 1 个 tile 视为棋盘外
func Pick(x, y float64) (int, bool) {
	best, found := 1.0, -1
	for hex, c := range centers {
		dx, dy := x-c[0], y-c[1]
		if d2 := dx*dx + dy*dy; d2 <= best {
			best, found = d2, hex
		}
	}
	return found, found >= 0
}

// Transform 把 tile 坐标放到屏幕上：screen = origin + tile*pos
type Transform struct {
	OriginX, OriginY float64
	Tile             float64
}

// Centered 让棋盘在 w×h 的区域内居中
func Centered(w, h, tile float64) Transform {
	minX, minY, maxX, maxY := Bounds()
	return Transform{
		OriginX: w/2 - (minX+maxX)/2*tile,
		OriginY: h/2 - (minY+maxY)/2*tile,
		Tile:    tile,
	}
}

// ToScreen 格子中心的屏幕坐标
func (t Transform) ToScreen(hex int) (float64, float64) {
	x, y := Center(hex)
	return t.OriginX + x*t.Tile, t.OriginY + y*t.Tile
}

// PickScreen 屏幕像素 -> 格子
func (t Transform) PickScreen(px, py float64) (int, bool) {
	return Pick((px-t.OriginX)/t.Tile, (py-t.OriginY)/t.Tile)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
