// internal/ui/animation.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"hexchess/internal/game"
)

const flashDuration = 600 * time.Millisecond

// FlashAnim 走子后在起点和终点叠一层逐渐淡出的高亮
type FlashAnim struct {
	Start    time.Time
	Duration time.Duration
	Hexes    []int
	Color    color.RGBA
}

// Alpha 当前透明度，1 -> 0；返回 false 表示已播完
func (a *FlashAnim) Alpha(now time.Time) (float32, bool) {
	elapsed := now.Sub(a.Start)
	if elapsed < 0 {
		return 0, true
	}
	if elapsed >= a.Duration {
		return 0, false
	}
	return 1 - float32(elapsed)/float32(a.Duration), true
}

func (gs *GameScreen) addMoveAnim(m game.Move) {
	gs.anims = append(gs.anims, &FlashAnim{
		Start:    time.Now(),
		Duration: flashDuration,
		Hexes:    []int{m.From, m.To},
		Color:    gs.colors.hover,
	})
}

// pruneAnims 丢弃播完的动画
func (gs *GameScreen) pruneAnims() {
	now := time.Now()
	live := gs.anims[:0]
	for _, a := range gs.anims {
		if _, ok := a.Alpha(now); ok {
			live = append(live, a)
		}
	}
	gs.anims = live
}

func (gs *GameScreen) drawAnims(dst *ebiten.Image) {
	now := time.Now()
	for _, a := range gs.anims {
		alpha, ok := a.Alpha(now)
		if !ok || alpha == 0 {
			continue
		}
		for _, hex := range a.Hexes {
			gs.drawTile(dst, hex, a.Color, alpha)
		}
	}
}
