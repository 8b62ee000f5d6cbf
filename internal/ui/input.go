// File ui/input.go
package ui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hexchess/internal/game"
)

// cursorHex 把鼠标位置换算成格子；offscreen 与逻辑尺寸一致，直接用 Layout 坐标
func (gs *GameScreen) cursorHex() (int, bool) {
	mx, my := ebiten.CursorPosition()
	return gs.transform.PickScreen(float64(mx), float64(my))
}

// handleInput 鼠标左键松开时提交一次点击；r 重开，c 复制局面
func (gs *GameScreen) handleInput() {
	hex, ok := gs.cursorHex()
	if ok {
		gs.hover = hex
	} else {
		gs.hover = -1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := gs.session.Reset(); err != nil {
			log.Printf("reset failed: %v", err)
			return
		}
		gs.anims = nil
		log.Printf("game %s started: %s", gs.session.ID, game.Encode(gs.session.Board()))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(gs.session.Export()); err != nil {
			log.Printf("copy to clipboard: %v", err)
		}
	}

	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	out, err := gs.session.SubmitClick(hex, ok)
	if err != nil {
		// PickScreen 只返回合法编号，走到这里说明有 bug
		log.Fatalf("submit click %d: %v", hex, err)
	}
	gs.onOutcome(out)
}

// onOutcome 记录日志并启动高亮动画
func (gs *GameScreen) onOutcome(out game.Outcome) {
	switch out.Kind {
	case game.Moved, game.Won:
		m := out.Move
		log.Printf("game %s: %s %d -> %d", gs.session.ID, gs.session.Board().Hexes[m.To].Owner, m.From, m.To)
		if !out.Captured.IsEmpty() {
			log.Printf("game %s: captured %s %s", gs.session.ID, out.Captured.Owner, out.Captured.Kind)
		}
		if out.Promoted {
			log.Printf("game %s: pawn promoted at %d", gs.session.ID, m.To)
		}
		if out.Kind == game.Won {
			log.Printf("game %s: %s", gs.session.ID, gs.session.StatusText())
		}
		gs.addMoveAnim(m)
	}
}
