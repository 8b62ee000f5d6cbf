// File /ui/render.go
package ui

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"hexchess/internal/game"
)

// hexColor 每个格子的底色：选中红、候选绿、悬停橙（悬停在候选上为亮绿），终局全盘冻结为底色
func (gs *GameScreen) hexColor(hex int, candidates []int) color.RGBA {
	st := gs.session.State()
	switch st.Phase {
	case game.GameWonBy:
		return gs.colors.board
	case game.Waiting:
		if hex == gs.hover {
			return gs.colors.hover
		}
	case game.SelectedPiece:
		isCand := slices.Contains(candidates, hex)
		switch {
		case hex == st.Selected:
			return gs.colors.selected
		case hex == gs.hover && isCand:
			return gs.colors.target
		case hex == gs.hover:
			return gs.colors.hover
		case isCand:
			return gs.colors.candidate
		}
	}
	return gs.colors.board
}

// drawBoard 画出 91 个格子
func (gs *GameScreen) drawBoard(dst *ebiten.Image) {
	candidates := gs.session.Candidates()
	for hex := 0; hex < game.HexCount; hex++ {
		gs.drawTile(dst, hex, gs.hexColor(hex, candidates), 1)
	}
}

// drawStatus 顶部 "White turn" / "Black wins"，底部调试状态
func (gs *GameScreen) drawStatus(dst *ebiten.Image) {
	gs.infoFace.DrawAt(dst, gs.session.StatusText(), 12, 8, color.White)
	h := float64(gs.cfg.Window.Height)
	gs.infoFace.DrawAt(dst, gs.session.State().String(), 12, h-28, color.White)
}
