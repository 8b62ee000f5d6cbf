package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"hexchess/internal/assets"
	"hexchess/internal/config"
	"hexchess/internal/game"
	"hexchess/internal/geom"
)

// palette 由配置解析出的颜色
type palette struct {
	board, hover, selected, candidate, target color.RGBA
	white, black                              color.RGBA
}

func newPalette(t config.Theme) palette {
	return palette{
		board:     config.MustColor(t.Board),
		hover:     config.MustColor(t.Hover),
		selected:  config.MustColor(t.Selected),
		candidate: config.MustColor(t.Candidate),
		target:    config.MustColor(t.Target),
		white:     config.MustColor(t.White),
		black:     config.MustColor(t.Black),
	}
}

// boardView 对局界面和回放界面共用的绘制部分
type boardView struct {
	colors    palette
	transform geom.Transform
	tileImage *ebiten.Image
	pieceFace assets.GlyphFace
	infoFace  assets.GlyphFace
}

func newBoardView(cfg *config.Config) boardView {
	w, h := cfg.Window.Width, cfg.Window.Height
	return boardView{
		colors:    newPalette(cfg.Theme),
		transform: geom.Centered(float64(w), float64(h), cfg.Window.TileSize),
		tileImage: assets.HexTile(cfg.Window.TileSize - 2),
		pieceFace: assets.NewGlyphFace(cfg.Window.TileSize / 13),
		infoFace:  assets.NewGlyphFace(1.5),
	}
}

// drawTile 把格子贴图中心放在格子中心并着色
func (v *boardView) drawTile(dst *ebiten.Image, hex int, clr color.Color, alpha float32) {
	x, y := v.transform.ToScreen(hex)
	w, h := v.tileImage.Bounds().Dx(), v.tileImage.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(w)/2, y-float64(h)/2)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(v.tileImage, op)
}

// drawPieces 用字母绘制棋子，颜色按所属方
func (v *boardView) drawPieces(dst *ebiten.Image, b *game.Board) {
	for hex, p := range b.Hexes {
		if p.IsEmpty() {
			continue
		}
		clr := v.colors.white
		if p.Owner == game.Black {
			clr = v.colors.black
		}
		x, y := v.transform.ToScreen(hex)
		v.pieceFace.DrawCentered(dst, string(p.Kind.Code()), x, y, clr)
	}
}

// present 把 offscreen 按比例缩放居中画到窗口
func present(screen, offscreen *ebiten.Image, lw, lh int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := screenScale(w, h, lw, lh)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dx := (float64(w) - float64(lw)*scale) / 2
	dy := (float64(h) - float64(lh)*scale) / 2
	op.GeoM.Translate(dx, dy)
	screen.DrawImage(offscreen, op)
}
