package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"hexchess/internal/geom"
)

// whiteSubImage 用作 DrawTriangles 的纯白纹理
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// HexTile 生成一块白色尖顶六边形贴图，外接圆半径 radius 像素，绘制时用 ColorScale 着色
func HexTile(radius float64) *ebiten.Image {
	w := int(2*radius*geom.Cos30) + 2
	h := int(2*radius) + 2
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2

	var path vector.Path
	for i, v := range geom.HexVertices {
		x, y := cx+float32(v[0]*radius), cy+float32(v[1]*radius)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
	}
	img.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	return img
}

// GlyphFace 棋子字母和状态文字用的位图字体，scale 为放大倍数
type GlyphFace struct {
	Face  text.Face
	Scale float64
}

// NewGlyphFace 包装 x/image 的 basicfont 7x13
func NewGlyphFace(scale float64) GlyphFace {
	return GlyphFace{Face: text.NewGoXFace(basicfont.Face7x13), Scale: scale}
}

// DrawCentered 以 (x, y) 为中心绘制一段文字
func (g GlyphFace) DrawCentered(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	w, h := text.Measure(s, g.Face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(g.Scale, g.Scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.Face, op)
}

// DrawAt 以左上角 (x, y) 绘制文字
func (g GlyphFace) DrawAt(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(g.Scale, g.Scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.Face, op)
}
