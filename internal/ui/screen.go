// File /ui/screen.go
package ui

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"hexchess/internal/config"
	"hexchess/internal/game"
)

// GameScreen 实现 ebiten.Game 接口，管理主循环和渲染
type GameScreen struct {
	boardView
	session   *game.Session
	cfg       *config.Config
	offscreen *ebiten.Image
	anims     []*FlashAnim // 最近一步的高亮
	hover     int          // 鼠标下的格子，-1 表示棋盘外
}

// NewGameScreen 构造并初始化游戏界面
func NewGameScreen(cfg *config.Config) (*GameScreen, error) {
	session, err := cfg.NewSession()
	if err != nil {
		return nil, err
	}
	gs := &GameScreen{
		boardView: newBoardView(cfg),
		session:   session,
		cfg:       cfg,
		offscreen: ebiten.NewImage(cfg.Window.Width, cfg.Window.Height),
		hover:     -1,
	}
	log.Printf("game %s started: %s", session.ID, game.Encode(session.Board()))
	return gs, nil
}

// Update 每帧更新：处理输入、清理播完的动画
func (gs *GameScreen) Update() error {
	gs.handleInput()
	gs.pruneAnims()
	return nil
}

// Draw 先画到 offscreen，再缩放居中到窗口
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	gs.offscreen.Fill(color.Black)

	gs.drawBoard(gs.offscreen)
	gs.drawAnims(gs.offscreen)
	gs.drawPieces(gs.offscreen, gs.session.Board())
	gs.drawStatus(gs.offscreen)

	present(screen, gs.offscreen, gs.cfg.Window.Width, gs.cfg.Window.Height)
}

// Layout 定义逻辑尺寸
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gs.cfg.Window.Width, gs.cfg.Window.Height
}

func screenScale(w, h, lw, lh int) float64 {
	return math.Min(float64(w)/float64(lw), float64(h)/float64(lh))
}
