package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hexchess/internal/config"
	"hexchess/internal/game"
)

// ReplayScreen 逐步回放若干局：空格播放/暂停，左右单步，上下切换对局
type ReplayScreen struct {
	boardView
	cfg         *config.Config
	games       []*game.Replay
	gi          int
	playing     bool
	delay       time.Duration
	lastAdvance time.Time
	offscreen   *ebiten.Image
}

func NewReplayScreen(cfg *config.Config, games []*game.Replay, delay time.Duration) (*ReplayScreen, error) {
	if len(games) == 0 {
		return nil, fmt.Errorf("nothing to replay")
	}
	return &ReplayScreen{
		boardView:   newBoardView(cfg),
		cfg:         cfg,
		games:       games,
		delay:       delay,
		lastAdvance: time.Now(),
		offscreen:   ebiten.NewImage(cfg.Window.Width, cfg.Window.Height),
	}, nil
}

func (rs *ReplayScreen) current() *game.Replay { return rs.games[rs.gi] }

func (rs *ReplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		rs.playing = !rs.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		rs.playing = false
		rs.current().Forward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		rs.playing = false
		rs.current().Back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && rs.gi < len(rs.games)-1 {
		rs.gi++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && rs.gi > 0 {
		rs.gi--
	}

	if rs.playing && time.Since(rs.lastAdvance) >= rs.delay {
		rs.lastAdvance = time.Now()
		if !rs.current().Forward() {
			// 一局放完接着放下一局
			if rs.gi < len(rs.games)-1 {
				rs.gi++
			} else {
				rs.playing = false
			}
		}
	}
	return nil
}

func (rs *ReplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	rs.offscreen.Fill(color.Black)

	r := rs.current()
	last, hasLast := r.LastMove()
	for hex := 0; hex < game.HexCount; hex++ {
		clr := rs.colors.board
		if hasLast && (hex == last.From || hex == last.To) {
			clr = rs.colors.candidate
		}
		rs.drawTile(rs.offscreen, hex, clr, 1)
	}
	rs.drawPieces(rs.offscreen, r.Board())

	state := "paused"
	if rs.playing {
		state = "playing"
	}
	info := fmt.Sprintf("Game %d/%d %s  Step %d/%d  Winner=%s  [%s]",
		rs.gi+1, len(rs.games), r.ID, r.Step(), r.Len(), r.Winner, state)
	rs.infoFace.DrawAt(rs.offscreen, r.StatusText(), 12, 8, color.White)
	ebitenutil.DebugPrintAt(rs.offscreen, info, 12, rs.cfg.Window.Height-40)
	ebitenutil.DebugPrintAt(rs.offscreen, "space play/pause  <- -> step  up/down game", 12, rs.cfg.Window.Height-20)

	present(screen, rs.offscreen, rs.cfg.Window.Width, rs.cfg.Window.Height)
}

func (rs *ReplayScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return rs.cfg.Window.Width, rs.cfg.Window.Height
}
