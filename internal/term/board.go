// Package term is a terminal front-end for hexchess built on tview.
package term

import (
	"fmt"
	"log"
	"slices"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hexchess/internal/game"
)

const (
	cellW   = 4 // 每个格子占 4 列：" K " + 间隔
	marginL = 2
	marginT = 1
)

// indent 第 r 行的左缩进（列），中间行最宽、不缩进
func indent(r int) int {
	d := r - 5
	if d < 0 {
		d = -d
	}
	return d * cellW / 2
}

// cellOrigin 格子在棋盘区域内的左上角（列, 行）
func cellOrigin(hex int) (int, int) {
	r, f := game.Rank(hex), game.File(hex)
	return marginL + indent(r) + f*cellW, marginT + r
}

// hexAt 棋盘区域内 (col, row) 落在哪个格子上；格子间隔列不算
func hexAt(col, row int) (int, bool) {
	r := row - marginT
	if r < 0 || r >= len(game.RankLengths) {
		return 0, false
	}
	c := col - marginL - indent(r)
	if c < 0 || c%cellW == cellW-1 {
		return 0, false
	}
	return game.HexAt(r, c/cellW)
}

// HexBoardUI 终端棋盘控件：鼠标点击或光标+回车提交点击
type HexBoardUI struct {
	Box     *tview.Box
	session *game.Session
	hint    *tview.TextView
	cursor  int
	message string
}

func NewHexBoard(session *game.Session, hint *tview.TextView) *HexBoardUI {
	hb := &HexBoardUI{
		Box:     tview.NewBox(),
		session: session,
		hint:    hint,
		cursor:  game.HexCount / 2,
	}
	hb.Box.SetDrawFunc(hb.draw)
	hb.Box.SetMouseCapture(hb.handleMouse)
	hb.Box.SetInputCapture(hb.handleKey)
	hb.refreshHint()
	return hb
}

func (hb *HexBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	candidates := hb.session.Candidates()
	st := hb.session.State()
	for hex := 0; hex < game.HexCount; hex++ {
		bg := tcell.ColorSaddleBrown
		switch {
		case st.Phase == game.SelectedPiece && hex == st.Selected:
			bg = tcell.ColorRed
		case st.Phase != game.GameWonBy && hex == hb.cursor && slices.Contains(candidates, hex):
			bg = tcell.ColorLime
		case st.Phase != game.GameWonBy && hex == hb.cursor:
			bg = tcell.ColorOrange
		case slices.Contains(candidates, hex):
			bg = tcell.ColorGreen
		}
		p := hb.session.Board().Hexes[hex]
		fg := tcell.ColorWhite
		glyph := ' '
		if !p.IsEmpty() {
			glyph = rune(p.Kind.Code())
			if p.Owner == game.Black {
				fg = tcell.ColorBlack
			}
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true)
		cx, cy := cellOrigin(hex)
		screen.SetContent(x+cx, y+cy, ' ', nil, style)
		screen.SetContent(x+cx+1, y+cy, glyph, nil, style)
		screen.SetContent(x+cx+2, y+cy, ' ', nil, style)
	}
	w := marginL + indent(5) + game.RankLengths[5]*cellW
	return x, y, w, marginT + len(game.RankLengths)
}

// handleMouse 左键点击：棋盘外的点击也提交（ok=false）
func (hb *HexBoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	bx, by, _, _ := hb.Box.GetInnerRect()
	mx, my := event.Position()
	hex, ok := hexAt(mx-bx, my-by)
	if ok {
		hb.cursor = hex
	}
	hb.Click(hex, ok)
	return action, nil
}

func (hb *HexBoardUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		hb.MoveCursor(game.UpLeft, game.UpRight)
	case tcell.KeyDown:
		hb.MoveCursor(game.DownRight, game.DownLeft)
	case tcell.KeyLeft:
		hb.MoveCursor(game.Left)
	case tcell.KeyRight:
		hb.MoveCursor(game.Right)
	case tcell.KeyEnter:
		hb.Click(hb.cursor, true)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'r':
			hb.Reset()
		case 'c':
			hb.Copy()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// MoveCursor 按给定方向依次尝试移动光标，第一个存在的邻居生效
func (hb *HexBoardUI) MoveCursor(dirs ...game.Direction) {
	for _, d := range dirs {
		if n, ok := game.Neighbor(hb.cursor, d); ok {
			hb.cursor = n
			return
		}
	}
}

// Click 把一次点击交给对局，并更新提示
func (hb *HexBoardUI) Click(hex int, ok bool) {
	out, err := hb.session.SubmitClick(hex, ok)
	if err != nil {
		log.Printf("submit click %d: %v", hex, err)
		return
	}
	switch out.Kind {
	case game.Moved, game.Won:
		hb.message = fmt.Sprintf("%d -> %d", out.Move.From, out.Move.To)
		if !out.Captured.IsEmpty() {
			hb.message += fmt.Sprintf(" x %s", out.Captured.Kind)
		}
		if out.Promoted {
			hb.message += " =Q"
		}
		log.Printf("game %s: %s", hb.session.ID, hb.message)
	}
	hb.refreshHint()
}

// Reset 重开一局
func (hb *HexBoardUI) Reset() {
	if err := hb.session.Reset(); err != nil {
		hb.message = err.Error()
	} else {
		hb.message = ""
		log.Printf("game %s started", hb.session.ID)
	}
	hb.refreshHint()
}

// Copy 把当前局面复制到剪贴板
func (hb *HexBoardUI) Copy() {
	if err := clipboard.WriteAll(hb.session.Export()); err != nil {
		hb.message = "clipboard: " + err.Error()
	} else {
		hb.message = "position copied"
	}
	hb.refreshHint()
}

func (hb *HexBoardUI) refreshHint() {
	if hb.hint == nil {
		return
	}
	hb.hint.SetText(fmt.Sprintf("  %s\n  %s\n  %s\n\n  mouse/arrows+⏎ play   r reset   c copy   q quit",
		hb.session.StatusText(), hb.session.State(), hb.message))
}
