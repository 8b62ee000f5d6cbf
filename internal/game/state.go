package game

import (
	"fmt"
	"slices"
)

// Phase 交互状态的标签
type Phase int

const (
	Waiting       Phase = iota // 未选子
	SelectedPiece              // 已选中 Selected 上的己方棋子
	GameWonBy                  // 终局，Player 为胜者
)

// State 是带数据的状态：Waiting(Player) / SelectedPiece(Player, Selected) / GameWonBy(Player)
type State struct {
	Phase    Phase
	Player   Player
	Selected int // 仅 SelectedPiece 有意义
}

func (s State) String() string {
	switch s.Phase {
	case Waiting:
		return fmt.Sprintf("Waiting(%s)", s.Player)
	case SelectedPiece:
		return fmt.Sprintf("SelectedPiece(%s, %d)", s.Player, s.Selected)
	case GameWonBy:
		return fmt.Sprintf("GameWonBy(%s)", s.Player)
	}
	return fmt.Sprintf("State(%d)", int(s.Phase))
}

// OutcomeKind 一次点击产生的结果
type OutcomeKind int

const (
	Ignored OutcomeKind = iota
	Selected
	Deselected
	Moved
	Won
)

func (k OutcomeKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Moved:
		return "moved"
	case Won:
		return "won"
	}
	return "ignored"
}

// Outcome 描述点击的效果，供界面做日志/提示；非法点击只是 Ignored，不是错误
type Outcome struct {
	Kind     OutcomeKind
	Move     Move  // Moved / Won 时有效
	Captured Piece // 被吃掉的棋子，可能为空
	Promoted bool  // 兵升变为后
}

// GameState 持有棋盘和交互状态，是唯一会修改棋盘的地方
type GameState struct {
	board     *Board
	state     State
	placement Placement
	start     *Board // 从局面开局时的起始局面，Reset 用；按值复制，不随对局变化
}

// NewGameState 用初始布局创建一局新游戏，白方先走
func NewGameState(placement Placement) (*GameState, error) {
	b, err := NewBoard(placement)
	if err != nil {
		return nil, err
	}
	return &GameState{
		board:     b,
		state:     State{Phase: Waiting, Player: b.CurrentTurn},
		placement: placement,
	}, nil
}

// NewGameStateFromBoard 从任意局面开始（例如解析出的记谱），轮到 b.CurrentTurn
func NewGameStateFromBoard(b *Board) *GameState {
	b.Recount()
	start := *b
	return &GameState{
		board: b,
		state: State{Phase: Waiting, Player: b.CurrentTurn},
		start: &start,
	}
}

func (gs *GameState) Board() *Board { return gs.board }
func (gs *GameState) State() State  { return gs.state }

// GameOver 是否已经分出胜负
func (gs *GameState) GameOver() bool { return gs.state.Phase == GameWonBy }

// Candidates 当前选中棋子可落的格子；未选子时为空
func (gs *GameState) Candidates() []int {
	if gs.state.Phase != SelectedPiece {
		return nil
	}
	return Candidates(gs.board, gs.state.Selected)
}

// StatusText 例如 "White turn" / "Black wins"
func (gs *GameState) StatusText() string {
	if gs.state.Phase == GameWonBy {
		return fmt.Sprintf("%s wins", gs.state.Player)
	}
	return fmt.Sprintf("%s turn", gs.board.CurrentTurn)
}

// SubmitClick feeds one "pointer released" event. ok is false when the
// pointer was outside the board. An index that is not a board hex is a caller
// bug and is rejected with ErrOutOfRange; everything else is applied or ignored
// atomically.
func (gs *GameState) SubmitClick(hex int, ok bool) (Outcome, error) {
	if ok {
		if err := CheckHex(hex); err != nil {
			return Outcome{}, err
		}
	}
	switch gs.state.Phase {
	case Waiting:
		p := gs.state.Player
		if ok && gs.board.HasPieceOf(hex, p) {
			gs.state = State{Phase: SelectedPiece, Player: p, Selected: hex}
			return Outcome{Kind: Selected}, nil
		}
	case SelectedPiece:
		if !ok {
			return Outcome{}, nil
		}
		p, sel := gs.state.Player, gs.state.Selected
		if hex == sel {
			gs.state = State{Phase: Waiting, Player: p}
			return Outcome{Kind: Deselected}, nil
		}
		if slices.Contains(Candidates(gs.board, sel), hex) {
			return gs.apply(Move{From: sel, To: hex}), nil
		}
		if gs.board.HasPieceOf(hex, p) {
			gs.state = State{Phase: SelectedPiece, Player: p, Selected: hex}
			return Outcome{Kind: Selected}, nil
		}
	}
	// GameWonBy 冻结一切
	return Outcome{}, nil
}

// Play 直接走一步（回放、脚本用），等价于先点起点再点终点。
// 与 SubmitClick 不同，不合法的着法返回 ErrIllegalMove，状态不变。
func (gs *GameState) Play(m Move) (Outcome, error) {
	if err := CheckHex(m.From); err != nil {
		return Outcome{}, err
	}
	if err := CheckHex(m.To); err != nil {
		return Outcome{}, err
	}
	p := gs.state.Player
	if gs.state.Phase == GameWonBy || !gs.board.HasPieceOf(m.From, p) ||
		!slices.Contains(Candidates(gs.board, m.From), m.To) {
		return Outcome{}, fmt.Errorf("%w: %s by %s", ErrIllegalMove, m, p)
	}
	return gs.apply(m), nil
}

// apply 执行走子：升变、吃王判胜，否则换手并重算攻击数
func (gs *GameState) apply(m Move) Outcome {
	b := gs.board
	p := gs.state.Player
	moved := b.Hexes[m.From]
	target := b.Hexes[m.To]

	out := Outcome{Kind: Moved, Move: m, Captured: target}
	if moved.Kind == Pawn && IsQueeningHex(m.To, p) {
		moved.Kind = Queen
		out.Promoted = true
	}
	b.Hexes[m.To] = moved
	b.Hexes[m.From] = Piece{}

	if target.Kind == King {
		// 终局：不换手，不重算
		gs.state = State{Phase: GameWonBy, Player: p}
		out.Kind = Won
		return out
	}
	b.CurrentTurn = p.Opposite()
	b.Recount()
	gs.state = State{Phase: Waiting, Player: b.CurrentTurn}
	return out
}

// Reset 重置到开局：从局面构造的对局回到那个局面，否则按同一布局重新摆子
func (gs *GameState) Reset() error {
	if gs.start != nil {
		b := *gs.start
		gs.board = &b
		gs.state = State{Phase: Waiting, Player: b.CurrentTurn}
		return nil
	}
	pl := gs.placement
	if pl == nil {
		pl = DefaultPlacement()
	}
	ngs, err := NewGameState(pl)
	if err != nil {
		return err
	}
	*gs = *ngs
	return nil
}
