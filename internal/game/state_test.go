package game

import (
	"errors"
	"slices"
	"testing"
)

// click 测试辅助：点击一个格子并要求没有错误
func click(t *testing.T, gs *GameState, hex int) Outcome {
	t.Helper()
	out, err := gs.SubmitClick(hex, true)
	if err != nil {
		t.Fatalf("SubmitClick(%d): %v", hex, err)
	}
	return out
}

func wantState(t *testing.T, gs *GameState, want State) {
	t.Helper()
	if got := gs.State(); got != want {
		t.Fatalf("state = %s, want %s", got, want)
	}
}

func newDefaultGame(t *testing.T) *GameState {
	t.Helper()
	gs, err := NewGameState(DefaultPlacement())
	if err != nil {
		t.Fatal(err)
	}
	return gs
}

func TestPawnDoubleStepSwitchesTurn(t *testing.T) {
	gs := newDefaultGame(t)
	wantState(t, gs, State{Phase: Waiting, Player: White})

	if out := click(t, gs, 64); out.Kind != Selected {
		t.Fatalf("选中白兵得到 %s", out.Kind)
	}
	wantState(t, gs, State{Phase: SelectedPiece, Player: White, Selected: 64})
	if got := gs.Candidates(); !sameSet(got, []int{54, 55, 44}) {
		t.Fatalf("candidates = %v", got)
	}

	out := click(t, gs, 44)
	if out.Kind != Moved || out.Move != (Move{From: 64, To: 44}) || out.Promoted {
		t.Fatalf("unexpected outcome %+v", out)
	}
	b := gs.Board()
	if b.Hexes[44] != (Piece{Owner: White, Kind: Pawn}) || !b.Hexes[64].IsEmpty() {
		t.Error("兵没有移到 44")
	}
	if b.CurrentTurn != Black {
		t.Errorf("CurrentTurn = %s, want Black", b.CurrentTurn)
	}
	wantState(t, gs, State{Phase: Waiting, Player: Black})
	if b.Threats != CountThreats(b) {
		t.Error("走子后攻击数没有重算")
	}
	if gs.StatusText() != "Black turn" {
		t.Errorf("StatusText = %q", gs.StatusText())
	}
}

func TestClicksThatDoNothing(t *testing.T) {
	gs := newDefaultGame(t)
	for _, hex := range []int{45, 26} { // 空格、对方棋子
		if out := click(t, gs, hex); out.Kind != Ignored {
			t.Errorf("click %d: %s", hex, out.Kind)
		}
		wantState(t, gs, State{Phase: Waiting, Player: White})
	}
	if out, err := gs.SubmitClick(0, false); err != nil || out.Kind != Ignored {
		t.Errorf("棋盘外点击: %+v %v", out, err)
	}

	click(t, gs, 64)
	// 非候选的对方棋子：保持选中
	if out := click(t, gs, 26); out.Kind != Ignored {
		t.Errorf("click 26: %s", out.Kind)
	}
	if out, _ := gs.SubmitClick(0, false); out.Kind != Ignored {
		t.Errorf("棋盘外点击: %s", out.Kind)
	}
	wantState(t, gs, State{Phase: SelectedPiece, Player: White, Selected: 64})

	// 再点己方另一枚棋子：改选
	if out := click(t, gs, 65); out.Kind != Selected {
		t.Errorf("click 65: %s", out.Kind)
	}
	wantState(t, gs, State{Phase: SelectedPiece, Player: White, Selected: 65})

	// 点同一格：取消选中
	if out := click(t, gs, 65); out.Kind != Deselected {
		t.Errorf("click 65 again: %s", out.Kind)
	}
	wantState(t, gs, State{Phase: Waiting, Player: White})
	if gs.Candidates() != nil {
		t.Error("未选子时 Candidates 应为空")
	}
}

func TestOutOfRangeClickIsRejected(t *testing.T) {
	gs := newDefaultGame(t)
	before := *gs.Board()
	if _, err := gs.SubmitClick(HexCount, true); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if *gs.Board() != before {
		t.Error("越界点击不应修改棋盘")
	}
	wantState(t, gs, State{Phase: Waiting, Player: White})
}

func TestKingCaptureEndsGame(t *testing.T) {
	b := mustDecode(t, "3k2/7/8/9/91/92/91/9/8/2q4/2K3 b")
	gs := NewGameStateFromBoard(b)
	click(t, gs, 80)
	threats := b.Threats
	out := click(t, gs, 87)
	if out.Kind != Won || out.Captured != (Piece{Owner: White, Kind: King}) {
		t.Fatalf("unexpected outcome %+v", out)
	}
	wantState(t, gs, State{Phase: GameWonBy, Player: Black})
	if !gs.GameOver() || gs.StatusText() != "Black wins" {
		t.Errorf("GameOver=%v StatusText=%q", gs.GameOver(), gs.StatusText())
	}
	if b.CurrentTurn != Black {
		t.Error("终局不换手")
	}
	if b.Threats != threats {
		t.Error("吃王后不应重算攻击数")
	}
	if b.Threats == CountThreats(b) {
		t.Error("position too quiet: a recount would not change anything")
	}

	frozen := *b
	for _, hex := range []int{87, 3, 80, 45} {
		if out := click(t, gs, hex); out.Kind != Ignored {
			t.Errorf("终局后 click %d: %s", hex, out.Kind)
		}
	}
	if *b != frozen {
		t.Error("终局后棋盘被修改")
	}
	wantState(t, gs, State{Phase: GameWonBy, Player: Black})
}

func TestPawnPromotion(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		from, to int
		owner    Player
	}{
		{"WhiteTopRank", "1n1k2/1P5/8/9/91/92/91/9/8/7/2K3 w", 7, 0, White},
		{"WhiteCapturePromotes", "1n1k2/1P5/8/9/91/92/91/9/8/7/2K3 w", 7, 1, White},
		{"BlackBottomRank", "3k2/7/8/9/91/92/91/9/8/5p1/2K3 b", 83, 90, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameStateFromBoard(mustDecode(t, tt.notation))
			click(t, gs, tt.from)
			out := click(t, gs, tt.to)
			if out.Kind != Moved || !out.Promoted {
				t.Fatalf("unexpected outcome %+v", out)
			}
			if got := gs.Board().Hexes[tt.to]; got != (Piece{Owner: tt.owner, Kind: Queen}) {
				t.Errorf("hex %d = %+v, want %s Queen", tt.to, got, tt.owner)
			}
			wantState(t, gs, State{Phase: Waiting, Player: tt.owner.Opposite()})
		})
	}

	if IsQueeningHex(84, Black) || !IsQueeningHex(85, Black) || !IsQueeningHex(5, White) || IsQueeningHex(6, White) {
		t.Error("IsQueeningHex 边界错误")
	}
}

func TestFortressLosesVulnerabilityWhenAttackerLeaves(t *testing.T) {
	gs := NewGameStateFromBoard(mustDecode(t, "p2k2/7/8/9/91/Q4f5/91/5N3/8/7/2K3 w"))

	click(t, gs, 40)
	if !slices.Contains(gs.Candidates(), 45) {
		t.Fatal("两枚攻击者时 45 应是候选")
	}
	// 改选马并移到 55，不再攻击 45
	if out := click(t, gs, 66); out.Kind != Selected {
		t.Fatalf("click 66: %s", out.Kind)
	}
	if out := click(t, gs, 55); out.Kind != Moved {
		t.Fatalf("knight move: %s", out.Kind)
	}
	if n := gs.Board().Threats[45]; n != 1 {
		t.Fatalf("Threats[45] = %d, want 1", n)
	}

	click(t, gs, 0)
	if out := click(t, gs, 6); out.Kind != Moved {
		t.Fatalf("black pawn move: %s", out.Kind)
	}

	click(t, gs, 40)
	if slices.Contains(gs.Candidates(), 45) {
		t.Error("只剩一枚攻击者时 45 不应是候选")
	}
	if out := click(t, gs, 45); out.Kind != Ignored {
		t.Errorf("吃堡垒应被忽略，得到 %s", out.Kind)
	}
	wantState(t, gs, State{Phase: SelectedPiece, Player: White, Selected: 40})
}

func TestStateInvariantHoldsOverAGame(t *testing.T) {
	gs := newDefaultGame(t)
	// 每步选第一枚有候选的棋子和它的第一个候选
	for ply := 0; ply < 40 && !gs.GameOver(); ply++ {
		moved := false
		for hex := 0; hex < HexCount && !moved; hex++ {
			if !gs.Board().HasPieceOf(hex, gs.Board().CurrentTurn) {
				continue
			}
			cands := Candidates(gs.Board(), hex)
			if len(cands) == 0 {
				continue
			}
			click(t, gs, hex)
			if gs.State().Player != gs.Board().CurrentTurn {
				t.Fatalf("ply %d: state %s, turn %s", ply, gs.State(), gs.Board().CurrentTurn)
			}
			out := click(t, gs, cands[0])
			if out.Kind != Moved && out.Kind != Won {
				t.Fatalf("ply %d: %d->%d gave %s", ply, hex, cands[0], out.Kind)
			}
			moved = true
		}
		if !moved {
			break
		}
		if !gs.GameOver() && gs.Board().Threats != CountThreats(gs.Board()) {
			t.Fatalf("ply %d: stale threats", ply)
		}
	}
}

func TestReset(t *testing.T) {
	gs := newDefaultGame(t)
	click(t, gs, 64)
	click(t, gs, 44)
	if err := gs.Reset(); err != nil {
		t.Fatal(err)
	}
	wantState(t, gs, State{Phase: Waiting, Player: White})
	fresh, _ := NewBoard(DefaultPlacement())
	if *gs.Board() != *fresh {
		t.Error("Reset 之后不是开局局面")
	}
}

func TestResetReturnsToStartingPosition(t *testing.T) {
	const start = "3k2/7/8/9/91/92/91/9/8/2q4/2K3 b"
	gs := NewGameStateFromBoard(mustDecode(t, start))
	click(t, gs, 80)
	click(t, gs, 79)
	if Encode(gs.Board()) == start {
		t.Fatal("move was not applied")
	}
	if err := gs.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := Encode(gs.Board()); got != start {
		t.Errorf("after Reset = %q, want %q", got, start)
	}
	wantState(t, gs, State{Phase: Waiting, Player: Black})

	// 再走一步后再重开，起始局面不能被上一局改掉
	click(t, gs, 80)
	click(t, gs, 87)
	if err := gs.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := Encode(gs.Board()); got != start {
		t.Errorf("second Reset = %q, want %q", got, start)
	}
}

func TestNewGameStateRejectsBadPlacement(t *testing.T) {
	if _, err := NewGameState(Placement{60: Pawn}); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("err = %v, want ErrInvalidPlacement", err)
	}
	if _, err := NewGameState(Placement{3: NoKind}); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("err = %v, want ErrInvalidPlacement", err)
	}
}

func TestPlay(t *testing.T) {
	gs := newDefaultGame(t)
	out, err := gs.Play(Move{From: 64, To: 44})
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != Moved || gs.Board().Hexes[44] != (Piece{Owner: White, Kind: Pawn}) {
		t.Fatalf("outcome %+v, hex 44 = %+v", out, gs.Board().Hexes[44])
	}
	wantState(t, gs, State{Phase: Waiting, Player: Black})

	// 白子不能在黑方回合走；非候选格也不行
	for _, m := range []Move{{From: 65, To: 55}, {From: 26, To: 45}, {From: 45, To: 35}} {
		if _, err := gs.Play(m); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Play(%v) err = %v, want ErrIllegalMove", m, err)
		}
	}
	wantState(t, gs, State{Phase: Waiting, Player: Black})

	if _, err := gs.Play(Move{From: 26, To: 91}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}
