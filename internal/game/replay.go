package game

import "fmt"

// Replay 按着法列表回放一局，可以前进、后退、跳转
type Replay struct {
	ID        string
	Winner    string
	placement Placement
	moves     []Move
	step      int // 已走的着法数
	gs        *GameState
}

// NewReplay 从布局开始回放 moves；先完整走一遍确认每一步都合法
func NewReplay(placement Placement, moves []Move) (*Replay, error) {
	r := &Replay{placement: placement, moves: moves}
	if err := r.Seek(len(moves)); err != nil {
		return nil, err
	}
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Replay) Len() int           { return len(r.moves) }
func (r *Replay) Step() int          { return r.step }
func (r *Replay) Board() *Board      { return r.gs.Board() }
func (r *Replay) State() State       { return r.gs.State() }
func (r *Replay) StatusText() string { return r.gs.StatusText() }

// LastMove 最近走的一步，开局时没有
func (r *Replay) LastMove() (Move, bool) {
	if r.step == 0 {
		return Move{}, false
	}
	return r.moves[r.step-1], true
}

// Forward 走下一步，已到终局返回 false
func (r *Replay) Forward() bool {
	if r.step >= len(r.moves) {
		return false
	}
	if _, err := r.gs.Play(r.moves[r.step]); err != nil {
		// NewReplay 已验证过整局
		panic(err)
	}
	r.step++
	return true
}

// Back 退一步：从开局重走到 step-1
func (r *Replay) Back() bool {
	if r.step == 0 {
		return false
	}
	if err := r.Seek(r.step - 1); err != nil {
		panic(err)
	}
	return true
}

// Seek 从开局重走前 n 步
func (r *Replay) Seek(n int) error {
	if n < 0 || n > len(r.moves) {
		return fmt.Errorf("seek %d outside [0, %d]", n, len(r.moves))
	}
	gs, err := NewGameState(r.placement)
	if err != nil {
		return err
	}
	for i, m := range r.moves[:n] {
		if _, err := gs.Play(m); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	r.gs, r.step = gs, n
	return nil
}
