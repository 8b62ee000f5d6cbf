package game

import (
	"time"

	"github.com/google/uuid"
)

// Session 一局游戏的外壳：带 ID 和开始时间，界面层用它做日志和导出
type Session struct {
	ID        string
	StartedAt time.Time
	*GameState
}

// NewSession 用布局开一局新游戏
func NewSession(placement Placement) (*Session, error) {
	gs, err := NewGameState(placement)
	if err != nil {
		return nil, err
	}
	return &Session{ID: uuid.NewString(), StartedAt: time.Now(), GameState: gs}, nil
}

// NewSessionFromBoard 从给定局面开始
func NewSessionFromBoard(b *Board) *Session {
	return &Session{ID: uuid.NewString(), StartedAt: time.Now(), GameState: NewGameStateFromBoard(b)}
}

// Reset 重开一局，换新 ID
func (s *Session) Reset() error {
	if err := s.GameState.Reset(); err != nil {
		return err
	}
	s.ID = uuid.NewString()
	s.StartedAt = time.Now()
	return nil
}

// Export 导出用于剪贴板的文本：第一行是对局 ID 和状态，第二行是记谱
func (s *Session) Export() string {
	return "# " + s.ID + " " + s.State().String() + "\n" + Encode(s.Board()) + "\n"
}
