package game

import "fmt"

// Player is one of the two sides. White moves first.
type Player int

const (
	White Player = iota
	Black
)

// Opposite 返回对手
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// PieceKind 棋子种类，集合固定；零值 NoKind 表示空格
type PieceKind int

const (
	NoKind PieceKind = iota
	King
	Queen
	Knight
	Bishop
	Fortress
	General
	Pawn
)

var kindNames = [...]string{"", "King", "Queen", "Knight", "Bishop", "Fortress", "General", "Pawn"}
var kindCodes = [...]byte{'.', 'K', 'Q', 'N', 'B', 'F', 'G', 'P'}

func (k PieceKind) String() string {
	if k < NoKind || int(k) >= len(kindNames) {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return kindNames[k]
}

// Code 返回单字母代号（K Q N B F G P），空格为 '.'
func (k PieceKind) Code() byte {
	if k < NoKind || int(k) >= len(kindCodes) {
		return '?'
	}
	return kindCodes[k]
}

// KindFromCode 是 Code 的逆运算，大小写均可
func KindFromCode(c byte) (PieceKind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for k := King; k <= Pawn; k++ {
		if kindCodes[k] == c {
			return k, true
		}
	}
	return NoKind, false
}

// Piece 格子上的占用者；Kind == NoKind 时为空
type Piece struct {
	Owner Player
	Kind  PieceKind
}

func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Board 棋盘：占用、轮到谁走、每格被攻击数
// Threats 只在最近一次 Recount 之后有效
type Board struct {
	Hexes       [HexCount]Piece
	CurrentTurn Player
	Threats     [HexCount]uint8
}

// Placement 初始布局：格子编号 -> 棋子种类，只描述上半盘（黑方）。
// 白方在 HexCount-1-idx 处镜像放置。
type Placement map[int]PieceKind

// DefaultPlacement 标准开局
func DefaultPlacement() Placement {
	return Placement{
		0: Pawn, 1: Bishop, 2: Queen, 3: King, 4: Bishop, 5: Pawn,
		7: Pawn, 8: Knight, 9: Fortress, 10: Knight, 11: Pawn,
		15: Pawn, 16: General, 17: General, 18: Pawn,
		24: Pawn, 25: Pawn, 26: Pawn,
	}
}

// Validate 检查布局是否只落在上半盘且种类合法
func (pl Placement) Validate() error {
	for hex, kind := range pl {
		if hex < 0 || hex >= HexCount/2 {
			return fmt.Errorf("%w: hex %d outside the top half", ErrInvalidPlacement, hex)
		}
		if kind <= NoKind || kind > Pawn {
			return fmt.Errorf("%w: hex %d has unknown kind %d", ErrInvalidPlacement, hex, int(kind))
		}
	}
	return nil
}

// NewBoard builds the starting board from placement, White to move, with
// attacker counts already computed.
func NewBoard(placement Placement) (*Board, error) {
	if err := placement.Validate(); err != nil {
		return nil, err
	}
	b := &Board{CurrentTurn: White}
	for hex, kind := range placement {
		b.Hexes[hex] = Piece{Owner: Black, Kind: kind}
		b.Hexes[HexCount-1-hex] = Piece{Owner: White, Kind: kind}
	}
	b.Recount()
	return b, nil
}

// At returns the occupant of hex (empty Piece if none).
func (b *Board) At(hex int) Piece {
	mustHex(hex)
	return b.Hexes[hex]
}

// IsEmpty 格子是否为空
func (b *Board) IsEmpty(hex int) bool {
	return b.At(hex).IsEmpty()
}

// HasPieceOf 格子上是否是 player 的棋子
func (b *Board) HasPieceOf(hex int, player Player) bool {
	p := b.At(hex)
	return !p.IsEmpty() && p.Owner == player
}

// set 放置（或清空）一个格子并立即重算攻击数，保持占用与计数一致
func (b *Board) set(hex int, p Piece) error {
	if err := CheckHex(hex); err != nil {
		return err
	}
	b.Hexes[hex] = p
	b.Recount()
	return nil
}

// IsQueeningHex 兵到达该格即升变：白方 0..5，黑方 85..90
func IsQueeningHex(hex int, player Player) bool {
	if player == White {
		return hex >= 0 && hex < RankLengths[0]
	}
	last := len(RankLengths) - 1
	return hex >= rankStart[last] && hex < HexCount
}
