package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode 把局面写成一行记谱：11 行用 "/" 隔开，连续空格写成数字（超过 9 拆成多个数字），
// 白方大写、黑方小写，空格后 w/b 表示轮到谁走。例如开局第一行 "pbqkbp"。
func Encode(b *Board) string {
	var sb strings.Builder
	for r, n := range RankLengths {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		flush := func() {
			for empty > 0 {
				k := min(empty, 9)
				sb.WriteByte(byte('0' + k))
				empty -= k
			}
		}
		for f := 0; f < n; f++ {
			p := b.Hexes[rankStart[r]+f]
			if p.IsEmpty() {
				empty++
				continue
			}
			flush()
			c := p.Kind.Code()
			if p.Owner == Black {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		flush()
	}
	if b.CurrentTurn == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}

// Decode 解析 Encode 的输出，返回已重算攻击数的棋盘
func Decode(s string) (*Board, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want \"<ranks> <w|b>\", got %q", ErrInvalidNotation, s)
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != len(RankLengths) {
		return nil, fmt.Errorf("%w: %d ranks, want %d", ErrInvalidNotation, len(ranks), len(RankLengths))
	}
	b := &Board{}
	for r, row := range ranks {
		f := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '9' {
				f += int(ch - '0')
				continue
			}
			kind, ok := KindFromCode(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q in rank %d", ErrInvalidNotation, ch, r)
			}
			if f >= RankLengths[r] {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidNotation, r)
			}
			owner := White
			if ch >= 'a' && ch <= 'z' {
				owner = Black
			}
			b.Hexes[rankStart[r]+f] = Piece{Owner: owner, Kind: kind}
			f++
		}
		if f != RankLengths[r] {
			return nil, fmt.Errorf("%w: rank %d has %d hexes, want %d", ErrInvalidNotation, r, f, RankLengths[r])
		}
	}
	switch parts[1] {
	case "w":
		b.CurrentTurn = White
	case "b":
		b.CurrentTurn = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidNotation, parts[1])
	}
	b.Recount()
	return b, nil
}

// String 着法写成 "from-to"，例如 "64-54"
func (m Move) String() string {
	return fmt.Sprintf("%d-%d", m.From, m.To)
}

// ParseMove 解析 "from-to"
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidNotation, s)
	}
	var m Move
	var err error
	if m.From, err = strconv.Atoi(from); err != nil {
		return Move{}, fmt.Errorf("%w: move %q: %v", ErrInvalidNotation, s, err)
	}
	if m.To, err = strconv.Atoi(to); err != nil {
		return Move{}, fmt.Errorf("%w: move %q: %v", ErrInvalidNotation, s, err)
	}
	if CheckHex(m.From) != nil || CheckHex(m.To) != nil {
		return Move{}, fmt.Errorf("%w: move %q", ErrOutOfRange, s)
	}
	return m, nil
}

// ParseMoves 解析空格分隔的着法列表
func ParseMoves(s string) ([]Move, error) {
	var out []Move
	for _, f := range strings.Fields(s) {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// FormatMoves 是 ParseMoves 的逆运算
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
