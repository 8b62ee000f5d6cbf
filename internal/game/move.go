package game

// Move 表示一次从 From 到 To 的走子
type Move struct {
	From int
	To   int
}

// knightSteps 马的 12 种两步组合，绕格子一圈，每对相邻方向一种
var knightSteps = [12][2]Direction{
	{Left, UpLeft},
	{UpLeft, UpLeft},
	{UpRight, UpLeft},
	{UpRight, UpRight},
	{UpRight, Right},
	{Right, Right},
	{Right, DownRight},
	{DownRight, DownRight},
	{DownRight, DownLeft},
	{DownLeft, DownLeft},
	{DownLeft, Left},
	{Left, Left},
}

var (
	bishopDirs = []Direction{UpLeft, UpRight, DownRight, DownLeft}
	queenDirs  = Directions[:]
)

// generalLegs 将军：先走第一方向一步，再沿第二方向滑行
var generalLegs = [4][2]Direction{
	{UpLeft, Left},
	{UpRight, Right},
	{DownRight, Right},
	{DownLeft, Left},
}

// destSet 收集目的格，去重并保持首次出现的顺序
type destSet struct {
	seen [HexCount]bool
	out  []int
}

func (s *destSet) add(hex int) {
	if s.seen[hex] {
		return
	}
	s.seen[hex] = true
	s.out = append(s.out, hex)
}

// admissible 目标为空或是对方棋子（可吃）
func admissible(b *Board, color Player, t int) bool {
	return b.IsEmpty(t) || b.HasPieceOf(t, color.Opposite())
}

// LegalDestinations returns every hex the piece on hex may move to, not yet
// filtered by the fortress vulnerability rule. Empty hexes have no moves.
func LegalDestinations(b *Board, hex int) []int {
	p := b.At(hex)
	if p.IsEmpty() {
		return nil
	}
	var s destSet
	switch p.Kind {
	case King:
		genKingMoves(b, hex, p.Owner, &s)
	case Queen:
		genSlides(b, hex, p.Owner, queenDirs, &s)
	case Bishop:
		genSlides(b, hex, p.Owner, bishopDirs, &s)
	case Knight:
		genKnightMoves(b, hex, p.Owner, &s)
	case Fortress:
		genFortressMoves(b, hex, p.Owner, &s)
	case General:
		genGeneralMoves(b, hex, p.Owner, &s)
	case Pawn:
		genPawnMoves(b, hex, p.Owner, &s)
	}
	return s.out
}

// 王：相邻一步
func genKingMoves(b *Board, hex int, color Player, s *destSet) {
	for _, n := range Adjacent(hex) {
		if admissible(b, color, n) {
			s.add(n)
		}
	}
}

// slide 沿 d 滑行：空格继续，遇对方子吃掉后停，遇己方子直接停
func slide(b *Board, from int, color Player, d Direction, s *destSet) {
	c := from
	for {
		h, ok := Neighbor(c, d)
		if !ok {
			return
		}
		c = h
		if b.IsEmpty(h) {
			s.add(h)
			continue
		}
		if b.HasPieceOf(h, color.Opposite()) {
			s.add(h)
		}
		return
	}
}

// 后、象：多方向滑行
func genSlides(b *Board, hex int, color Player, dirs []Direction, s *destSet) {
	for _, d := range dirs {
		slide(b, hex, color, d, s)
	}
}

// step2 按两个方向连走两步，中间格是否有子不影响
func step2(hex int, first, second Direction) (int, bool) {
	one, ok := Neighbor(hex, first)
	if !ok {
		return 0, false
	}
	return Neighbor(one, second)
}

// 马：12 种组合各自独立，可以越子
func genKnightMoves(b *Board, hex int, color Player, s *destSet) {
	for _, st := range knightSteps {
		if t, ok := step2(hex, st[0], st[1]); ok && admissible(b, color, t) {
			s.add(t)
		}
	}
}

// 堡垒：王步 + 相邻空格 + 每种马步组合最多一个“两步到空格”的落点（不能吃子）
func genFortressMoves(b *Board, hex int, color Player, s *destSet) {
	genKingMoves(b, hex, color, s)
	for _, n := range Adjacent(hex) {
		if b.IsEmpty(n) {
			s.add(n)
		}
	}
	for _, st := range knightSteps {
		for _, order := range [2][2]Direction{{st[0], st[1]}, {st[1], st[0]}} {
			one, ok := Neighbor(hex, order[0])
			if !ok || !b.IsEmpty(one) {
				continue
			}
			two, ok := Neighbor(one, order[1])
			if !ok || !b.IsEmpty(two) {
				continue
			}
			s.add(two)
			break
		}
	}
}

// 将军：第一步若吃子则止，若为空则从那里沿第二方向滑行
func genGeneralMoves(b *Board, hex int, color Player, s *destSet) {
	for _, leg := range generalLegs {
		one, ok := Neighbor(hex, leg[0])
		if !ok {
			continue
		}
		switch {
		case b.HasPieceOf(one, color.Opposite()):
			s.add(one)
		case b.IsEmpty(one):
			s.add(one)
			slide(b, one, color, leg[1], s)
		}
	}
}

// pawnDirs 兵的前进方向：白向上，黑向下
func pawnDirs(color Player) (left, right Direction) {
	if color == White {
		return UpLeft, UpRight
	}
	return DownLeft, DownRight
}

// 兵：左前、右前可走可吃；两个斜前格都空时可直进两步（不能吃子）
func genPawnMoves(b *Board, hex int, color Player, s *destSet) {
	ld, rd := pawnDirs(color)
	l, lok := Neighbor(hex, ld)
	r, rok := Neighbor(hex, rd)
	if lok && admissible(b, color, l) {
		s.add(l)
	}
	if rok && admissible(b, color, r) {
		s.add(r)
	}
	if !lok || !rok || !b.IsEmpty(l) || !b.IsEmpty(r) {
		return
	}
	if far, ok := Neighbor(r, ld); ok && b.IsEmpty(far) {
		s.add(far)
	}
}

// CaptureAllowed reports whether hex may be chosen as a destination: anything
// except a Fortress attacked by at most one piece.
func CaptureAllowed(b *Board, hex int) bool {
	p := b.At(hex)
	if p.Kind == Fortress {
		return b.Threats[hex] > 1
	}
	return true
}

// Candidates 选中 hex 后真正可以落子的格子（已按堡垒规则过滤），用于高亮
func Candidates(b *Board, hex int) []int {
	dests := LegalDestinations(b, hex)
	out := dests[:0]
	for _, d := range dests {
		if CaptureAllowed(b, d) {
			out = append(out, d)
		}
	}
	return out
}

// MovesFor 列出 player 全部可走的着法（按起点、再按生成顺序）
func MovesFor(b *Board, player Player) []Move {
	var out []Move
	for hex := 0; hex < HexCount; hex++ {
		if !b.HasPieceOf(hex, player) {
			continue
		}
		for _, to := range Candidates(b, hex) {
			out = append(out, Move{From: hex, To: to})
		}
	}
	return out
}
