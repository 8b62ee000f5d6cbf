package game

import "fmt"

// HexCount 是棋盘格子总数（11 行，6..11..6）
const HexCount = 91

// RankLengths 每一行（rank）的格子数，第 5 行最宽，上下对称
var RankLengths = [11]int{6, 7, 8, 9, 10, 11, 10, 9, 8, 7, 6}

// rankStart[r] 是第 r 行第一个格子的线性编号
var rankStart [len(RankLengths) + 1]int

func init() {
	for r, n := range RankLengths {
		rankStart[r+1] = rankStart[r] + n
	}
}

// Direction 六个相邻方向，顺序固定：左上、右上、右、右下、左下、左
type Direction int

const (
	UpLeft Direction = iota
	UpRight
	Right
	DownRight
	DownLeft
	Left
)

// Directions 按 Adjacent 使用的固定顺序列出全部方向
var Directions = [6]Direction{UpLeft, UpRight, Right, DownRight, DownLeft, Left}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// CheckHex returns an error wrapping ErrOutOfRange if hex is not a board index.
func CheckHex(hex int) error {
	if hex < 0 || hex >= HexCount {
		return fmt.Errorf("%w: %d", ErrOutOfRange, hex)
	}
	return nil
}

// mustHex 在越界时 panic：拓扑函数只接受合法编号，越界说明调用方有 bug
func mustHex(hex int) {
	if err := CheckHex(hex); err != nil {
		panic(err)
	}
}

// Rank 返回格子所在的行
func Rank(hex int) int {
	mustHex(hex)
	r := 0
	for rankStart[r+1] <= hex {
		r++
	}
	return r
}

// File 返回格子在本行中的位置
func File(hex int) int {
	return hex - rankStart[Rank(hex)]
}

// HexAt 是 Rank/File 的逆运算；坐标不在棋盘上时返回 false
func HexAt(rank, file int) (int, bool) {
	if rank < 0 || rank >= len(RankLengths) {
		return 0, false
	}
	if file < 0 || file >= RankLengths[rank] {
		return 0, false
	}
	return rankStart[rank] + file, true
}

func OnLeftEdge(hex int) bool   { return File(hex) == 0 }
func OnRightEdge(hex int) bool  { return File(hex) == RankLengths[Rank(hex)]-1 }
func OnTopRank(hex int) bool    { return Rank(hex) == 0 }
func OnBottomRank(hex int) bool { return Rank(hex) == len(RankLengths)-1 }

// Neighbor returns the hex adjacent to hex in direction d.
//
// 相邻两行长度差 1：目标行更长时，左右两个邻居在 file f 和 f+1；
// 目标行更短时在 f-1 和 f。越过第 0 行、第 10 行或 file 越界都视为没有邻居。
func Neighbor(hex int, d Direction) (int, bool) {
	r, f := Rank(hex), File(hex)
	switch d {
	case Left:
		return HexAt(r, f-1)
	case Right:
		return HexAt(r, f+1)
	}

	tr := r - 1
	if d == DownLeft || d == DownRight {
		tr = r + 1
	}
	if tr < 0 || tr >= len(RankLengths) {
		return 0, false
	}
	lf, rf := f-1, f
	if RankLengths[tr] > RankLengths[r] {
		lf, rf = f, f+1
	}
	if d == UpLeft || d == DownLeft {
		return HexAt(tr, lf)
	}
	return HexAt(tr, rf)
}

// Adjacent 返回所有存在的邻居，顺序为 左上、右上、右、右下、左下、左
func Adjacent(hex int) []int {
	out := make([]int, 0, 6)
	for _, d := range Directions {
		if n, ok := Neighbor(hex, d); ok {
			out = append(out, n)
		}
	}
	return out
}
