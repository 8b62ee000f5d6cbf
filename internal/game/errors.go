package game

import "errors"

var (
	// ErrOutOfRange 表示格子编号不在 [0, HexCount) 内，属于调用方的编程错误
	ErrOutOfRange       = errors.New("hex index out of range")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrInvalidNotation  = errors.New("invalid position notation")
	ErrIllegalMove      = errors.New("illegal move")
)
