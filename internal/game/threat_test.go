package game

import "testing"

func TestDefaultBoardHasNoThreats(t *testing.T) {
	b, err := NewBoard(DefaultPlacement())
	if err != nil {
		t.Fatal(err)
	}
	for hex, n := range b.Threats {
		if n != 0 {
			t.Errorf("开局 Threats[%d] = %d，期望 0", hex, n)
		}
	}
}

func TestThreatsCountDistinctAttackersOfEitherColour(t *testing.T) {
	b := mustDecode(t, "p2k2/7/8/9/91/Q4f5/91/5N3/8/7/2K3 w")
	if b.Threats[45] != 2 {
		t.Errorf("Threats[45] = %d, want 2", b.Threats[45])
	}
	// 白堡垒 45 紧挨黑兵 34：王步和相邻步都指向 34，但只算一次
	b = &Board{}
	b.Hexes[45] = Piece{Owner: White, Kind: Fortress}
	b.Hexes[34] = Piece{Owner: Black, Kind: Pawn}
	b.Recount()
	if b.Threats[34] != 1 {
		t.Errorf("Threats[34] = %d, want 1", b.Threats[34])
	}
	// 黑兵 34 的左下/右下是 44、45，45 上是白堡垒：黑兵也算一个攻击者
	if b.Threats[45] != 1 {
		t.Errorf("Threats[45] = %d, want 1", b.Threats[45])
	}
}

func TestSetKeepsThreatsCurrent(t *testing.T) {
	b := &Board{}
	if err := b.set(40, Piece{Owner: White, Kind: Queen}); err != nil {
		t.Fatal(err)
	}
	if err := b.set(45, Piece{Owner: Black, Kind: Knight}); err != nil {
		t.Fatal(err)
	}
	if b.Threats != CountThreats(b) {
		t.Error("set 之后 Threats 与重新统计不一致")
	}
	if b.Threats[45] != 1 {
		t.Errorf("Threats[45] = %d, want 1", b.Threats[45])
	}
	if err := b.set(HexCount, Piece{}); err == nil {
		t.Error("越界 set 应返回错误")
	}
}
