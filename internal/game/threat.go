package game

// CountThreats 统计每个格子被多少枚棋子攻击：对每个有子的格子生成走法，
// 落点上有子就 +1。不区分攻击方颜色，也不看轮到谁走。
// LegalDestinations 已去重，所以同一枚棋子对同一格最多计一次。
func CountThreats(b *Board) [HexCount]uint8 {
	var out [HexCount]uint8
	for hex := 0; hex < HexCount; hex++ {
		if b.Hexes[hex].IsEmpty() {
			continue
		}
		for _, t := range LegalDestinations(b, hex) {
			if !b.Hexes[t].IsEmpty() {
				out[t]++
			}
		}
	}
	return out
}

// Recount 用当前占用刷新 Threats
func (b *Board) Recount() {
	b.Threats = CountThreats(b)
}
