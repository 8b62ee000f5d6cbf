package config

import (
	"strconv"

	"hexchess/internal/game"
)

// Default 返回一份新的默认配置（每次都是新副本，调用方可以随意修改）
func Default() *Config {
	layout := map[string]string{}
	for hex, kind := range game.DefaultPlacement() {
		layout[strconv.Itoa(hex)] = string(kind.Code())
	}
	return &Config{
		Layout: layout,
		Window: Window{
			Width:    800,
			Height:   600,
			TileSize: 30,
			TPS:      30,
		},
		// 棕色棋盘、橙色悬停、红色选中、绿色候选
		Theme: Theme{
			Board:     "#804000",
			Hover:     "#ff8000",
			Selected:  "#ff0000",
			Candidate: "#008000",
			Target:    "#00ff00",
			White:     "#ffffff",
			Black:     "#000000",
		},
	}
}
