// Package config loads hexchess settings from the XDG config directory.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"

	"hexchess/internal/game"
)

var cfgFile = "hexchess/config.json"

type InvalidConfig struct {
	err   string
	cause error
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

func (e *InvalidConfig) Unwrap() error { return e.cause }

func invalid(cause error) *InvalidConfig {
	return &InvalidConfig{err: cause.Error(), cause: cause}
}

// Window ebiten 窗口参数
type Window struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TileSize float64 `json:"tile_size"`
	TPS      int     `json:"tps"`
}

// Theme 颜色均为 "#rrggbb" 或 "#rrggbbaa"
type Theme struct {
	Board     string `json:"board"`
	Hover     string `json:"hover"`
	Selected  string `json:"selected"`
	Candidate string `json:"candidate"`
	Target    string `json:"target"`
	White     string `json:"white"`
	Black     string `json:"black"`
}

type Config struct {
	// Layout 初始布局：格子编号（字符串）-> 棋子字母，只写上半盘
	Layout map[string]string `json:"layout"`
	// Position 非空时直接从这个记谱开局，忽略 Layout
	Position string `json:"position,omitempty"`
	Window   Window `json:"window"`
	Theme    Theme  `json:"theme"`
}

// InitConfig 读取 $XDG_CONFIG_HOME/hexchess/config.json，不存在就用默认配置
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return Default(), nil
	}
	return Load(absPath)
}

// Load reads the config at path on top of the defaults and validates it.
func Load(path string) (*Config, error) {
	config := Default()
	defLayout := config.Layout
	config.Layout = nil // 文件里的 layout 整体替换默认布局，而不是合并
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if config.Layout == nil {
		config.Layout = defLayout
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if _, err := c.Placement(); err != nil {
		return invalid(err)
	}
	if c.Position != "" {
		if _, err := game.Decode(c.Position); err != nil {
			return invalid(err)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TileSize <= 0 || c.Window.TPS <= 0 {
		return &InvalidConfig{err: "window sizes and tps must be positive"}
	}
	for _, s := range []string{c.Theme.Board, c.Theme.Hover, c.Theme.Selected, c.Theme.Candidate, c.Theme.Target, c.Theme.White, c.Theme.Black} {
		if _, err := ParseColor(s); err != nil {
			return invalid(err)
		}
	}
	return nil
}

// Placement 把 Layout 转成 game.Placement 并校验
func (c *Config) Placement() (game.Placement, error) {
	pl := make(game.Placement, len(c.Layout))
	for k, v := range c.Layout {
		hex, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: layout key %q is not a hex index", game.ErrInvalidPlacement, k)
		}
		if len(v) != 1 {
			return nil, fmt.Errorf("%w: layout hex %d: piece %q must be one letter", game.ErrInvalidPlacement, hex, v)
		}
		kind, ok := game.KindFromCode(v[0])
		if !ok {
			return nil, fmt.Errorf("%w: layout hex %d: unknown piece %q", game.ErrInvalidPlacement, hex, v)
		}
		pl[hex] = kind
	}
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	return pl, nil
}

// NewSession 按配置开一局：有 Position 就从记谱开始，否则用布局
func (c *Config) NewSession() (*game.Session, error) {
	if c.Position != "" {
		b, err := game.Decode(c.Position)
		if err != nil {
			return nil, err
		}
		return game.NewSessionFromBoard(b), nil
	}
	pl, err := c.Placement()
	if err != nil {
		return nil, err
	}
	return game.NewSession(pl)
}

// Save 写回 XDG 配置目录，返回写入的路径
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

// ParseColor 解析 "#rrggbb" / "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor 用于已经 Validate 过的颜色
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
