// replay 回放 selfplay 生成的 CSV
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"hexchess/internal/config"
	"hexchess/internal/game"
	"hexchess/internal/ui"
)

func main() {
	csvPath := flag.String("in", "selfplay.csv", "selfplay 输出的 CSV 文件")
	delay := flag.Duration("delay", 300*time.Millisecond, "每步播放间隔")
	limit := flag.Int("limit", 100, "最多读入的对局数")
	cfgPath := flag.String("config", "", "配置文件路径（默认查找 $XDG_CONFIG_HOME/hexchess/config.json）")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	games, err := readGames(*csvPath, *limit)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d games from %s", len(games), *csvPath)

	screen, err := ui.NewReplayScreen(cfg, games, *delay)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Hex Chess replay")
	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}

// readGames 按表头找列：game, winner, moves；都从标准开局开始
func readGames(path string, limit int) ([]*game.Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{"game", "winner", "moves"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
	}

	var games []*game.Replay
	for len(games) < limit {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		moves, err := game.ParseMoves(rec[col["moves"]])
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", rec[col["game"]], err)
		}
		rp, err := game.NewReplay(game.DefaultPlacement(), moves)
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", rec[col["game"]], err)
		}
		rp.ID, rp.Winner = rec[col["game"]], rec[col["winner"]]
		games = append(games, rp)
	}
	return games, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}
