package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"hexchess/internal/config"
	"hexchess/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "", "配置文件路径（默认查找 $XDG_CONFIG_HOME/hexchess/config.json）")
	position := flag.String("position", "", "从记谱开局，例如 \"3k2/7/8/9/91/92/91/9/8/2q4/2K3 b\"")
	saveCfg := flag.Bool("save-config", false, "把当前配置写到 XDG 配置目录后退出")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *position != "" {
		cfg.Position = *position
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	if *saveCfg {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("config written to %s", path)
		return
	}

	screen, err := ui.NewGameScreen(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Hex Chess")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}
