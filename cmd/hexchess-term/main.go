// hexchess-term plays hexchess in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hexchess/internal/config"
	"hexchess/internal/term"
)

var (
	flagConfig   = flag.String("config", "", "配置文件路径（默认查找 $XDG_CONFIG_HOME/hexchess/config.json）")
	flagPosition = flag.String("position", "", "从记谱开局")
	flagLog      = flag.String("log", "", "日志文件（默认 $XDG_STATE_HOME/hexchess/term.log）")
)

func main() {
	flag.Parse()

	// 终端被界面占用，日志写文件
	lf, err := openLog(*flagLog)
	if err != nil {
		log.Fatal(err)
	}
	runErr := run(lf)
	if err := lf.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		p, err := xdg.StateFile("hexchess/term.log")
		if err != nil {
			return nil, err
		}
		path = p
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// run 返回错误而不是直接退出，保证日志文件能被关闭
func run(logOut io.Writer) error {
	var cfg *config.Config
	var err error
	if *flagConfig != "" {
		cfg, err = config.Load(*flagConfig)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		return err
	}
	if *flagPosition != "" {
		cfg.Position = *flagPosition
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	session, err := cfg.NewSession()
	if err != nil {
		return err
	}
	log.SetOutput(logOut)
	log.Printf("game %s started", session.ID)

	app := tview.NewApplication()
	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetTitle("Hex Chess")

	board := term.NewHexBoard(session, hint)
	board.Box.SetBorder(true)

	frame := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, 14, 1, true).
		AddItem(hint, 7, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})
	app.EnableMouse(true)
	if err := app.SetRoot(frame, true).SetFocus(board.Box).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
