// selfplay 随机对弈：用点击接口下完整局，检查规则不变式并把结果写成 CSV。
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"hexchess/internal/game"
)

type result struct {
	id     string
	plies  int
	winner string
	moves  []game.Move
	final  string
}

func main() {
	numGames := flag.Int("n", 1000, "对局数")
	maxPlies := flag.Int("max", 400, "单局最多步数，超过算和")
	outFile := flag.String("out", "selfplay.csv", "CSV 文件")
	seed := flag.Int64("seed", time.Now().UnixNano(), "随机种子")
	flag.Parse()

	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	w := csv.NewWriter(f)
	defer func() { w.Flush(); f.Close() }()
	if err := w.Write([]string{"game", "plies", "winner", "moves", "final"}); err != nil {
		log.Fatalf("write csv: %v", err)
	}

	workers := runtime.NumCPU()
	log.Printf("CPU=%d，启动 %d 个 worker", runtime.NumCPU(), workers)

	jobs := make(chan int, workers*2)
	results := make(chan result, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(*seed + int64(workerID))) // 独立随机源
			for range jobs {
				res, err := playOneGame(r, *maxPlies)
				if err != nil {
					log.Fatal(err)
				}
				results <- res
			}
		}(i)
	}
	go func() {
		for g := 0; g < *numGames; g++ {
			jobs <- g
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	wins := map[string]int{}
	n := 0
	for res := range results {
		wins[res.winner]++
		if err := w.Write([]string{res.id, strconv.Itoa(res.plies), res.winner, game.FormatMoves(res.moves), res.final}); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		n++
		if n%100 == 0 {
			log.Printf("进度 %d/%d", n, *numGames)
		}
	}
	log.Printf("完成 %d 局：White %d, Black %d, 未分胜负 %d", n, wins["White"], wins["Black"], wins["none"])
}

// playOneGame 双方随机选子、随机落子，直到吃王或达到步数上限
func playOneGame(r *rand.Rand, maxPlies int) (result, error) {
	s, err := game.NewSession(game.DefaultPlacement())
	if err != nil {
		return result{}, err
	}
	var played []game.Move
	for !s.GameOver() && len(played) < maxPlies {
		moves := game.MovesFor(s.Board(), s.State().Player)
		if len(moves) == 0 {
			break
		}
		m := moves[r.Intn(len(moves))]
		if _, err := s.SubmitClick(m.From, true); err != nil {
			return result{}, err
		}
		out, err := s.SubmitClick(m.To, true)
		if err != nil {
			return result{}, err
		}
		if out.Kind != game.Moved && out.Kind != game.Won {
			return result{}, fmt.Errorf("game %s: move %v was %s", s.ID, m, out.Kind)
		}
		if err := checkInvariants(s); err != nil {
			return result{}, fmt.Errorf("game %s after %v: %w", s.ID, m, err)
		}
		played = append(played, m)
	}
	winner := "none"
	if s.GameOver() {
		winner = s.State().Player.String()
	}
	return result{id: s.ID, plies: len(played), winner: winner, moves: played, final: game.Encode(s.Board())}, nil
}

// checkInvariants 攻击数与重算一致；非终局时状态方就是轮到的一方
func checkInvariants(s *game.Session) error {
	b := s.Board()
	st := s.State()
	if st.Phase == game.GameWonBy {
		return nil
	}
	if st.Player != b.CurrentTurn {
		return fmt.Errorf("state player %s, board turn %s", st.Player, b.CurrentTurn)
	}
	if got := game.CountThreats(b); got != b.Threats {
		return fmt.Errorf("stale threat counts")
	}
	return nil
}
