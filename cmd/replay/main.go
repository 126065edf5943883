package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/tunnelman/engine"
	"github.com/lixenwraith/tunnelman/replay"
	"github.com/lixenwraith/tunnelman/session"
)

func main() {
	var (
		journalPath = flag.String("journal", "", "path to a .jsonl.zst journal")
		maxTicks    = flag.Int("max_ticks", 0, "stop after this many ticks (0 = until the journal ends)")
		verbose     = flag.Bool("v", false, "log session events to stderr")
	)
	flag.Parse()

	if *journalPath == "" {
		fmt.Fprintln(os.Stderr, "missing -journal")
		os.Exit(2)
	}

	j, err := replay.ReadFile(*journalPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read journal:", err)
		os.Exit(1)
	}
	if j.Polls < 0 {
		fmt.Fprintln(os.Stderr, "warning: journal has no end marker, replaying recorded inputs only")
	}

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "", 0)
	}

	player := replay.NewPlayer(j)
	h := j.Header
	sess := session.New(session.Config{Seed: h.Seed, StartLevel: h.StartLevel, Lives: h.Lives},
		engine.Services{Input: player}, nil, logger)
	res := sess.Run(*maxTicks, player.Done)

	outcome := "stopped"
	if res.GameOver {
		outcome = "game over"
	}
	fmt.Printf("replay seed=%d start_level=%d inputs=%d polls=%d\n", h.Seed, h.StartLevel, len(j.Inputs), player.Polls())
	fmt.Printf("%s: score=%d level=%d levels_cleared=%d ticks=%d lives=%d\n",
		outcome, res.Score, res.Level, res.LevelsDone, res.Ticks, sess.Lives())
}
