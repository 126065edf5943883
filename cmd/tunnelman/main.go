package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tunnelman/audio"
	"github.com/lixenwraith/tunnelman/config"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/engine"
	"github.com/lixenwraith/tunnelman/input"
	"github.com/lixenwraith/tunnelman/observer"
	"github.com/lixenwraith/tunnelman/replay"
	"github.com/lixenwraith/tunnelman/scoreboard"
	"github.com/lixenwraith/tunnelman/service"
	"github.com/lixenwraith/tunnelman/session"
	"github.com/lixenwraith/tunnelman/terminal"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	seedFlag    = flag.Int64("seed", 0, "world seed, 0 derives one from the clock")
	levelFlag   = flag.Int("level", -1, "start level")
	logFlag     = flag.String("log", "tunnelman.log", "log file, stdout belongs to the terminal")
	muteFlag    = flag.Bool("mute", false, "disable audio")
	recordFlag  = flag.Bool("record", false, "journal inputs for cmd/replay")
	observeFlag = flag.String("observe", "", "serve the spectator stream on this address")
)

// gameOverHold keeps the final status on screen before exit
const gameOverHold = 2 * time.Second

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logFile, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags|log.Lmicroseconds)

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	term := terminal.New(screen, keys, logger)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashReset(term.Fini)
	// Normal exit terminal cleanup
	defer term.Fini()

	seed := cfg.ResolveSeed(time.Now())
	svc, hub := wireServices(cfg, seed, term, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := hub.StartAll(ctx); err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start services: %v\n", err)
		os.Exit(1)
	}

	var pub session.Publisher
	if obs, ok := hub.Get("observer"); ok {
		pub = obs.(*observer.Server)
	}
	sess := session.New(session.Config{Seed: seed, StartLevel: cfg.StartLevel, Lives: cfg.Lives}, svc, pub, logger)

	quit := runLoop(sess, term, cfg.TickPeriod())
	res := sess.Result()
	sess.Close()

	if res.GameOver && !quit {
		term.ShowStatusLine(fmt.Sprintf("GAME OVER  Scr: %06d  Lvl: %d", res.Score, res.Level))
		term.Draw(sess.World())
		select {
		case <-term.Quit():
		case <-time.After(gameOverHold):
		}
	}

	var board *scoreboard.Service
	if _, ok := hub.Get("scoreboard"); ok {
		board = service.MustGet[*scoreboard.Service](hub, "scoreboard")
		if res.GameOver {
			board.Record(scoreboard.Entry{Player: cfg.Scoreboard.Player, Score: res.Score, Level: res.Level, Seed: seed})
		}
	}

	term.Fini()
	fmt.Printf("seed %d: score %d, level %d, %d levels cleared in %d ticks\n",
		seed, res.Score, res.Level, res.LevelsDone, res.Ticks)
	if board != nil {
		printTop(board)
	}
	hub.StopAll()
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *levelFlag >= 0 {
		cfg.StartLevel = *levelFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *recordFlag {
		cfg.Replay.Record = true
	}
	if *observeFlag != "" {
		cfg.Observer.Addr = *observeFlag
	}
	return cfg, cfg.Validate()
}

// wireServices registers the optional subsystems and routes the world's collaborators through them
func wireServices(cfg config.Config, seed int64, term *terminal.Terminal, logger *log.Logger) (engine.Services, *service.Hub) {
	hub := service.NewHub(logger)
	svc := engine.Services{Input: term, Status: term}

	acfg := audio.DefaultConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.Volume
	snd := audio.NewService(acfg, logger)
	mustRegister(hub, snd)
	svc.Cues = snd

	if cfg.Replay.Record {
		rec := replay.NewRecorder(term, cfg.Replay.Dir,
			replay.Header{Seed: seed, StartLevel: cfg.StartLevel, Lives: cfg.Lives}, logger)
		mustRegister(hub, rec)
		svc.Input = rec
	}
	if cfg.Scoreboard.Path != "" {
		mustRegister(hub, scoreboard.NewService(cfg.Scoreboard.Path, logger))
	}
	if cfg.Observer.Addr != "" {
		mustRegister(hub, observer.NewServer(cfg.Observer.Addr, logger))
	}
	return svc, hub
}

func mustRegister(hub *service.Hub, s service.Service) {
	if err := hub.Register(s); err != nil {
		panic(err)
	}
}

// runLoop ticks at a fixed period until game over, returns true when the user quit
func runLoop(sess *session.Session, term *terminal.Terminal, period time.Duration) bool {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	term.Draw(sess.World())
	for !sess.Over() {
		select {
		case <-term.Quit():
			return true
		case <-ticker.C:
			sess.Step()
			term.Draw(sess.World())
		}
	}
	return false
}

func printTop(board *scoreboard.Service) {
	top, err := board.Top(scoreboard.DefaultTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scoreboard: %v\n", err)
		return
	}
	if len(top) == 0 {
		return
	}
	fmt.Println("High scores:")
	for i, e := range top {
		fmt.Printf("%2d. %-12s %7d  level %2d  %s\n", i+1, e.Player, e.Score, e.Level, e.RecordedAt.Local().Format("2006-01-02"))
	}
}
