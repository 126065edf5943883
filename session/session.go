package session

import (
	"log"

	"github.com/lixenwraith/tunnelman/engine"
)

// Publisher receives the world state after every tick
type Publisher interface {
	Publish(engine.Snapshot)
}

// Config fixes everything a game needs to be reproducible
type Config struct {
	Seed       int64
	StartLevel int
	Lives      int
}

// Result summarizes a session for score keeping
type Result struct {
	Score      int
	Level      int
	LevelsDone int
	Ticks      int
	GameOver   bool
}

// Session is the harness around the world: it owns lives, score and level,
// restarts a level after a death and advances after a completion
// It implements engine.Session and, like World, is driven from one goroutine
type Session struct {
	cfg    Config
	world  *engine.World
	pub    Publisher
	logger *log.Logger

	level      int
	score      int
	lives      int
	levelsDone int
	ticks      int
	over       bool
	closed     bool
}

// New builds the world with svc, whose Session field is replaced by the new session
// pub and logger may be nil
func New(cfg Config, svc engine.Services, pub Publisher, logger *log.Logger) *Session {
	s := &Session{
		cfg:    cfg,
		pub:    pub,
		logger: logger,
		level:  cfg.StartLevel,
		lives:  cfg.Lives,
	}
	svc.Session = s
	s.world = engine.NewWorld(cfg.Seed, svc)
	s.world.InitializeLevel()
	s.logf("session: seed %d, level %d, %d lives", cfg.Seed, s.level, s.lives)
	return s
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Level implements engine.Session
func (s *Session) Level() int { return s.level }

// Score implements engine.Session
func (s *Session) Score() int { return s.score }

// Lives implements engine.Session
func (s *Session) Lives() int { return s.lives }

// AdjustScore implements engine.Session
func (s *Session) AdjustScore(delta int) { s.score += delta }

// AdjustLives implements engine.Session
func (s *Session) AdjustLives(delta int) { s.lives += delta }

// World exposes the running world for rendering
func (s *Session) World() *engine.World {
	return s.world
}

// Over reports whether the last life was lost
func (s *Session) Over() bool {
	return s.over
}

// Step advances one tick and applies the level transition it caused
// After game over or Close it does nothing and keeps returning StatusPlayerDied
func (s *Session) Step() engine.Status {
	if s.over || s.closed {
		return engine.StatusPlayerDied
	}
	s.ticks++
	st := s.world.AdvanceOneTick()
	if s.pub != nil {
		s.pub.Publish(s.world.Snapshot())
	}

	switch st {
	case engine.StatusPlayerDied:
		if s.lives <= 0 {
			s.over = true
			s.world.TeardownLevel()
			s.logf("session: game over at level %d, score %d", s.level, s.score)
			return st
		}
		s.logf("session: player died on level %d, %d lives left", s.level, s.lives)
		s.world.InitializeLevel()

	case engine.StatusLevelComplete:
		s.levelsDone++
		s.level++
		s.logf("session: level complete, advancing to %d", s.level)
		s.world.InitializeLevel()
	}
	return st
}

// Run steps until game over, until stop returns true, or for at most maxTicks (0 is unbounded)
func (s *Session) Run(maxTicks int, stop func() bool) Result {
	for n := 0; !s.over && !s.closed && (maxTicks == 0 || n < maxTicks); n++ {
		if stop != nil && stop() {
			break
		}
		s.Step()
	}
	return s.Result()
}

// Result snapshots the session totals
func (s *Session) Result() Result {
	return Result{
		Score:      s.score,
		Level:      s.level,
		LevelsDone: s.levelsDone,
		Ticks:      s.ticks,
		GameOver:   s.over,
	}
}

// Close tears the level down, used when the user quits mid-game
func (s *Session) Close() {
	if !s.over && !s.closed {
		s.world.TeardownLevel()
	}
	s.closed = true
}
