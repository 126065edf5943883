package engine

import "github.com/lixenwraith/tunnelman/core"

// InputSource yields at most one pending action per call, never blocks
type InputSource interface {
	PollInput() (core.Action, bool)
}

// CuePlayer plays fire-and-forget sound cues
type CuePlayer interface {
	PlayCue(core.SoundType)
}

// StatusDisplay shows the one-line status text
type StatusDisplay interface {
	ShowStatusLine(text string)
}

// Session holds the counters that outlive a level
// The simulation adjusts score and lives and reads them for the status line
type Session interface {
	Level() int
	Score() int
	Lives() int
	AdjustScore(delta int)
	AdjustLives(delta int)
}

// Services bundles the collaborators the simulation calls into
// Nil members are replaced with no-op implementations
type Services struct {
	Input   InputSource
	Cues    CuePlayer
	Status  StatusDisplay
	Session Session
}

func (s Services) withDefaults() Services {
	if s.Input == nil {
		s.Input = NopInput{}
	}
	if s.Cues == nil {
		s.Cues = NopCues{}
	}
	if s.Status == nil {
		s.Status = NopStatus{}
	}
	if s.Session == nil {
		s.Session = &Tally{LivesLeft: 3}
	}
	return s
}

// NopInput never has input
type NopInput struct{}

func (NopInput) PollInput() (core.Action, bool) { return core.ActionNone, false }

// NopCues discards cues
type NopCues struct{}

func (NopCues) PlayCue(core.SoundType) {}

// NopStatus discards status text
type NopStatus struct{}

func (NopStatus) ShowStatusLine(string) {}

// Tally is a plain in-memory Session
type Tally struct {
	CurrentLevel int
	Points       int
	LivesLeft    int
}

func (t *Tally) Level() int            { return t.CurrentLevel }
func (t *Tally) Score() int            { return t.Points }
func (t *Tally) Lives() int            { return t.LivesLeft }
func (t *Tally) AdjustScore(delta int) { t.Points += delta }
func (t *Tally) AdjustLives(delta int) { t.LivesLeft += delta }
