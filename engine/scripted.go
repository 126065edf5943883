package engine

import "github.com/lixenwraith/tunnelman/core"

// ScriptedInput replays a fixed action sequence, one action per poll
// ActionNone entries are reported as no input
type ScriptedInput struct {
	Actions []core.Action
	next    int
}

func (s *ScriptedInput) PollInput() (core.Action, bool) {
	if s.next >= len(s.Actions) {
		return core.ActionNone, false
	}
	a := s.Actions[s.next]
	s.next++
	return a, a != core.ActionNone
}

// Remaining returns the number of unconsumed actions
func (s *ScriptedInput) Remaining() int {
	return len(s.Actions) - s.next
}

// RecordingCues keeps every cue in play order
type RecordingCues struct {
	Played []core.SoundType
}

func (r *RecordingCues) PlayCue(s core.SoundType) {
	r.Played = append(r.Played, s)
}

// Count returns how many times s was played
func (r *RecordingCues) Count(s core.SoundType) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues
func (r *RecordingCues) Reset() {
	r.Played = r.Played[:0]
}

// LastStatus keeps the most recent status line
type LastStatus struct {
	Text string
}

func (l *LastStatus) ShowStatusLine(text string) {
	l.Text = text
}
