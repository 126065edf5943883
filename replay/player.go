package replay

import "github.com/lixenwraith/tunnelman/core"

// Player feeds a journal back as an engine.InputSource
// Polls must happen in the same order as during recording, which the
// simulation guarantees for the same seed
type Player struct {
	inputs []Input
	next   int
	polls  int
	end    int
}

// NewPlayer replays j from its first poll
func NewPlayer(j *Journal) *Player {
	return &Player{inputs: j.Inputs, end: j.Polls}
}

// PollInput implements engine.InputSource
func (p *Player) PollInput() (core.Action, bool) {
	p.polls++
	if p.next < len(p.inputs) && p.inputs[p.next].Poll == p.polls {
		a := p.inputs[p.next].Action
		p.next++
		return a, true
	}
	return core.ActionNone, false
}

// Polls counts PollInput calls so far
func (p *Player) Polls() int {
	return p.polls
}

// Done reports the recording is used up: every poll of a sealed journal,
// or every input of a truncated one
func (p *Player) Done() bool {
	if p.end >= 0 {
		return p.polls >= p.end
	}
	return p.next >= len(p.inputs)
}
