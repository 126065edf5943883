package core

// Action is one queued player input, at most one is consumed per tick
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionSquirt
	ActionSonar
	ActionDropGold
	ActionQuit
)

// Direction maps directional actions to a facing, DirNone for the rest
func (a Action) Direction() Direction {
	switch a {
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	}
	return DirNone
}

var actionNames = [...]string{
	ActionNone:     "none",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionUp:       "up",
	ActionDown:     "down",
	ActionSquirt:   "squirt",
	ActionSonar:    "sonar",
	ActionDropGold: "gold",
	ActionQuit:     "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction is the inverse of String, used by the replay journal
func ParseAction(s string) (Action, bool) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), true
		}
	}
	return ActionNone, false
}
