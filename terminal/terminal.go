package terminal

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/input"
)

// actionQueueSize bounds buffered keystrokes, extra keys are dropped
const actionQueueSize = 16

// Terminal is the tcell front end: it queues key actions for the simulation,
// keeps the latest status line and draws the world
type Terminal struct {
	screen  tcell.Screen
	keys    *input.KeyTable
	logger  *log.Logger
	actions chan core.Action

	quit     chan struct{}
	quitOnce sync.Once
	finiOnce sync.Once

	status string
}

// New wraps a screen, pass tcell.NewScreen() in production or a simulation screen in tests
func New(screen tcell.Screen, keys *input.KeyTable, logger *log.Logger) *Terminal {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Terminal{
		screen:  screen,
		keys:    keys,
		logger:  logger,
		actions: make(chan core.Action, actionQueueSize),
		quit:    make(chan struct{}),
	}
}

// Init takes over the terminal and starts the event goroutine
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()

	core.Go(t.pollEvents)
	return nil
}

// Fini restores the terminal, safe to call more than once
func (t *Terminal) Fini() {
	t.finiOnce.Do(t.screen.Fini)
}

// Quit is closed when the user asks to leave the game
func (t *Terminal) Quit() <-chan struct{} {
	return t.quit
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		t.handleEvent(ev)
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.quitOnce.Do(func() { close(t.quit) })
			return
		}
		action, ok := t.keys.Lookup(ev)
		if !ok {
			return
		}
		select {
		case t.actions <- action:
		default:
			if t.logger != nil {
				t.logger.Printf("terminal: input queue full, dropped %v", action)
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// PollInput implements engine.InputSource, never blocks
func (t *Terminal) PollInput() (core.Action, bool) {
	select {
	case a := <-t.actions:
		return a, true
	default:
		return core.ActionNone, false
	}
}

// ShowStatusLine implements engine.StatusDisplay, the text is drawn on the next Draw
func (t *Terminal) ShowStatusLine(text string) {
	t.status = text
}
