package t2048

import (
	"errors"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game connects a Session to the platform: it turns semantic actions into
// session calls and draws the session into a screen buffer.
type Game struct {
	cfg     SessionConfig
	opts    []SessionOption
	session *Session

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game that builds sessions from cfg.
func New(cfg SessionConfig, opts ...SessionOption) *Game {
	return &Game{
		cfg:  cfg.normalize(),
		opts: opts,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a brand new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.session = NewSession(g.cfg, NewRandom(cfg.Seed), g.opts...)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return g.session.Start()
}

// Session returns the current session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Resize records new screen dimensions. The board is never reset.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Apply handles one action and returns the resulting state.
// Actions that do not apply to the current phase are ignored.
func (g *Game) Apply(a core.Action) (core.GameState, error) {
	var err error

	switch {
	case a.IsMove():
		var dir Direction
		if dir, err = ParseDirection(a.String()); err != nil {
			return g.State(), err
		}
		_, err = g.session.Move(dir)
	case a == core.ActionRestart:
		err = g.session.Restart()
	case a == core.ActionQuit:
		err = g.session.Quit()
	}

	if errors.Is(err, ErrNotPlaying) || errors.Is(err, ErrInvalidTransition) {
		err = nil
	}
	return g.State(), err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.session.Snapshot()
	return core.GameState{
		Moves:      snap.Moves,
		Finished:   snap.Finished(),
		Won:        snap.Outcome == OutcomeWon,
		Terminated: snap.Phase == PhaseTerminated,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: Restart | Q: Quit"
}
