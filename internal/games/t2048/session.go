package t2048

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	// ErrNotPlaying is returned by Move outside the Playing phase.
	ErrNotPlaying = errors.New("t2048: session is not accepting moves")
	// ErrInvalidTransition is returned when a lifecycle call does not apply
	// to the current phase.
	ErrInvalidTransition = errors.New("t2048: invalid session transition")
)

// Phase is a step of the session lifecycle:
//
//	Initializing -> Playing -> WonOrLost -> AwaitingRestart -> Initializing | Terminated
type Phase int

const (
	PhaseInitializing Phase = iota
	PhasePlaying
	PhaseWonOrLost
	PhaseAwaitingRestart
	PhaseTerminated
)

// String returns the snake_case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhasePlaying:
		return "playing"
	case PhaseWonOrLost:
		return "won_or_lost"
	case PhaseAwaitingRestart:
		return "awaiting_restart"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome is the result of a finished game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// SessionConfig holds the per-game parameters.
type SessionConfig struct {
	Rows             int // Clamped into [MinSize, MaxSize]
	Cols             int // Clamped into [MinSize, MaxSize]
	StartTiles       int // Tiles spawned when a game starts
	WinTarget        int // Tile value that wins
	SpawnFourPercent int // Chance of a 4 per spawn, 0-100
}

// DefaultSessionConfig returns the classic 4x4 game to 2048.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Rows:             4,
		Cols:             4,
		StartTiles:       2,
		WinTarget:        DefaultWinTarget,
		SpawnFourPercent: DefaultSpawnFourPercent,
	}
}

// normalize fills unset fields with defaults. SpawnFourPercent 0 is a
// legitimate setting (only 2s spawn) and is only clamped.
func (c SessionConfig) normalize() SessionConfig {
	if c.StartTiles <= 0 {
		c.StartTiles = 2
	}
	if c.WinTarget <= 0 {
		c.WinTarget = DefaultWinTarget
	}
	c.Rows = core.Clamp(c.Rows, MinSize, MaxSize)
	c.Cols = core.Clamp(c.Cols, MinSize, MaxSize)
	c.SpawnFourPercent = core.Clamp(c.SpawnFourPercent, 0, 100)
	return c
}

// Summary describes a finished game.
type Summary struct {
	GameID    string
	Outcome   Outcome
	Rows      int
	Cols      int
	WinTarget int
	Moves     int
	MaxTile   int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for move and lifecycle events.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOnFinish registers a hook called once per finished game.
// The hook runs after the session lock is released.
func WithOnFinish(fn func(Summary)) SessionOption {
	return func(s *Session) {
		s.onFinish = fn
	}
}

// Session owns one board and drives it through the game lifecycle.
// All methods are safe for concurrent use; a mutex serializes each
// move-and-spawn sequence.
type Session struct {
	mu sync.Mutex

	cfg      SessionConfig
	rng      Random
	logger   *log.Logger
	onFinish func(Summary)

	board   *Board
	gameID  string
	phase   Phase
	outcome Outcome
	moves   int
}

// NewSession creates a session in the Initializing phase. Call Start to
// place the starting tiles.
func NewSession(cfg SessionConfig, rng Random, opts ...SessionOption) *Session {
	s := &Session{
		cfg:    cfg.normalize(),
		rng:    rng,
		logger: log.New(io.Discard),
		phase:  PhaseInitializing,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.board = NewBoard(s.cfg.Rows, s.cfg.Cols)
	return s
}

// Config returns the normalized configuration.
func (s *Session) Config() SessionConfig {
	return s.cfg
}

// Start creates a fresh board, spawns the starting tiles and enters Playing.
func (s *Session) Start() error {
	s.mu.Lock()
	summary, err := s.start()
	s.mu.Unlock()

	s.notify(summary)
	return err
}

func (s *Session) start() (*Summary, error) {
	if s.phase != PhaseInitializing {
		return nil, fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.phase)
	}

	s.board = NewBoard(s.cfg.Rows, s.cfg.Cols)
	s.gameID = uuid.NewString()
	s.outcome = OutcomeNone
	s.moves = 0

	spawned := SpawnRandomCells(s.board, s.rng, s.cfg.StartTiles, s.cfg.SpawnFourPercent)
	s.phase = PhasePlaying
	s.logger.Debug("game started", "game", s.gameID,
		"rows", s.board.Rows(), "cols", s.board.Cols(),
		"target", s.cfg.WinTarget, "tiles", len(spawned))

	return s.evaluate(), nil
}

// Move applies dir to the board. A move that changes the board is followed
// by exactly one spawn and the win/loss check.
func (s *Session) Move(dir Direction) (bool, error) {
	s.mu.Lock()
	changed, summary, err := s.move(dir)
	s.mu.Unlock()

	s.notify(summary)
	return changed, err
}

func (s *Session) move(dir Direction) (bool, *Summary, error) {
	if s.phase != PhasePlaying {
		return false, nil, fmt.Errorf("%w: phase %s", ErrNotPlaying, s.phase)
	}

	if !Move(s.board, dir) {
		s.logger.Debug("move had no effect", "dir", dir)
		return false, nil, nil
	}

	s.moves++
	spawned := SpawnRandomCells(s.board, s.rng, 1, s.cfg.SpawnFourPercent)
	for _, c := range spawned {
		s.logger.Debug("moved", "dir", dir, "move", s.moves, "spawn_row", c.Row, "spawn_col", c.Col, "spawn", c.Value)
	}

	return true, s.evaluate(), nil
}

// evaluate checks the terminal predicates on the current board. On a
// terminal board it passes through WonOrLost into AwaitingRestart and
// returns the summary to report.
func (s *Session) evaluate() *Summary {
	switch {
	case IsWon(s.board, s.cfg.WinTarget):
		s.outcome = OutcomeWon
	case IsLost(s.board):
		s.outcome = OutcomeLost
	default:
		return nil
	}

	s.phase = PhaseWonOrLost
	summary := s.summary()
	s.logger.Info("game finished", "game", s.gameID,
		"outcome", summary.Outcome, "moves", summary.Moves, "max_tile", summary.MaxTile)
	s.phase = PhaseAwaitingRestart
	return &summary
}

func (s *Session) summary() Summary {
	return Summary{
		GameID:    s.gameID,
		Outcome:   s.outcome,
		Rows:      s.board.Rows(),
		Cols:      s.board.Cols(),
		WinTarget: s.cfg.WinTarget,
		Moves:     s.moves,
		MaxTile:   MaxTile(s.board),
	}
}

func (s *Session) notify(summary *Summary) {
	if summary != nil && s.onFinish != nil {
		s.onFinish(*summary)
	}
}

// Restart begins a new game after the previous one finished.
func (s *Session) Restart() error {
	s.mu.Lock()
	if s.phase != PhaseAwaitingRestart {
		phase := s.phase
		s.mu.Unlock()
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, phase)
	}
	s.phase = PhaseInitializing
	summary, err := s.start()
	s.mu.Unlock()

	s.notify(summary)
	return err
}

// Quit ends the session. It is accepted while playing or after a game ended.
func (s *Session) Quit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingRestart && s.phase != PhasePlaying {
		return fmt.Errorf("%w: quit from %s", ErrInvalidTransition, s.phase)
	}
	s.logger.Debug("session terminated", "from", s.phase, "moves", s.moves)
	s.phase = PhaseTerminated
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Outcome returns the result of the last finished game, or OutcomeNone.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Moves returns the number of effective moves in the current game.
func (s *Session) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

// GameID returns the identifier of the current game. It changes on
// every Start and Restart.
func (s *Session) GameID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameID
}

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// CellValue returns the value at (row, col).
func (s *Session) CellValue(row, col int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Get(row, col)
}

// EmptyCells returns the empty cells of the current board.
func (s *Session) EmptyCells() []Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.EmptyCells()
}
