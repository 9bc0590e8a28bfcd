package t2048

// Snapshot captures the complete session state for determinism testing and
// rendering.
type Snapshot struct {
	Phase     Phase
	Outcome   Outcome
	Rows      int
	Cols      int
	Board     [][]int
	Moves     int
	MaxTile   int
	WinTarget int
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Phase:     s.phase,
		Outcome:   s.outcome,
		Rows:      s.board.Rows(),
		Cols:      s.board.Cols(),
		Board:     s.board.Values(),
		Moves:     s.moves,
		MaxTile:   MaxTile(s.board),
		WinTarget: s.cfg.WinTarget,
	}
}

// Finished reports whether the snapshot was taken after a game ended.
func (s Snapshot) Finished() bool {
	return s.Phase == PhaseWonOrLost || s.Phase == PhaseAwaitingRestart
}
