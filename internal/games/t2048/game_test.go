package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func newTestGame(t *testing.T, cfg SessionConfig, opts ...SessionOption) *Game {
	t.Helper()
	g := New(cfg, opts...)
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestGameResetIsDeterministic(t *testing.T) {
	g1 := newTestGame(t, DefaultSessionConfig())
	g2 := newTestGame(t, DefaultSessionConfig())

	if !g1.Session().Board().Equal(g2.Session().Board()) {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v",
			g1.Session().Board().Values(), g2.Session().Board().Values())
	}
}

func TestGameApplyMoves(t *testing.T) {
	g := newTestGame(t, DefaultSessionConfig())
	g.Session().board = mustBoard(t, [][]int{{2, 2, 0, 0}})

	state, err := g.Apply(core.ActionLeft)
	if err != nil {
		t.Fatalf("Apply(Left) failed: %v", err)
	}
	if state.Moves != 1 {
		t.Errorf("Moves = %d, want 1", state.Moves)
	}
	if state.Finished {
		t.Error("game should not be finished")
	}

	// Restart while playing is ignored rather than an error
	state, err = g.Apply(core.ActionRestart)
	if err != nil {
		t.Errorf("Apply(Restart) while playing error = %v, want nil", err)
	}
	if state.Moves != 1 {
		t.Errorf("Restart while playing should be ignored, moves = %d", state.Moves)
	}
}

func TestGameApplyEveryDirection(t *testing.T) {
	tests := []struct {
		action   core.Action
		row, col int
	}{
		{core.ActionLeft, 1, 0},
		{core.ActionRight, 1, 3},
		{core.ActionUp, 0, 1},
		{core.ActionDown, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			g := newTestGame(t, DefaultSessionConfig())
			g.Session().board = mustBoard(t, [][]int{{}, {0, 8}})

			state, err := g.Apply(tt.action)
			if err != nil {
				t.Fatalf("Apply(%s) failed: %v", tt.action, err)
			}
			if state.Moves != 1 {
				t.Errorf("Moves = %d, want 1", state.Moves)
			}
			if v, _ := g.Session().Board().Get(tt.row, tt.col); v != 8 {
				t.Errorf("after %s (%d,%d) = %d, want 8", tt.action, tt.row, tt.col, v)
			}
		})
	}

	// Non-move actions leave the board alone
	g := newTestGame(t, DefaultSessionConfig())
	if state, err := g.Apply(core.ActionNone); err != nil || state.Moves != 0 {
		t.Errorf("Apply(None) = %+v, %v; want no-op", state, err)
	}
}

func TestGameApplyWinAndRestart(t *testing.T) {
	var finished []Summary
	g := newTestGame(t, DefaultSessionConfig(), WithOnFinish(func(s Summary) {
		finished = append(finished, s)
	}))
	g.Session().board = mustBoard(t, [][]int{{1024, 0, 0, 1024}})

	state, err := g.Apply(core.ActionRight)
	if err != nil {
		t.Fatalf("Apply(Right) failed: %v", err)
	}
	if !state.Finished || !state.Won {
		t.Errorf("state = %+v, want finished and won", state)
	}
	if len(finished) != 1 {
		t.Errorf("OnFinish called %d times, want 1", len(finished))
	}

	// Moves are ignored on the result screen
	if _, err := g.Apply(core.ActionUp); err != nil {
		t.Errorf("Apply(Up) after win error = %v, want nil", err)
	}

	state, err = g.Apply(core.ActionRestart)
	if err != nil {
		t.Fatalf("Apply(Restart) failed: %v", err)
	}
	if state.Finished || state.Moves != 0 {
		t.Errorf("after restart state = %+v, want fresh game", state)
	}
}

func TestGameApplyQuit(t *testing.T) {
	g := newTestGame(t, DefaultSessionConfig())

	state, err := g.Apply(core.ActionQuit)
	if err != nil {
		t.Fatalf("Apply(Quit) failed: %v", err)
	}
	if !state.Terminated {
		t.Error("state should be terminated after quit")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, DefaultSessionConfig())
	g.Session().board = mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2 0 4 8", "4x4  Target: 2048", "Moves: 0", "Max: 128", "┌", "┘", "128"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}

	// The 128 tile is drawn in its tile color
	found := false
	for y := range screen.Height() {
		row := screen.Row(y)
		if x := strings.Index(row, "128"); x >= 0 && !strings.Contains(row, "Max") {
			col := len([]rune(row[:x]))
			if got := screen.GetCell(col, y).Color; got != TileColor(128) {
				t.Errorf("128 tile color = %v, want %v", got, TileColor(128))
			}
			found = true
		}
	}
	if !found {
		t.Error("could not locate the 128 tile on screen")
	}
}

func TestGameRenderOverlay(t *testing.T) {
	g := newTestGame(t, DefaultSessionConfig())
	g.Session().board = mustBoard(t, [][]int{{1024, 1024}})
	if _, err := g.Apply(core.ActionLeft); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "YOU WIN!") {
		t.Errorf("win overlay missing:\n%s", out)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, DefaultSessionConfig())
	g.Resize(20, 8)

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "too small") {
		t.Errorf("expected too-small notice:\n%s", out)
	}

	g.Resize(80, 24)
	screen = core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); strings.Contains(out, "too small") {
		t.Error("notice should disappear after growing the screen")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != core.ColorGray {
		t.Error("empty cells should be gray")
	}
	if TileColor(2) != core.ColorWhite {
		t.Errorf("TileColor(2) = %v, want white", TileColor(2))
	}
	if TileColor(1<<20) != core.ColorBrightMagenta {
		t.Errorf("huge tiles should use the last color, got %v", TileColor(1<<20))
	}
}

func TestPresets(t *testing.T) {
	p, err := LookupPreset("Classic")
	if err != nil {
		t.Fatalf("LookupPreset(Classic) failed: %v", err)
	}
	cfg := p.Apply(SessionConfig{StartTiles: 3})
	if cfg.Rows != 4 || cfg.Cols != 4 || cfg.WinTarget != 2048 || cfg.StartTiles != 3 {
		t.Errorf("classic preset applied = %+v", cfg)
	}

	keep := Preset{Rows: 6, Cols: 5}.Apply(DefaultSessionConfig())
	if keep.Rows != 6 || keep.Cols != 5 || keep.WinTarget != DefaultWinTarget {
		t.Errorf("preset without target applied = %+v, want 6x5 to %d", keep, DefaultWinTarget)
	}

	if _, err := LookupPreset("nope"); err == nil {
		t.Error("unknown preset should fail")
	}

	if len(PresetNames()) != len(Presets) {
		t.Errorf("PresetNames() length = %d, want %d", len(PresetNames()), len(Presets))
	}
	for _, p := range Presets {
		if p.Rows < MinSize || p.Cols > MaxSize || p.Target&(p.Target-1) != 0 {
			t.Errorf("preset %s has invalid dims or non power-of-two target", p.Name)
		}
	}
}
