package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished games",
	Long: `Display recently finished games and overall statistics.

Only game summaries are recorded: outcome, board size, target, moves and
the largest tile. Games cannot be resumed from the history.

The interactive table is used when stdout is a terminal; pass --plain to
print a static table instead.

Examples:
  t2048 history
  t2048 history --limit 50 --plain
  t2048 history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a static table instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.RecentResults(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	writeHistory(os.Stdout, results, stats)
}

// writeHistory prints results as a static table followed by the totals.
func writeHistory(w io.Writer, results []storage.Result, stats storage.Stats) {
	fmt.Fprintln(w, "2048 History")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 't2048 play' and finish a game to see it here.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tui.HistoryColumns...)
	for _, r := range results {
		t.Row(tui.HistoryRow(r)...)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.StatsLine(stats))
}
