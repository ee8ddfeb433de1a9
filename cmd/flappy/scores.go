package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagRecent bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best and recent runs",
	Long: `Display the stored highscore and the top 10 runs of a variant, or of
every variant when none is given.

Examples:
  flappy scores
  flappy scores steampunk --recent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var resetCmd = &cobra.Command{
	Use:   "reset [variant]",
	Short: "Forget highscores and runs",
	Long: `Delete the stored highscore and the run history of a variant, or of
every variant when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
}

// variantArgs resolves the optional variant argument.
func variantArgs(args []string) ([]registry.GameInfo, error) {
	all := registry.List()
	if len(args) == 0 {
		return all, nil
	}
	for _, g := range all {
		if g.ID == args[0] {
			return []registry.GameInfo{g}, nil
		}
	}
	return nil, fmt.Errorf("unknown variant %q (run 'flappy list')", args[0])
}

func runScores(cmd *cobra.Command, args []string) error {
	games, err := variantArgs(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	for i, g := range games {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, store, g); err != nil {
			return err
		}
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store, g registry.GameInfo) error {
	var (
		runs []storage.RunEntry
		err  error
	)
	if flagRecent {
		runs, err = store.RecentScores(g.ID, 10)
	} else {
		runs, err = store.TopScores(g.ID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", g.Title)
	fmt.Fprintln(out)

	if best, ok := storedHighscore(store, g.ID); ok {
		fmt.Fprintf(out, "Best: %d\n\n", best)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "Play 'flappy play %s' to set the first high score!\n", g.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
	return nil
}

// storedHighscore reads the value the game itself keeps under its
// configured key.
func storedHighscore(store *storage.Store, id string) (int, bool) {
	cfg, err := config.Load(id, "", nil)
	if err != nil {
		return 0, false
	}
	v, ok, err := store.GetInt(id, cfg.HighscoreKey)
	if err != nil || !ok {
		return 0, false
	}
	return v, true
}

func runReset(cmd *cobra.Command, args []string) error {
	games, err := variantArgs(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	for _, g := range games {
		if cfg, err := config.Load(g.ID, "", nil); err == nil {
			if err := store.DeletePref(g.ID, cfg.HighscoreKey); err != nil {
				return fmt.Errorf("resetting %s: %w", g.ID, err)
			}
		}
		if err := store.ClearScores(g.ID); err != nil {
			return fmt.Errorf("resetting %s: %w", g.ID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", g.Title)
	}
	return nil
}
