// flappy is a terminal flappy-bird game with a classic and a steampunk
// variant.
//
// Usage:
//
//	flappy list               - List available variants
//	flappy play [variant]     - Play a variant, or pick one from the menu
//	flappy scores [variant]   - Show best and recent runs
//	flappy reset [variant]    - Forget highscores and runs
//	flappy serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible pipes
//	--db <path>           - Set database path (default: ~/.flappy/flappy.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through pipes in your terminal",
	Long: `Flappy is a terminal take on the flappy bird game. Tap to flap,
fly through the gaps, and do not touch the pipes or the ground.

Available commands:
  list     - Show all available variants
  play     - Play a variant (menu when none is given)
  scores   - View best and recent runs
  reset    - Forget highscores and runs
  serve    - Start SSH server for remote play

Examples:
  flappy list
  flappy play
  flappy play steampunk --seed 42
  flappy serve --ssh :2222
  flappy scores flappy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play sessions (logs are dropped when empty)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	}), nil
}

// playLogger logs to --log-file, since stderr belongs to the game screen.
// The returned closer releases the file.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the database, or returns nil with a warning so the game
// can still be played without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// prefsOf keeps a nil store from becoming a non-nil Prefs.
func prefsOf(store *storage.Store) highscore.Prefs {
	if store == nil {
		return nil
	}
	return store
}

// gameFactory builds games wired to the store. Sound follows each variant's
// audio config unless muted.
type gameFactory struct {
	store      *storage.Store
	logger     *log.Logger
	configPath string
	mute       bool
}

// create returns a new game and the player it plays through. The caller
// closes the player when the game ends.
func (f gameFactory) create(id string) (registry.Game, audio.Player, error) {
	if !registry.Exists(id) {
		return nil, nil, fmt.Errorf("unknown variant %q (run 'flappy list')", id)
	}

	cfg, err := config.Load(id, f.configPath, f.logger)
	if err != nil {
		return nil, nil, err
	}

	sound := audio.Player(audio.Silent{})
	if !f.mute {
		sound = audio.Open(cfg.Audio.Enabled, cfg.Audio.Volume, f.logger)
	}

	game, err := registry.Create(id, registry.Deps{
		ConfigPath: f.configPath,
		Prefs:      prefsOf(f.store),
		Sound:      sound,
		Logger:     f.logger,
	})
	if err != nil {
		sound.Close()
		return nil, nil, err
	}
	return game, sound, nil
}
