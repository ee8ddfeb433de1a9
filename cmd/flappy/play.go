package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant. Without one, a menu lets you pick
a variant, look at the scoreboard, and come back after each game.

Controls:
  Space/Up/W/click  - Flap
  P or [II]         - Pause
  R/Enter           - Restart after game over
  B                 - Back to the menu (paused or game over)
  Q/Esc/Ctrl+C      - Quit

Examples:
  flappy play
  flappy play flappy
  flappy play steampunk --mute
  flappy play flappy --config ./my-flappy.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML (only with an explicit variant)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	factory := gameFactory{store: store, logger: logger, mute: flagMute}

	if len(args) == 1 {
		factory.configPath = flagConfig
		_, err := playOne(factory, args[0], cfg, false)
		return err
	}
	return menuLoop(factory, store, cfg, logger)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playOne runs one variant until the player quits or goes back.
func playOne(factory gameFactory, id string, cfg core.RuntimeConfig, inMenu bool) (backToMenu bool, err error) {
	game, sound, err := factory.create(id)
	if err != nil {
		return false, err
	}
	defer sound.Close()

	factory.logger.Info("game started", "game", id, "seed", cfg.Seed)
	back, err := tui.Run(game, cfg, tui.Options{
		Store:  factory.store,
		Logger: factory.logger,
		InMenu: inMenu,
	})
	if err != nil {
		return false, fmt.Errorf("running %s: %w", id, err)
	}
	factory.logger.Info("game ended", "game", id, "best", game.State().Highscore)
	return back, nil
}

// menuLoop alternates between the menu, the scoreboard and games until the
// player quits.
func menuLoop(factory gameFactory, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			back, err := playOne(factory, res.GameID, cfg, true)
			if err != nil {
				logger.Error("game failed", "game", res.GameID, "error", err)
				return err
			}
			if !back {
				return nil
			}
		}
	}
}
