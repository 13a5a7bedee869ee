// concentration is a single-player memory matching game for the terminal.
//
// Usage:
//
//	concentration              - Play in this terminal
//	concentration themes       - List the theme catalog
//	concentration serve        - Serve the game over SSH
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go-concentration/internal/config"
	"go-concentration/internal/game"
	"go-concentration/internal/state"
	"go-concentration/internal/theme"
	"go-concentration/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "concentration",
	Short: "Concentration - a memory matching game for your terminal",
	Long: `Turn cards two at a time and find every pair.

A match scores 2 points. Mismatching a card you have already seen costs
1 point per seen card. Each card has a short bonus window while it is face up.

Controls:
  Arrows/hjkl   - Move
  Enter/Space   - Flip card
  S             - Shuffle
  n             - New game (random theme)
  q/Ctrl+C      - Quit

Examples:
  concentration
  concentration --theme Animals
  concentration --seed 42 --bonus 10
  concentration --themes-file ./my-themes.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("theme", "", "Theme of the first game (default random)")
	flags.String("themes-file", "", "Path to a custom theme catalog YAML")
	flags.Int("bonus", 6, "Bonus window per card in seconds (0 disables)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "concentration")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, cfg)
	if err != nil {
		return err
	}

	catalog, err := theme.Load(cfg.ThemesFile)
	if err != nil {
		return err
	}

	sess, err := game.NewSession(catalog, sessionOptions(cfg, logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the game: %w", err)
	}

	fmt.Printf("Final score: %d (%s)\n", sess.Score(), sess.Theme().Name())
	return nil
}

func newLogger(w io.Writer, cfg config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "concentration",
		Level:           level,
	})
	return logger, nil
}

func sessionOptions(cfg config.Config, logger *log.Logger) game.SessionOptions {
	opts := game.SessionOptions{
		Game: state.GameOptions{
			BonusTimeLimit: cfg.BonusTimeLimit(),
		},
		Theme:  cfg.Theme,
		Logger: logger,
	}
	if cfg.Seed != 0 {
		opts.Game.Rand = rand.New(rand.NewSource(cfg.Seed))
	} else {
		opts.Game.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return opts
}
