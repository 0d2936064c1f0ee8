// chemdash is a terminal runner where you jump lab hazards and collect
// elements that combine into molecules.
//
// Usage:
//
//	chemdash play            - Play a run directly
//	chemdash menu            - Pick a difficulty interactively
//	chemdash scores          - Show, export or clear high scores
//	chemdash catalog         - List the molecules that can be formed
//	chemdash serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Display frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Database path (default: ~/.chemdash/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination (default: ~/.chemdash/chemdash.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chemdash/internal/chem"
	"github.com/vovakirdan/chemdash/internal/config"
	"github.com/vovakirdan/chemdash/internal/core"
	"github.com/vovakirdan/chemdash/internal/games/chemdash"
	"github.com/vovakirdan/chemdash/internal/logging"
	"github.com/vovakirdan/chemdash/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
	flagConfig     string
	flagCatalog    string
	flagDifficulty string
	flagName       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chemdash",
	Short: "Chemistry Dash - a molecule-building runner for your terminal",
	Long: `Chemistry Dash is a side-scrolling runner. Jump lab hazards, land on
platforms and collect elements; the right elements combine into molecules
worth bonus points and grant a random power-up.

Available commands:
  play     - Start a run directly
  menu     - Difficulty picker with scoreboard
  scores   - View, export or clear high scores
  catalog  - List formable molecules
  serve    - Start SSH server for remote play

Examples:
  chemdash play --difficulty hard
  chemdash menu
  chemdash scores --stats
  chemdash serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Display frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.chemdash/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.chemdash/chemdash.log", "Log file for interactive commands")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagCatalog, "catalog", "", "Path to custom molecule catalog YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the application logger. Interactive commands log to a
// file because bubbletea owns the terminal.
func newLogger(toStderr bool) (*log.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	if toStderr {
		return logging.New(os.Stderr, level, "chemdash"), io.NopCloser(nil), nil
	}
	f, err := logging.OpenFile(expandHome(flagLogFile))
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level, "chemdash"), f, nil
}

// prepareGame validates the config and catalog up front and hands the
// settings to the game package. Bad data fails the command.
func prepareGame(logger *log.Logger) (config.Difficulty, error) {
	d, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return "", err
	}
	if _, err := config.LoadChemDash(flagConfig); err != nil {
		return "", err
	}
	if flagCatalog != "" {
		if _, err := chem.LoadCatalog(flagCatalog); err != nil {
			return "", err
		}
	}

	chemdash.SetConfigPath(flagConfig)
	chemdash.SetCatalogPath(flagCatalog)
	chemdash.SetDifficulty(d)
	chemdash.SetLogger(logger)
	return d, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if flagName != "" {
		cfg.PlayerName = flagName
	} else if u := os.Getenv("USER"); u != "" {
		cfg.PlayerName = u
	}
	return cfg
}

// openBoard opens the score database. Failure is logged and play continues
// without persistence.
func openBoard(logger *log.Logger) (*storage.Board, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return storage.NewBoard(nil, logger), func() {}
	}
	return storage.NewBoard(store, logger), func() { store.Close() }
}
