package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/lookup"
	"github.com/okazarin/playtrack/internal/models"
	"github.com/okazarin/playtrack/internal/storage"
	"github.com/okazarin/playtrack/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "playtrack",
	Short: "A CLI game library and play-time tracker",
	Long: `playtrack keeps a library of your games, times your play sessions,
and shows where the hours went. Running it without a subcommand opens
the interactive library.`,
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		if err := tui.RunLibraryTUI(l, lookup.NewClient("")); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// openLedger opens the on-device store and loads the ledger into memory,
// panicking on init failure
func openLedger() *ledger.Ledger {
	path, err := storage.DefaultPath()
	if err != nil {
		panic(err)
	}
	store, err := storage.Open(path)
	if err != nil {
		panic(err)
	}
	l, err := ledger.New(store)
	if err != nil {
		panic(err)
	}
	return l
}

// withLedger wraps a command function to load the ledger first
func withLedger(fn func(*cobra.Command, []string, *ledger.Ledger)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		fn(cmd, args, openLedger())
	}
}

// resolveGame finds a library game by numeric ID or (case-insensitive) name
func resolveGame(l *ledger.Ledger, arg string) (*models.Game, error) {
	if id, err := strconv.ParseUint(arg, 10, 32); err == nil {
		if game := l.Game(uint(id)); game != nil {
			return game, nil
		}
		return nil, fmt.Errorf("game #%d not found", id)
	}
	if game := l.GameByName(arg); game != nil {
		return game, nil
	}
	return nil, fmt.Errorf("game '%s' not found", arg)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("playtrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
