package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/lookup"
	"github.com/okazarin/playtrack/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a game to the library",
	Long: `Add a game to your library. Without arguments this opens the
interactive flow: search the remote catalog (cover image, genre and
description come along for free) or enter a game manually. With a name
argument the game is added directly without touching the catalog.

Examples:
  playtrack add                 # Interactive search / manual entry
  playtrack add "Hollow Knight" # Direct manual add`,
	Args: cobra.MaximumNArgs(1),
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		if len(args) == 1 {
			name := strings.TrimSpace(args[0])
			if err := tui.ValidateGameName(name); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if l.HasGameNamed(name) {
				// Advisory only, duplicates are allowed
				fmt.Printf("⚠️  \"%s\" is already in your library, adding anyway.\n", name)
			}

			game, err := l.AddManualGame(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("✅ \"%s\" added to your library - ID: %d\n", game.Name, game.ID)
			return
		}

		apiURL, _ := cmd.Flags().GetString("api-url")
		if err := tui.RunAddGameTUI(l, lookup.NewClient(apiURL)); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	addCmd.Flags().String("api-url", "", "Override the game catalog base URL (defaults to $PLAYTRACK_API_URL)")
}
