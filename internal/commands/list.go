package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/lookup"
	"github.com/okazarin/playtrack/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Browse the game library",
	Long:    "Browse the game library with per-game play stats. Interactive by default, --plain for a table.",
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		plain, _ := cmd.Flags().GetBool("plain")
		if !plain {
			if err := tui.RunLibraryTUI(l, lookup.NewClient("")); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		games := l.Games()
		if len(games) == 0 {
			fmt.Println("Your library is empty. Use 'playtrack add' to add your first game.")
			return
		}

		fmt.Printf("%-4s %-3s %-30s %-10s %-9s %s\n", "ID", "FAV", "NAME", "PLAYED", "SESSIONS", "LAST PLAYED")
		fmt.Println(strings.Repeat("-", 78))

		for _, game := range games {
			stats := l.Stats(game.ID)

			fav := ""
			if game.IsFavorite {
				fav = "★"
			}

			name := game.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}

			fmt.Printf("%-4d %-3s %-30s %-10s %-9d %s\n",
				game.ID,
				fav,
				name,
				tui.FormatMinutes(stats.TotalTime, stats.SessionsCount > 0),
				stats.SessionsCount,
				tui.FormatLastPlayed(stats.LastPlayed))
		}
	}),
}

func init() {
	listCmd.Flags().Bool("plain", false, "Print a plain table instead of the interactive UI")
}
