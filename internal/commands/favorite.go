package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite <game>",
	Aliases: []string{"fav"},
	Short:   "Toggle a game's favorite flag",
	Long:    "Toggle a game's favorite flag. Favorites sort to the top of the library.",
	Args:    cobra.ExactArgs(1),
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		game, err := resolveGame(l, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := l.ToggleFavorite(game.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if l.Game(game.ID).IsFavorite {
			fmt.Printf("⭐ %s marked as favorite\n", game.Name)
		} else {
			fmt.Printf("☆ %s is no longer a favorite\n", game.Name)
		}
	}),
}
