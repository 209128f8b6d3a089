package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
)

var imageCmd = &cobra.Command{
	Use:   "image <game> <uri>",
	Short: "Set a game's cover image",
	Long: `Replace a game's cover image with a URI or local file reference.
The reference is stored as-is, nothing about its format is checked.`,
	Args: cobra.ExactArgs(2),
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		game, err := resolveGame(l, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := l.UpdateImage(game.ID, args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🖼️  Cover image updated for %s\n", game.Name)
	}),
}
