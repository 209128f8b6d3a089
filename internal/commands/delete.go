package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <game>",
	Short: "Delete a game and its session history",
	Long: `Delete a game from the library. Every recorded session for the game
is removed with it, and an in-progress session for the game is discarded.`,
	Args: cobra.ExactArgs(1),
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		game, err := resolveGame(l, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			sessions := l.Stats(game.ID).SessionsCount
			fmt.Printf("Delete %s and its %d recorded sessions? [y/N] ", game.Name, sessions)

			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Cancelled.")
				return
			}
		}

		if err := l.DeleteGame(game.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted %s\n", game.Name)
	}),
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
