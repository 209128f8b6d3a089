package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/parser"
	"github.com/okazarin/playtrack/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <game> <time>",
	Short: "Set a game's total recorded play time",
	Long: `Set the total recorded play time for a game, reconciling it against
the existing session history: only the most recent session's duration is
adjusted, every earlier session keeps its time. If the target is below
the sum of the earlier sessions, the last session clamps to zero.

Examples:
  playtrack edit 3 2h30m       # Total becomes 2h 30m
  playtrack edit "Celeste" 90  # Plain minutes work too`,
	Args: cobra.ExactArgs(2),
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		game, err := resolveGame(l, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		hours, minutes, err := parser.ParsePlaytime(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := l.EditTime(game.ID, hours, minutes); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		total := l.Stats(game.ID).TotalTime
		fmt.Printf("✏️  %s now has %s recorded\n", game.Name, tui.FormatMinutes(total, true))
	}),
}
