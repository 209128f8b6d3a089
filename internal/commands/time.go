package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start <game>",
	Short: "Start a play session",
	Long: `Start timing a play session for a game, by ID or name. Opens the
interactive timer by default, use --no-ui for a plain start.

Examples:
  playtrack start 3            # Start by ID with the timer UI
  playtrack start "Celeste"    # Start by name
  playtrack start 3 --no-ui    # Start without UI`,
	Args: cobra.ExactArgs(1),
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		game, err := resolveGame(l, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := l.StartSession(game.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("▶️  Started session for %s\n", game.Name)
			fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
		} else {
			if err := tui.RunTimerTUI(l, session, game); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active play session",
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		session, err := l.EndSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active session to stop.")
			return
		}

		name := fmt.Sprintf("game #%d", session.GameID)
		if game := l.Game(session.GameID); game != nil {
			name = game.Name
		}
		fmt.Printf("⏹️  Stopped session for %s\n", name)
		fmt.Printf("Session length: %s\n", tui.FormatMinutes(session.Minutes(), true))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session, if any",
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		session := l.ActiveSession()
		if session == nil {
			fmt.Println("No session running.")
			return
		}

		name := fmt.Sprintf("game #%d", session.GameID)
		if game := l.Game(session.GameID); game != nil {
			name = game.Name
		}
		fmt.Printf("▶️  Currently playing: %s\n", name)
		fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed: %s\n", tui.FormatElapsed(time.Since(session.StartTime)))
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start the session without the interactive timer")
}
