package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for playtrack",
	Long:  `Display detailed help for all playtrack commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗ ████████╗██████╗  █████╗  ██████╗██╗  ██╗
██╔══██╗╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
██████╔╝   ██║   ██████╔╝███████║██║     █████╔╝
██╔═══╝    ██║   ██╔══██╗██╔══██║██║     ██╔═██╗
██║        ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗
╚═╝        ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝

playtrack - Game Library + Play-Time Tracker

COMMANDS:

  (no command)            Open the interactive library

  add [name]              Add a game to the library
    --api-url             Override the catalog base URL
                          (or set $PLAYTRACK_API_URL)

    Without a name, opens the interactive flow:
      type          Search the remote catalog (debounced)
      ↑/↓ + enter   Pick a result (cover, genre, description included)
      tab           Switch to manual entry (name 2-30 chars)
      esc           Cancel

  ls                      Browse the library
    --plain               Plain table output

    Quick actions:
      ↑/↓ ←/→       Navigate games and pages
      s             Start a session for the selected game
      x             Stop the running session
      e             Set total recorded time (2h30m, 90, 1:30)
      f             Toggle favorite
      d             Delete game (with confirmation)
      a             Add a game
      tab           Statistics screen
      esc/q         Quit

  start <game>            Start a play session (ID or name)
    --no-ui               Start without the interactive timer
  stop                    Stop the running session
  status                  Show the running session

  edit <game> <time>      Set total recorded play time
  favorite <game>         Toggle the favorite flag
  delete <game>           Delete a game and its sessions
    -y, --yes             Skip confirmation
  image <game> <uri>      Set the cover image

  stats                   Play-time statistics
    --plain               Plain text output

  search <query>          Search the remote catalog
  clear                   Erase all stored data
    -y, --yes             Skip confirmation

  help                    Show this help
  version                 Show version information

`)
}
