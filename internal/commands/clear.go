package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/storage"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all stored data",
	Long:  "Erase the whole library: games, session history, and any in-progress session.",
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Erase all games and sessions? This cannot be undone. [y/N] ")

			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Cancelled.")
				return
			}
		}

		path, err := storage.DefaultPath()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		store, err := storage.Open(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		if err := store.ClearAll(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🧹 All data erased.")
	},
}

func init() {
	clearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
