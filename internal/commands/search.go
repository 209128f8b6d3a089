package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/lookup"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the remote game catalog",
	Long: `Search the remote game catalog by title, genre, or description and
print up to five matches. Nothing is added to the library; use
'playtrack add' for that.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		apiURL, _ := cmd.Flags().GetString("api-url")
		client := lookup.NewClient(apiURL)

		query := strings.Join(args, " ")
		results, err := client.SearchGames(context.Background(), query)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(results) == 0 {
			fmt.Printf("No catalog matches for '%s'.\n", query)
			return
		}

		for _, candidate := range results {
			fmt.Printf("• %s (%s, %s)\n", candidate.Title, candidate.Genre, candidate.Platform)
			if candidate.ShortDescription != "" {
				fmt.Printf("  %s\n", candidate.ShortDescription)
			}
		}
	},
}

func init() {
	searchCmd.Flags().String("api-url", "", "Override the game catalog base URL (defaults to $PLAYTRACK_API_URL)")
}
