package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okazarin/playtrack/internal/ledger"
	"github.com/okazarin/playtrack/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play-time statistics",
	Long:  "Show global play-time statistics: totals, weekday and time-of-day breakdowns, and the most played games.",
	Run: withLedger(func(cmd *cobra.Command, args []string, l *ledger.Ledger) {
		plain, _ := cmd.Flags().GetBool("plain")
		if !plain {
			if err := tui.RunStatsTUI(l); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		global := l.GlobalStats()
		fmt.Printf("Total play time:  %.1fh\n", global.TotalHours)
		fmt.Printf("Sessions:         %d\n", global.TotalSessions)
		fmt.Printf("Avg per session:  %.1fh\n", global.AverageSessionHours)
		fmt.Printf("Games:            %d\n", global.TotalGames)

		fmt.Println("\nBy weekday:")
		weekdays := l.PlaytimeByWeekday()
		for i, name := range ledger.WeekdayNames {
			fmt.Printf("  %-10s %.1fh\n", name, weekdays[i])
		}

		fmt.Println("\nBy period:")
		periods := l.PlaytimeByPeriod()
		for i, period := range ledger.Periods {
			fmt.Printf("  %-10s %.1fh\n", period.Name, periods[i])
		}

		top := l.TopGames(10)
		if len(top) > 0 {
			fmt.Println("\nMost played:")
			for i, entry := range top {
				fmt.Printf("  %2d. %-30s %.1fh\n", i+1, entry.Name, entry.Hours)
			}
		}
	}),
}

func init() {
	statsCmd.Flags().Bool("plain", false, "Print plain text instead of the interactive UI")
}
