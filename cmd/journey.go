package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
	"github.com/julien-sobczak/the-moodwriter/internal/mood"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
)

func init() {
	rootCmd.AddCommand(journeyCmd)
}

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Show the mood journey",
	Long:  `Print the rolling 14-day mood journey. State is in-memory only: outside an interactive check-in, this shows the demo seed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !core.CurrentConfig().Journal.Seed {
			fmt.Println("Journey is empty. Run a check-in first.")
			return
		}
		for _, entry := range mood.SeedJourney(clock.Now()) {
			fmt.Println(FormatJourneyRow(entry))
		}
	},
}
