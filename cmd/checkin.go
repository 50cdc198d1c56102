package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
	"github.com/julien-sobczak/the-moodwriter/internal/mood"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
)

func init() {
	rootCmd.AddCommand(checkinCmd)
}

// Run locally:
//
//	$ go run . checkin
var checkinCmd = &cobra.Command{
	Use:     "checkin",
	Aliases: []string{"hi"},
	Short:   "Start an interactive mood check-in",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Println("No argument expected")
			os.Exit(1)
		}

		today := clock.Now()
		var session mood.Session
		if core.CurrentConfig().Journal.Seed {
			session = mood.NewSession(today)
		} else {
			session = mood.NewBlankSession()
		}

		final := RunCheckin(session)
		if final.Current == "" {
			// Left before the first check-in
			return
		}

		fmt.Printf("✨ %d points, %d/%d rainbow slots. See you tomorrow.\n",
			final.Points, final.RainbowCount(), mood.RainbowSlots)
	},
}
