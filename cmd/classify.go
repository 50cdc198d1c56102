package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/mood"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

// Run locally:
//
//	$ go run . classify "今天跟朋友吃飯很開心"
var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify a mood description",
	Long:  `Map a free-text mood description to one of the five emotion categories. Reads stdin when no argument is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		if input == "" {
			// Fall back to stdin (ex: echo "很開心" | moodwriter classify)
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				input = scanner.Text()
			}
			if err := scanner.Err(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}

		PrintPreset(mood.Classify(input))
	},
}
