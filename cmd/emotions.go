package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/mood"
)

func init() {
	rootCmd.AddCommand(emotionsCmd)
}

var emotionsCmd = &cobra.Command{
	Use:   "emotions",
	Short: "List the emotion categories",
	Run: func(cmd *cobra.Command, args []string) {
		applyColorConfig()

		for _, preset := range mood.Presets() {
			style := mood.StyleFor(preset.Key)
			categoryColor := color.New(presetColors[preset.Key], color.Bold)
			categoryColor.Printf("%s (%s)\n", preset.Name, preset.Key)
			fmt.Printf("  color     %s (accent %s, style %s)\n", preset.Color, style.Accent, style.Tag)
			fmt.Printf("  valence   %+.1f\n", preset.Valence)
			fmt.Printf("  keywords  %s\n", strings.Join(preset.Keywords, "、"))
		}
	},
}
