package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vshtohryn/assetserve/pkg/match"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <model text>",
	Short: "Classify a model number against the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		modelText := strings.Join(args, " ")

		limit, _ := cmd.Flags().GetInt("limit")
		if candidates := match.Rank(modelText, c, limit); len(candidates) > 0 {
			fmt.Printf("candidates for %q:\n", modelText)
			for i, cand := range candidates {
				fmt.Printf("%2d. %-40s (score %d)\n", i+1, cand.Text, cand.Score)
			}
		}

		cls, ok := match.Classify(modelText, c)
		if !ok {
			fmt.Printf("no match for %q\n", modelText)
			return nil
		}
		if cls.Type != "" {
			fmt.Printf("%s / %s / %s (score %d)\n", cls.Manufacturer, cls.Category, cls.Type, cls.Score)
			return nil
		}
		fmt.Printf("%s / %s (score %d)\n", cls.Manufacturer, cls.Category, cls.Score)
		return nil
	},
}

func init() {
	classifyCmd.Flags().Int("limit", match.DefaultLimit, "number of candidates to show")

	rootCmd.AddCommand(classifyCmd)
}
