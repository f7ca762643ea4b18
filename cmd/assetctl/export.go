package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vshtohryn/assetserve/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory as the JSON feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data")
		s, err := store.Open(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.ExportJSON(context.Background(), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
