package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vshtohryn/assetserve/internal/store"
	"github.com/vshtohryn/assetserve/pkg/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List asset records",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data")
		s, err := store.Open(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		var filter catalog.Category
		if categoryFlag, _ := cmd.Flags().GetString("category"); categoryFlag != "" {
			filter, err = catalog.ParseCategory(categoryFlag)
			if err != nil {
				return err
			}
		}

		assets, err := s.List(context.Background(), filter)
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			fmt.Println("No assets found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MACHINE\tCATEGORY\tMANUFACTURER\tMODEL\tTYPE\tSTATUS\tUSER\tID")
		for _, a := range assets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				a.MachineName, a.Category, a.Manufacturer, a.ModelNumber,
				a.Type, a.Status, a.AssignedUser, a.ID)
		}
		return w.Flush()
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an asset record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data")
		s, err := store.Open(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Delete(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	listCmd.Flags().String("category", "", "filter by category")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
}
