package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vshtohryn/assetserve/internal/store"
	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/match"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an asset record",
	Long: `Add inserts a new asset record. When --model is given and --manufacturer
or --category are not, the model number is classified against the catalog
and the inferred values fill the gaps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data")
		s, err := store.Open(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		machineName, _ := cmd.Flags().GetString("name")
		categoryFlag, _ := cmd.Flags().GetString("category")
		manufacturer, _ := cmd.Flags().GetString("manufacturer")
		model, _ := cmd.Flags().GetString("model")
		serial, _ := cmd.Flags().GetString("serial")
		location, _ := cmd.Flags().GetString("location")
		status, _ := cmd.Flags().GetString("status")
		assetType, _ := cmd.Flags().GetString("type")

		if machineName == "" {
			return fmt.Errorf("--name is required")
		}

		asset := store.Asset{
			MachineName:  machineName,
			Manufacturer: manufacturer,
			ModelNumber:  model,
			SerialNumber: serial,
			Location:     location,
			Status:       status,
			Type:         assetType,
			Owner:        "Group Administrators",
		}

		if categoryFlag != "" {
			cat, err := catalog.ParseCategory(categoryFlag)
			if err != nil {
				return err
			}
			asset.Category = cat
		}

		// Fill manufacturer/category/type from the model number when the
		// operator left them blank.
		if model != "" && (asset.Manufacturer == "" || asset.Category == "" || asset.Type == "") {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			if cls, ok := match.Classify(model, c); ok {
				if asset.Manufacturer == "" {
					asset.Manufacturer = cls.Manufacturer
				}
				if asset.Category == "" {
					asset.Category = cls.Category
				}
				if asset.Type == "" {
					asset.Type = cls.Type
				}
			}
		}
		if asset.Category == "" {
			asset.Category = catalog.Other
		}
		if asset.Manufacturer == "" {
			return fmt.Errorf("--manufacturer is required when the model number is not recognized")
		}

		if err := s.Create(context.Background(), &asset); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s / %s) id=%s\n", asset.MachineName, asset.Manufacturer, asset.Category, asset.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().String("name", "", "machine name (required)")
	addCmd.Flags().String("category", "", "asset category: laptops, servers, systems, networks, printers, other")
	addCmd.Flags().String("manufacturer", "", "manufacturer (inferred from --model when omitted)")
	addCmd.Flags().String("model", "", "model number")
	addCmd.Flags().String("serial", "", "serial number")
	addCmd.Flags().String("location", "", "location")
	addCmd.Flags().String("status", "In Use", "status")
	addCmd.Flags().String("type", "", "sub-type for systems/servers (inferred from --model when omitted)")

	rootCmd.AddCommand(addCmd)
}
