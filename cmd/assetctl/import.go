package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vshtohryn/assetserve/internal/store"
	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/importer"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import an inventory-script JSON record as a new asset",
	Long: `Import reads a JSON key/value record (from a file or stdin), runs it
through the field normalizer, classifies any recognized model number, and
inserts the resulting asset. A payload that is not a key/value record is
rejected without touching the database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("reading import payload: %w", err)
		}

		record, err := importer.ParseRecord(data)
		if err != nil {
			return err
		}

		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		result, err := importer.Normalize(record, importer.Draft{}, c)
		if err != nil {
			return err
		}
		if !result.MatchedAny {
			return fmt.Errorf("no recognized fields in import payload")
		}

		asset := store.Asset{
			MachineName:  result.Fields[importer.FieldMachineName],
			Manufacturer: result.Fields[importer.FieldManufacturer],
			ModelNumber:  result.Fields[importer.FieldModelNumber],
			PartNumber:   result.Fields[importer.FieldPartNumber],
			SerialNumber: result.Fields[importer.FieldSerialNumber],
			OS:           result.Fields[importer.FieldOS],
			Location:     result.Fields[importer.FieldLocation],
			AssignedUser: result.Fields[importer.FieldAssignedUser],
			Type:         result.Fields[importer.FieldType],
			Notes:        result.Fields[importer.FieldNotes],
			Status:       result.Fields[importer.FieldStatus],
			Owner:        "Group Administrators",
		}
		if cat, ok := result.Fields[importer.FieldCategory]; ok {
			asset.Category = catalog.Category(cat)
		} else {
			asset.Category = catalog.Other
		}
		if asset.MachineName == "" {
			return fmt.Errorf("import payload carries no machine name")
		}
		if asset.Manufacturer == "" {
			return fmt.Errorf("import payload carries no manufacturer and the model was not recognized")
		}
		if asset.Status == "" {
			asset.Status = "In Use"
		}

		dataDir, _ := cmd.Flags().GetString("data")
		s, err := store.Open(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Create(context.Background(), &asset); err != nil {
			return err
		}
		fmt.Printf("Imported %s (%s / %s) id=%s\n", asset.MachineName, asset.Manufacturer, asset.Category, asset.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
