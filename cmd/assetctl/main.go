// Package main is the entry point for the assetctl inventory CLI.
//
// assetctl manages the asset inventory database directly: adding and
// listing records, importing pasted inventory-script JSON through the
// normalizer, exporting the JSON feed, and one-shot model classification.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vshtohryn/assetserve/pkg/catalog"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the assetctl CLI.
var rootCmd = &cobra.Command{
	Use:     "assetctl",
	Short:   "Manage the IT asset inventory",
	Version: version,
	Long: `assetctl manages the asset inventory database: add, list and remove
records, import inventory-script JSON through the field normalizer, export
the JSON feed, and classify model numbers against the manufacturer catalog.

The classification engine itself runs in-process; assetserve exposes the
same engine over IPC for the form frontend.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("data", "data/", "data directory (database and catalog overlay)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

// loadCatalog builds the catalog from the overlay next to the database,
// falling back to the built-in tables.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	dataDir, _ := cmd.Flags().GetString("data")
	return catalog.Load(filepath.Join(dataDir, "catalog.toml"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
