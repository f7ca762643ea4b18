/*
Package main implements the asset classification engine server and CLI.

AssetServe infers manufacturer, category and sub-type from free-text model
numbers and serves live ranked autocomplete candidates while an operator
types. It can run as a MessagePack IPC server for integration with an
inventory form frontend, or as an interactive CLI for testing the catalog
and scoring.

# Usage

Start the server with default settings:

	assetserve

Use a custom data directory and enable debug logging:

	assetserve -data /var/lib/assetserve -d

Run in CLI mode for interactive testing:

	assetserve -c -limit 10

The data directory may contain a catalog.toml overlay that extends (or
replaces) the built-in manufacturer tables, and holds the engine's
config.toml. Both files are optional; built-in defaults apply when absent.

# Configuration

	[engine]
	suggest_limit = 8
	min_query = 1
	max_query = 60
	catalog_path = ""   # optional, overrides <data>/catalog.toml

	[session]
	debounce_ms = 160

	[server]
	max_limit = 32

The config file is created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. See the server
package docs for the message shapes. Completion requests are processed
synchronously with microsecond timing included in responses:

	{"id": "req1", "cmd": "complete", "q": "Lat", "l": 8}
	{"id": "req1", "s": [{"t": "Latitude", "r": 1}], "c": 1, "t": 92}
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vshtohryn/assetserve/internal/cli"
	"github.com/vshtohryn/assetserve/internal/utils"
	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/config"
	"github.com/vshtohryn/assetserve/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "assetserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "", "Directory holding config.toml and catalog.toml (default: data/ next to the executable)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing the catalog and scoring")
	limit := flag.Int("limit", defaults.Engine.SuggestLimit, "Number of candidates to return")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *dataDir == "" {
		if execDir, err := utils.GetExecutableDir(); err == nil {
			*dataDir = filepath.Join(execDir, "data")
		} else {
			*dataDir = "data/"
		}
	}

	cfg := config.Init(filepath.Join(*dataDir, "config.toml"))

	catalogPath := cfg.Engine.CatalogPath
	if catalogPath == "" {
		catalogPath = filepath.Join(*dataDir, "catalog.toml")
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Debugf("Catalog ready: %d entries", cat.Len())

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(cat, cfg.Engine.MinQuery, cfg.Engine.MaxQuery, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(*dataDir, cat.Len())

	srv := server.NewServer(cat, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ AssetServe ] model number classification and suggestions")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, entries int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("data dir: ( %s )", utils.GetAbsolutePath(dataDir))
	log.Infof("catalog entries: %d", entries)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
