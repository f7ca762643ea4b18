// Package cli handles cmd line input for debugging the ranking and
// classification engine interactively.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/vshtohryn/assetserve/internal/logger"
	"github.com/vshtohryn/assetserve/internal/utils"
	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/match"
)

// InputHandler processes model strings from stdin and prints the ranked
// candidates plus the best classification for each line.
type InputHandler struct {
	catalog      *catalog.Catalog
	minQuery     int
	maxQuery     int
	suggestLimit int
	log          *charmlog.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(cat *catalog.Catalog, minQuery, maxQuery, limit int) *InputHandler {
	return &InputHandler{
		catalog:      cat,
		minQuery:     minQuery,
		maxQuery:     maxQuery,
		suggestLimit: limit,
		log:          logger.New("cli"),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes
// the trimmed input to handleInput(). Loop terminates on stdin error/EOF.
func (h *InputHandler) Start() error {
	h.log.Print("AssetServe CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a model number and press Enter to see candidates and classification (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput ranks and classifies a single query and prints the results.
func (h *InputHandler) handleInput(query string) {
	if len(query) < h.minQuery {
		h.log.Errorf("Query too short: %s", query)
		return
	}
	if len(query) > h.maxQuery {
		h.log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	candidates := match.Rank(query, h.catalog, h.suggestLimit)
	elapsed := time.Since(start)
	h.log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(candidates) == 0 {
		h.log.Warnf("No candidates found for query: '%s'", query)
	} else {
		h.log.Printf("Found %d candidates for query '%s':", len(candidates), query)
		for i, c := range candidates {
			// prefix hits in blue, plain substring hits in grey
			color := "75"
			if !utils.HasPrefixIgnoreCase(c.Text, query) {
				color = "245"
			}
			clText := fmt.Sprintf("\033[38;5;%sm%s\033[0m", color, c.Text)
			h.log.Printf("%2d. %-40s (score: %d)", i+1, clText, c.Score)
		}
	}

	cls, ok := match.Classify(query, h.catalog)
	if !ok {
		h.log.Printf("classify: no match")
		return
	}
	if cls.Type != "" {
		h.log.Printf("classify: %s / %s / %s (score %d)", cls.Manufacturer, cls.Category, cls.Type, cls.Score)
		return
	}
	h.log.Printf("classify: %s / %s (score %d)", cls.Manufacturer, cls.Category, cls.Score)
}
