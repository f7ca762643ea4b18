package catalog

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vshtohryn/assetserve/internal/utils"
)

// overlayFile mirrors the catalog.toml layout:
//
//	[[manufacturer]]
//	name = "Dell"
//	  [[manufacturer.category]]
//	  id = "laptops"
//	  keywords = ["Latitude", "Latitude 5420"]
//	    [[manufacturer.category.type]]
//	    name = "Tower"
//	    substrings = ["Tower", "MT"]
type overlayFile struct {
	Manufacturers []ManufacturerSpec `toml:"manufacturer"`
	Replace       bool               `toml:"replace"`
}

// Load returns the catalog for the given overlay path. An empty path or a
// missing file yields the built-in catalog. A present overlay extends the
// built-in tables (or replaces them when `replace = true`). Unlike the
// engine config, a malformed catalog is a hard error: silently dropping
// reference data would change match results without anyone noticing.
func Load(path string) (*Catalog, error) {
	if path == "" || !utils.FileExists(path) {
		log.Debug("No catalog overlay, using built-in tables")
		return Builtin(), nil
	}

	var overlay overlayFile
	if err := utils.LoadTOMLFile(path, &overlay); err != nil {
		return nil, fmt.Errorf("parsing catalog overlay %s: %w", path, err)
	}

	specs := overlay.Manufacturers
	if !overlay.Replace {
		specs = append(append([]ManufacturerSpec{}, builtin...), overlay.Manufacturers...)
	}

	c, err := New(specs)
	if err != nil {
		return nil, fmt.Errorf("building catalog from %s: %w", path, err)
	}
	log.Debugf("Loaded catalog overlay from %s: %d entries total", path, c.Len())
	return c, nil
}
