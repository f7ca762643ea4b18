package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vshtohryn/assetserve/internal/utils"
)

func TestInitCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Init(path)
	if cfg.Engine.SuggestLimit != 8 || cfg.Engine.MinQuery != 1 || cfg.Engine.MaxQuery != 60 {
		t.Errorf("unexpected engine defaults: %+v", cfg.Engine)
	}
	if cfg.Session.DebounceMs != 160 {
		t.Errorf("debounce_ms = %d, want 160", cfg.Session.DebounceMs)
	}
	if cfg.Server.MaxLimit != 32 {
		t.Errorf("max_limit = %d, want 32", cfg.Server.MaxLimit)
	}
	if !utils.FileExists(path) {
		t.Error("Init should write the default config file")
	}

	// a second Init reads the file it just wrote
	again := Init(path)
	if *again != *cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestInitDegradesOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("engine = nonsense\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Init(path)
	if cfg.Engine.SuggestLimit != 8 {
		t.Errorf("expected built-in defaults on parse failure, got %+v", cfg.Engine)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[engine]
suggest_limit = 12
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.SuggestLimit != 12 {
		t.Errorf("suggest_limit = %d, want 12", cfg.Engine.SuggestLimit)
	}
	if cfg.Engine.MaxQuery != 60 || cfg.Session.DebounceMs != 160 {
		t.Errorf("absent keys lost their defaults: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero suggest limit", "[engine]\nsuggest_limit = 0\n"},
		{"inverted query bounds", "[engine]\nmin_query = 10\nmax_query = 2\n"},
		{"negative debounce", "[session]\ndebounce_ms = -5\n"},
		{"zero max limit", "[server]\nmax_limit = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Engine.SuggestLimit = 5
	cfg.Engine.CatalogPath = "/etc/assetserve/catalog.toml"
	if err := Save(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip changed the config: %+v vs %+v", loaded, cfg)
	}
}
