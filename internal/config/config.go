package config

import "time"

// Config is the root configuration for a comparison run.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Currency CurrencyConfig `yaml:"currency"`
	Sources  []SourceConfig `yaml:"sources"`
	Output   OutputConfig   `yaml:"output"`
}

// APIConfig holds Apify API settings.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Token      string        `yaml:"token"` // Usually ${APIFY_TOKEN}
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// FetchConfig holds source fan-out settings.
type FetchConfig struct {
	MaxPages  int           `yaml:"max_pages"`  // Result pages per actor run
	Timeout   time.Duration `yaml:"timeout"`    // Per-source timeout
	ItemLimit int           `yaml:"item_limit"` // Max items per source, 0 = no cap
}

// CurrencyConfig holds the reference currency and the fixed rate table.
// Rates convert one unit of the keyed currency into the reference currency.
type CurrencyConfig struct {
	Reference string             `yaml:"reference"`
	Rates     map[string]float64 `yaml:"rates"`
}

// SourceConfig describes one marketplace scraper.
type SourceConfig struct {
	Key      string         `yaml:"key"`      // Short identifier (e.g. "dhgate")
	Name     string         `yaml:"name"`     // Display name
	ActorID  string         `yaml:"actor_id"` // Apify actor ID
	Currency string         `yaml:"currency"` // Native currency of price strings
	Options  map[string]any `yaml:"options"`  // Extra actor input fields
	Disabled bool           `yaml:"disabled"`
}

// OutputConfig holds presentation and export settings.
type OutputConfig struct {
	Limit int    `yaml:"limit"` // Max comparison rows printed, 0 = all
	Dir   string `yaml:"dir"`   // Directory for CSV/JSON exports
}

// EnabledSources returns the sources that are not disabled, in config order.
func (c *Config) EnabledSources() []SourceConfig {
	out := make([]SourceConfig, 0, len(c.Sources))
	for _, src := range c.Sources {
		if !src.Disabled {
			out = append(out, src)
		}
	}
	return out
}
