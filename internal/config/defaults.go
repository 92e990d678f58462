package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://api.apify.com/v2"
	DefaultAPITimeout   = 150 * time.Second
	DefaultMaxRetries   = 3
	DefaultMaxPages     = 2
	DefaultFetchTimeout = 120 * time.Second
	DefaultItemLimit    = 50
	DefaultReference    = "USD"
	DefaultOutputLimit  = 30
	DefaultOutputDir    = "."
)

// DefaultRates is the built-in conversion table, used when the config file
// declares none. CNY is the only non-reference currency the bundled
// sources quote in.
var DefaultRates = map[string]float64{
	"CNY": 0.14,
}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Fetch defaults
	if c.Fetch.MaxPages == 0 {
		c.Fetch.MaxPages = DefaultMaxPages
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.ItemLimit == 0 {
		c.Fetch.ItemLimit = DefaultItemLimit
	}

	// Currency defaults
	if c.Currency.Reference == "" {
		c.Currency.Reference = DefaultReference
	}
	if c.Currency.Rates == nil {
		c.Currency.Rates = DefaultRates
	}

	// Output defaults
	if c.Output.Limit == 0 {
		c.Output.Limit = DefaultOutputLimit
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
}
