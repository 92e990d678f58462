package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
// A bad rate table is rejected here rather than mid-run: the engine must
// never silently produce a wrong financial comparison.
func (c *Config) Validate() error {
	if c.API.Token == "" {
		return errors.New("api.token is required (set APIFY_TOKEN)")
	}

	if c.Fetch.MaxPages < 1 {
		return errors.New("fetch.max_pages must be >= 1")
	}
	if c.Fetch.ItemLimit < 0 {
		return errors.New("fetch.item_limit must be >= 0")
	}

	if c.Currency.Reference == "" {
		return errors.New("currency.reference is required")
	}
	for code, rate := range c.Currency.Rates {
		if rate <= 0 {
			return fmt.Errorf("currency.rates.%s must be > 0, got %g", code, rate)
		}
	}

	enabled := c.EnabledSources()
	if len(enabled) == 0 {
		return errors.New("at least one enabled source is required")
	}

	seen := make(map[string]bool, len(enabled))
	for i, src := range enabled {
		if err := src.validate(fmt.Sprintf("sources[%d]", i)); err != nil {
			return err
		}
		if seen[src.Key] {
			return fmt.Errorf("duplicate source key %q", src.Key)
		}
		seen[src.Key] = true

		if !c.rateKnown(src.Currency) {
			return fmt.Errorf("source %s: no conversion rate for currency %q", src.Key, src.Currency)
		}
	}

	if c.Output.Limit < 0 {
		return errors.New("output.limit must be >= 0")
	}

	return nil
}

func (s *SourceConfig) validate(prefix string) error {
	if s.Key == "" {
		return fmt.Errorf("%s.key is required", prefix)
	}
	if s.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if s.ActorID == "" {
		return fmt.Errorf("%s.actor_id is required", prefix)
	}
	if s.Currency == "" {
		return fmt.Errorf("%s.currency is required", prefix)
	}
	return nil
}

// rateKnown reports whether a currency converts: either it is the
// reference itself or the rate table covers it.
func (c *Config) rateKnown(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == strings.ToUpper(strings.TrimSpace(c.Currency.Reference)) {
		return true
	}
	for k := range c.Currency.Rates {
		if strings.ToUpper(strings.TrimSpace(k)) == code {
			return true
		}
	}
	return false
}
