package legislature

import (
	"fmt"
	"time"
)

// Config drives one legislature service instance. All fields have
// working defaults except Session, which changes every biennium and
// must be set explicitly.
type Config struct {
	BaseURL   string `json:"baseUrl"`
	Chamber   string `json:"chamber"`
	Session   string `json:"session"`
	UserAgent string `json:"userAgent"`

	// Keywords are matched exactly against the Keywords line of a
	// bill page. TitleHeuristic is applied to the title when no
	// keyword matches.
	Keywords []string `json:"keywords"`

	// CountableMotions are the motions whose passing votes count
	// toward a member's tally. Compared case-insensitively after
	// whitespace normalization.
	CountableMotions []string `json:"countableMotions"`

	CacheTTLMinutes      int `json:"cacheTtlMinutes"`
	BillTTLMinutes       int `json:"billTtlMinutes"`
	MaxConcurrentFetches int `json:"maxConcurrentFetches"`
	TimeoutSeconds       int `json:"timeoutSeconds"`
}

// DefaultKeywords is the keyword set the Local 673 dashboard tracks.
var DefaultKeywords = []string{
	"FIREFIGHTERS & FIREFIGHTING",
	"EMERGENCY MEDICAL SERVICES",
	"RESCUE SQUADS",
	"FIREMENS PENSION FUND",
	"PENSION & RETIREMENT FUNDS",
	"9-1-1",
	"EMERGENCY SERVICES",
	"WORKERS' COMPENSATION",
	"CANCER",
}

// DefaultCountableMotions are the floor motions that represent a real
// position on a bill. Procedural motions are excluded.
var DefaultCountableMotions = []string{
	"Second Reading",
	"Third Reading",
	"Concur",
	"For Adoption",
}

func DefaultConfig() Config {
	return Config{
		BaseURL:              "https://www.ncleg.gov",
		Chamber:              "H",
		UserAgent:            "firewatch-dashboard/1.0 (+https://www.local673.org)",
		Keywords:             DefaultKeywords,
		CountableMotions:     DefaultCountableMotions,
		CacheTTLMinutes:      360,
		BillTTLMinutes:       360,
		MaxConcurrentFetches: 4,
		TimeoutSeconds:       30,
	}
}

// WithDefaults fills every zero-valued field from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Chamber == "" {
		c.Chamber = def.Chamber
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if len(c.Keywords) == 0 {
		c.Keywords = def.Keywords
	}
	if len(c.CountableMotions) == 0 {
		c.CountableMotions = def.CountableMotions
	}
	if c.CacheTTLMinutes <= 0 {
		c.CacheTTLMinutes = def.CacheTTLMinutes
	}
	if c.BillTTLMinutes <= 0 {
		c.BillTTLMinutes = def.BillTTLMinutes
	}
	if c.MaxConcurrentFetches <= 0 {
		c.MaxConcurrentFetches = def.MaxConcurrentFetches
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	return c
}

func (c Config) Validate() error {
	if c.Session == "" {
		return fmt.Errorf("config: session is required")
	}
	if c.Chamber != "H" && c.Chamber != "S" {
		return fmt.Errorf("config: chamber must be H or S, got %q", c.Chamber)
	}
	return nil
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

func (c Config) BillTTL() time.Duration {
	return time.Duration(c.BillTTLMinutes) * time.Minute
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
