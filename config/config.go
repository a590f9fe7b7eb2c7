package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"5250"`

	Scraping struct {
		// Per-request timeout for portal and API fetches (in seconds)
		RequestTimeout int `env:"SCRAPE_TIMEOUT" envDefault:"8"`

		// Maximum listings collected from a single portal page
		MaxPerSource int `env:"SCRAPE_MAX_PER_SOURCE" envDefault:"20"`

		// Page size requested from the live metasearch API
		APILimit int `env:"SCRAPE_API_LIMIT" envDefault:"30"`
	}

	// Number of synthetic listings produced when every source comes up empty
	FallbackCount int `env:"FALLBACK_COUNT" envDefault:"50"`

	Scheduler struct {
		// Whether the background cache warm-up runs at all
		Enabled bool `env:"WARMUP_ENABLED" envDefault:"true"`

		// Minutes between warm-up passes over the supported cities
		IntervalMinutes int `env:"WARMUP_INTERVAL" envDefault:"60"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
