package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            int
	FinvizExportURL string
	HTTPTimeoutSecs int

	OpenAIAPIKey string
	OpenAIModel  string

	AuthPasswordHash string
	AuthTokenSecret  string
	AuthTokenTTLSecs int

	AllowedOrigins []string
}

func Load() *Config {
	cfg := &Config{
		FinvizExportURL:  strings.TrimSpace(os.Getenv("FINVIZ_EXPORT_URL")),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		AuthPasswordHash: strings.TrimSpace(os.Getenv("DASH_PASSWORD_HASH")),
		AuthTokenSecret:  os.Getenv("DASH_TOKEN_SECRET"),
	}

	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, summaries will be English-only")
	}
	if cfg.AuthPasswordHash == "" {
		log.Println("Warning: DASH_PASSWORD_HASH not set, API runs without login")
	}

	cfg.Port = 8080
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}

	cfg.HTTPTimeoutSecs = 15
	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutSecs = n
		}
	}

	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	cfg.AuthTokenTTLSecs = 3600
	if v := strings.TrimSpace(os.Getenv("DASH_TOKEN_TTL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AuthTokenTTLSecs = n
		}
	}

	cfg.AllowedOrigins = []string{"*"}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg
}

// Validate rejects configurations the service cannot start with. The export
// URL is required up front so the screener endpoint never fails lazily.
func (c *Config) Validate() error {
	if c.FinvizExportURL == "" {
		return fmt.Errorf("FINVIZ_EXPORT_URL is required: set it to a Finviz screener export URL including the auth token")
	}
	if c.AuthPasswordHash != "" && c.AuthTokenSecret == "" {
		return fmt.Errorf("DASH_TOKEN_SECRET is required when DASH_PASSWORD_HASH is set")
	}
	return nil
}

// AuthEnabled reports whether the login gate is configured.
func (c *Config) AuthEnabled() bool {
	return c.AuthPasswordHash != ""
}
