package config

import (
	"fmt"
	"strings"

	"github.com/gramatica-es/sintaxis"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	return nil
}

func (l *LexiconConfig) validate() error {
	if l.Path == "" && l.StoreDir == "" {
		return fmt.Errorf("one of path or store_dir must be set")
	}
	if l.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", l.CacheSize)
	}
	if l.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", l.Workers)
	}
	if _, err := sintaxis.ParsePolicy(l.Policy); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	return nil
}

// ParsedPolicy returns the validated policy.
func (l LexiconConfig) ParsedPolicy() sintaxis.Policy {
	p, _ := sintaxis.ParsePolicy(l.Policy)
	return p
}

// Origins returns the allowed origins as a list.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// Methods returns the allowed methods as a list.
func (c CORSConfig) Methods() []string {
	return splitList(c.AllowedMethods)
}

// Headers returns the allowed headers as a list.
func (c CORSConfig) Headers() []string {
	return splitList(c.AllowedHeaders)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
