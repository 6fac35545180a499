package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDiscovery()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.FilmsCSV, err = expandPath(c.Paths.FilmsCSV); err != nil {
		return fmt.Errorf("paths.films_csv: %w", err)
	}
	if c.Paths.Catalog, err = expandPath(c.Paths.Catalog); err != nil {
		return fmt.Errorf("paths.catalog: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDiscovery() {
	tokens := make([]string, 0, len(c.Discovery.DrearyTokens))
	for _, token := range c.Discovery.DrearyTokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	c.Discovery.DrearyTokens = tokens

	boosts := make(map[string]float64, len(c.Discovery.RegionalBoost))
	for region, boost := range c.Discovery.RegionalBoost {
		region = strings.TrimSpace(region)
		if region == "" {
			continue
		}
		boosts[region] = boost
	}
	c.Discovery.RegionalBoost = boosts
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
