package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFingerprint(); err != nil {
		return err
	}
	if err := c.validateDiscovery(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFingerprint() error {
	if c.Fingerprint.Alpha <= 0 {
		return errors.New("fingerprint.alpha must be positive")
	}
	if c.Fingerprint.MinLikedFreq < 1 {
		return errors.New("fingerprint.min_liked_freq must be at least 1")
	}
	if c.Fingerprint.MinDirectorDiversity < 1 {
		return errors.New("fingerprint.min_director_diversity must be at least 1")
	}
	if c.Fingerprint.BaselineCap < 1 {
		return errors.New("fingerprint.baseline_cap must be at least 1")
	}
	if c.Fingerprint.ReviewCap < 0 {
		return errors.New("fingerprint.review_cap must not be negative")
	}
	return nil
}

func (c *Config) validateDiscovery() error {
	if c.Discovery.ScoreThreshold < 0 {
		return errors.New("discovery.score_threshold must not be negative")
	}
	if c.Discovery.DrearyPenalty < 0 {
		return errors.New("discovery.dreary_penalty must not be negative")
	}
	if c.Discovery.LegacyBonus < 0 {
		return errors.New("discovery.legacy_bonus must not be negative")
	}
	if c.Discovery.ReviewCap < 0 {
		return errors.New("discovery.review_cap must not be negative")
	}
	if c.Discovery.CastCap < 0 {
		return errors.New("discovery.cast_cap must not be negative")
	}
	if c.Discovery.EvidenceCap < 0 {
		return errors.New("discovery.evidence_cap must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
