// Package config loads, validates, and defaults whitemask configuration.
//
// Configuration lives in a TOML file; every tunable constant of the pipeline
// (smoothing alpha, frequency floors, baseline cap, penalties, surcharges,
// thresholds, caps) is exposed here so experiments do not require a rebuild.
package config
