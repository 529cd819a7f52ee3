// Package config loads, normalizes, and validates labelstrip configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the HOMEBOX_DOMAIN environment
// fallback for the inventory domain. The Config type centralizes every knob
// the CLI needs: label geometry, printer command and timeout, output filename,
// and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
