// Package config loads, defaults, and validates cleaver configuration.
//
// Values come from three layers, lowest precedence first: built-in defaults,
// a TOML file (~/.config/cleaver/config.toml or ./cleaver.toml), and
// CLEAVER_* environment variables. CLI flags are applied by the command layer
// on top of the loaded config. Validation runs once at load time so the
// pipeline never sees an unusable configuration.
package config
