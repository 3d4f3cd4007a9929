// Package config loads simenv profiles.
//
// Sources are layered with koanf, lowest priority first:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/simenv/config.toml or --config
//     (.yaml and .yml files are parsed as YAML)
//  3. SIMENV_HOME, SIMENV_PROFILE and SIMENV_SEPARATOR
//  4. command-line overrides
//
// A user file adds profiles or replaces the steps of an existing one:
//
//	profile = "harmonic"
//
//	[profiles.harmonic]
//	description = "Gazebo Harmonic"
//
//	[[profiles.harmonic.steps]]
//	variable = "GZ_SIM_RESOURCE_PATH"
//	mode = "prepend"
//	entries = ["$HOME/models"]
//
//	[[profiles.harmonic.steps]]
//	variable = "GZ_VERSION"
//	mode = "set"
//	entries = ["harmonic"]
package config
