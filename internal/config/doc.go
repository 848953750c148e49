// Package config provides the settings of the atlas shell.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment (ATLAS_*)   │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. TOML file               │  ← atlas.toml or -config
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A configuration file looks like:
//
//	[array]
//	initial = [3, 7, 2, 9, 5]
//	capacity = 16
//
//	[shell]
//	prompt = "atlas> "
//	color = "auto"      # auto, always or never
//	format = "json"     # default dump format: json or yaml
//	scripts = ["init.lua"]
package config
