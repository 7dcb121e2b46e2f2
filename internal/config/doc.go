// Package config loads snapcal's TOML configuration.
//
// The Load function resolves ~/.config/snapcal/config.toml (or an
// explicit path), falling back to built-in defaults when the file is
// missing. Missing config files are not an error; snapcal works
// out of the box.
//
// Example config.toml:
//
//	model = "gemini-2.5-flash"
//	data_dir = "~/.local/share/snapcal"
//	images_dir = "~/Pictures"
//	timeout_seconds = 30
//
//	[goals]
//	calories = 2200
//	protein = 150
//	carbs = 250
//	fat = 70
//
// The Gemini API key is intentionally not a config field. It is read
// from the GEMINI_API_KEY environment variable so the credential never
// lands in a dotfile.
package config
