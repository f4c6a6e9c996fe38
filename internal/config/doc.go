// Package config loads runtime settings for termweave.
//
// Settings are read from a TOML or YAML file chosen by extension, then
// overridden by environment variables:
//
//	TERMWEAVE_TICK_INTERVAL  tick_interval  (duration, e.g. "16ms")
//	TERMWEAVE_LOG_LEVEL      log_level      (debug, info, warn, error)
//	TERMWEAVE_LOG_FILE       log_file
//	TERMWEAVE_MOUSE          mouse          (bool)
//	TERMWEAVE_PASTE          paste          (bool)
//	TERMWEAVE_BACKGROUND     background     ("default" or "#RRGGBB")
//
// Watch reloads the file when it changes on disk.
package config
