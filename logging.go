package main

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// logging.go - leveled, filterable log output for the driver pipeline
// (SPEC_FULL.md §4.6), grounded in _examples/qjcg-driving's LevelFilter
// wiring over the stdlib log.Logger: a log.SetOutput filter gating
// DEBUG/INFO/WARN/ERROR prefixes, with -v lowering the minimum level.

// setupLogging installs a level filter on the default logger. verbose
// lowers the minimum printed level from INFO to DEBUG.
func setupLogging(verbose bool) {
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel("INFO"),
		Writer:   os.Stderr,
	}
	if verbose {
		filter.MinLevel = logutils.LogLevel("DEBUG")
	}
	log.SetOutput(filter)
	log.SetFlags(0)
}

func logDebug(format string, args ...interface{}) {
	log.Printf("[DEBUG] "+format, args...)
}

func logInfo(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

func logWarn(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}

func logError(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}
