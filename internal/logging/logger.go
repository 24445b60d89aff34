// Package logging holds the process-wide logger used by the teardown paths of seqkit.
//
// Library code never logs on the primary data path: failures there are returned. Only
// failures that are intentionally swallowed (quiet closes, hooks on close operations
// without an error result) are reported here. The logger is a no-op until the embedding
// program installs one with SetGlobalLogger.
package logging

import (
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
}

func Debug() *zerolog.Event { return Logger.Debug() }

func Warn() *zerolog.Event { return Logger.Warn() }
