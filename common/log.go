package common

import (
	logging "github.com/ipfs/go-log"
)

// Logger is the package-wide logger for every algorithmic core. Call
// SetLogLevel(level) from a CLI entry point to raise its verbosity; the
// default level is quiet so library code never spams an embedding
// application.
var Logger = logging.Logger("dlogtoolkit")

// SetLogLevel raises or lowers the package logger's verbosity (e.g.
// "debug", "info", "error").
func SetLogLevel(level string) error {
	return logging.SetLogLevel("dlogtoolkit", level)
}
