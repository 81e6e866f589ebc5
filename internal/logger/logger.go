package logger

import (
	"log"

	"go.uber.org/zap"
)

// L is the process-wide logger. It defaults to a no-op logger so that
// packages can log during tests without calling Init.
var L = zap.NewNop()

// Init replaces the global logger. Release mode gets the JSON production
// config, everything else the human-readable development config.
func Init(mode string) {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	L = l
}
