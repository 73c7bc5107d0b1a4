package logger

import "fmt"

// Setup builds a logger from the resolved runtime settings.
func Setup(level string, json bool) (Logger, error) {
	cfg := DefaultConfig()
	cfg.JSON = json
	switch level {
	case "debug", "info", "warn", "error":
		cfg.Level = Level(level)
	case "":
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return New(cfg), nil
}
