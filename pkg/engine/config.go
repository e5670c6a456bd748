package engine

import (
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/wildfunctions/apcalc/pkg/deriv"
	"github.com/wildfunctions/apcalc/pkg/eval"
)

// Config holds the limits and logging setup of an Engine.
type Config struct {
	MaxEvalDepth    int    `json:"max_eval_depth"`
	MaxResolveDepth int    `json:"max_resolve_depth"`
	Workers         int    `json:"workers"`
	LogLevel        string `json:"log_level"` // logrus level name, e.g. "info"

	// Logger receives engine and evaluator logs. Nil means a new logger
	// writing to stderr at LogLevel. A supplied logger keeps its own level;
	// LogLevel is still validated.
	Logger *log.Logger `json:"-"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxEvalDepth:    eval.DefaultMaxDepth,
		MaxResolveDepth: deriv.DefaultMaxDepth,
		Workers:         runtime.NumCPU(),
		LogLevel:        "info",
	}
}
