package settings

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes to stderr, stdout is reserved for filtered lines.
var Logger zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// RecreateLogger rebuilds the global logger at the given level, falling back to warn.
func RecreateLogger(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	Logger = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	if err != nil {
		Logger.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
}
