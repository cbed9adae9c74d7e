package settings

import (
	"io"
	"path"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DuplicatesLogName is the file discarded lines are written to, beneath LogPath.
const DuplicatesLogName = "duplicates.log"

// NewDuplicatesLog starts a rotating log file that records every discarded line.
// Returns nil if no log path is configured.
func NewDuplicatesLog(logpath string) io.WriteCloser {
	if logpath == "" {
		return nil
	}
	// lumberjack lets us rotate log files automatically
	return &lumberjack.Logger{
		Filename:   path.Join(logpath, DuplicatesLogName),
		MaxSize:    2, // megabytes
		MaxBackups: 3,
		MaxAge:     28,    //days
		Compress:   false, // disabled by default
	}
}
