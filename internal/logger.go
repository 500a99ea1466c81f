package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mama165/sdk-go/logs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service logger. With a log file, records go to stderr
// and to a rotating JSON file; the returned closer releases that file.
func NewLogger(level, logFile string) (*slog.Logger, io.Closer) {
	if logFile == "" {
		return logs.GetLoggerFromString(level), io.NopCloser(nil)
	}
	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(io.MultiWriter(os.Stderr, rotating), &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler), rotating
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(level)))); err != nil {
		return slog.LevelInfo
	}
	return l
}
