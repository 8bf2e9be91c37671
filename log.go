package stickyheaders

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OpenLog returns a JSON logger appending to the file at path. The terminal
// belongs to the UI while it runs, so logs have to go to a file. Close the
// returned closer when done.
func OpenLog(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log %s", path)
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, file, nil
}
