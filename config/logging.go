package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// OpenLog points the standard logger at LogFile when Log is set and discards
// log output otherwise. A non-nil file must be closed by the caller.
func (d Debug) OpenLog() (*os.File, error) {
	if !d.Log {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(d.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	f, err := os.OpenFile(d.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
