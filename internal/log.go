package internal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Logger appends timestamped lines to a log file. Reopening the same path
// keeps earlier entries, so repeated watch runs accumulate one history.
type Logger struct {
	mu sync.Mutex
	f  *os.File
}

func NewLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{f: f}, nil
}

func (l *Logger) Log(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(l.f, "%s %s\n", ts, fmt.Sprintf(format, args...))
}

func (l *Logger) Close() error {
	return l.f.Close()
}
