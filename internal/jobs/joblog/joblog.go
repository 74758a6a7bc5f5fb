// Package joblog provides the append-only sinks periodic jobs write their
// results to, one sink per job.
package joblog

import (
	"os"
	"path/filepath"
	"sync"

	"crm-service/internal/pkg/errs"
)

type Appender interface {
	Append(line string) error
}

// FileLog appends lines to a single file. Open-append-close per line keeps
// the sink crash-tolerant; no rotation or read-back happens here.
type FileLog struct {
	mu   sync.Mutex
	path string
}

func NewFileLog(dir, filename string) *FileLog {
	return &FileLog{path: filepath.Join(dir, filename)}
}

func (l *FileLog) Append(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Wrap(err, "failed to open job log")
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return errs.Wrap(err, "failed to append job log line")
	}
	return f.Sync()
}

func (l *FileLog) Path() string {
	return l.path
}

// MemoryLog collects lines in memory for tests.
type MemoryLog struct {
	mu    sync.Mutex
	lines []string
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Append(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	return nil
}

func (l *MemoryLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
