// Package journal records every rename frename performs.
//
// The journal is a gzip-compressed JSON-lines file. Each process appends one
// gzip member, so the file is a valid multistream gzip file that Read
// decodes in full. The journal is a record only; nothing replays it.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alctny/frename/internal/constants"
	"github.com/alctny/frename/internal/logger"
	"github.com/klauspost/compress/gzip"
)

// Version is the journal entry format version.
const Version = 1

// TimestampFormat is the format used for journal timestamps.
const TimestampFormat = "2006-01-02T15:04:05.0Z07:00"

// Entry is a single journal line.
type Entry struct {
	Version   int    `json:"version"`
	Timestamp string `json:"timestamp"`
	Mode      string `json:"mode"`
	Dir       string `json:"dir"`
	Old       string `json:"old"`
	New       string `json:"new"`
	IsDir     bool   `json:"is_dir,omitempty"`
}

// OldPath returns the full path the entry had before the rename.
func (e Entry) OldPath() string {
	return filepath.Join(e.Dir, e.Old)
}

// NewPath returns the full path the entry has after the rename.
func (e Entry) NewPath() string {
	return filepath.Join(e.Dir, e.New)
}

var (
	journalFile *os.File
	gz          *gzip.Writer
	mu          sync.Mutex
	enabled     bool
)

// DefaultPath returns the default journal path
// (~/.local/share/frename/journal.jsonl.gz).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.XDGDataSubdir, constants.AppName, constants.JournalFileName), nil
}

// Init opens the journal for appending. If path is empty the default path
// is used. With disable set the journal stays closed and Log is a no-op.
func Init(path string, disable bool) error {
	mu.Lock()
	defer mu.Unlock()

	if disable {
		enabled = false
		return nil
	}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			logger.Debug("failed to get default journal path", "error", err)
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirMode); err != nil {
		logger.Debug("failed to create journal directory", "error", err)
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FileMode)
	if err != nil {
		logger.Debug("failed to open journal file", "error", err)
		return err
	}

	journalFile = f
	enabled = true
	logger.Debug("journal initialized", "path", path)
	return nil
}

// Close finishes the current gzip member and closes the journal file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if journalFile == nil {
		return nil
	}
	var gzErr error
	if gz != nil {
		gzErr = gz.Close()
	}
	fileErr := journalFile.Close()
	journalFile = nil
	gz = nil
	enabled = false
	return errors.Join(gzErr, fileErr)
}

// Log writes an entry to the journal.
// If the journal is not initialized or disabled, this is a no-op.
func Log(entry Entry) error {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || journalFile == nil {
		return nil
	}
	// Started lazily so runs without renames leave no empty member behind.
	if gz == nil {
		gz = gzip.NewWriter(journalFile)
	}

	entry.Version = Version
	entry.Timestamp = time.Now().UTC().Format(TimestampFormat)

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Debug("failed to marshal journal entry", "error", err)
		return err
	}

	if _, err := gz.Write(append(data, '\n')); err != nil {
		logger.Debug("failed to write journal entry", "error", err)
		return err
	}

	return nil
}

// IsEnabled returns whether the journal is open.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Reset closes the journal and clears its state. Used for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if gz != nil {
		gz.Close()
	}
	if journalFile != nil {
		journalFile.Close()
	}
	gz = nil
	journalFile = nil
	enabled = false
}

// Read returns every entry stored at path in the order written.
// A missing file yields no entries. A member left truncated by an
// interrupted process ends the read without an error; the entries decoded
// before it are returned.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	defer zr.Close()

	var entries []Entry
	scanner := bufio.NewScanner(zr)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			logger.Debug("skipping malformed journal line", "error", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			logger.Warn("journal ends with a truncated record", "path", path)
			return entries, nil
		}
		return entries, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}
