package fs

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/observeinc/obship/internal/ports"
)

// pollInterval is the fallback read interval for filesystems where change
// notifications are unreliable (network mounts, some container overlays).
const pollInterval = 200 * time.Millisecond

// Follower tails a newline-delimited file and emits each complete appended
// line. It watches the file's directory with fsnotify and falls back to a
// low-frequency poll. Rotation (remove/rename then recreate) and truncation
// are handled by reopening or rewinding the file.
type Follower struct {
	path      string
	fromStart bool
	logger    ports.Logger

	file    *os.File
	reader  *bufio.Reader
	offset  int64
	partial []byte
}

// NewFollower creates a follower for the given path. When fromStart is
// false, following begins at the current end of the file.
func NewFollower(path string, fromStart bool, logger ports.Logger) *Follower {
	return &Follower{
		path:      path,
		fromStart: fromStart,
		logger:    logger,
	}
}

// Run follows the file until the context is done, calling emit once per
// complete line (without the trailing newline). Blank lines are skipped.
func (f *Follower) Run(ctx context.Context, emit func(line []byte)) error {
	if err := f.open(f.fromStart); err != nil {
		return err
	}
	defer f.close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory rather than the file so rotation is observed.
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		return err
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	f.read(emit)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != f.path {
				continue
			}
			switch {
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Rotated away; keep reading the old handle until the
				// replacement appears.
			case event.Op&fsnotify.Create != 0:
				if err := f.open(true); err != nil {
					f.logger.Warn("reopen followed file", ports.Err(err))
					continue
				}
				f.read(emit)
			default:
				f.read(emit)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Warn("file watcher error", ports.Err(err))

		case <-ticker.C:
			f.read(emit)
		}
	}
}

// open (re)opens the followed file. When fromStart is false the offset is
// positioned at the current end.
func (f *Follower) open(fromStart bool) error {
	file, err := os.Open(f.path)
	if err != nil {
		return err
	}

	f.close()
	f.file = file
	f.offset = 0
	f.partial = nil
	if !fromStart {
		if pos, err := file.Seek(0, io.SeekEnd); err == nil {
			f.offset = pos
		}
	}
	f.reader = bufio.NewReader(file)
	return nil
}

func (f *Follower) close() {
	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}
}

// read drains all complete lines currently available, carrying a partial
// trailing line across calls. A shrinking file is treated as truncation and
// rewound to the start.
func (f *Follower) read(emit func(line []byte)) {
	if f.file == nil {
		return
	}

	if info, err := f.file.Stat(); err == nil && info.Size() < f.offset {
		if _, err := f.file.Seek(0, io.SeekStart); err == nil {
			f.offset = 0
			f.partial = nil
			f.reader.Reset(f.file)
		}
	}

	for {
		chunk, err := f.reader.ReadBytes('\n')
		f.offset += int64(len(chunk))

		if len(chunk) > 0 && chunk[len(chunk)-1] == '\n' {
			line := append(f.partial, chunk[:len(chunk)-1]...)
			f.partial = nil
			line = bytes.TrimSpace(line)
			if len(line) > 0 {
				emit(line)
			}
		} else if len(chunk) > 0 {
			f.partial = append(f.partial, chunk...)
		}

		if err != nil {
			return
		}
	}
}
