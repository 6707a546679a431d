package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher subscribes to file-system notifications for a set of paths and
// feeds qualifying changes into an Orchestrator.
type Watcher struct {
	fw   *fsnotify.Watcher
	orch *Orchestrator
}

// NewWatcher creates a watcher feeding the given orchestrator.
func NewWatcher(orch *Orchestrator) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fw: fw, orch: orch}, nil
}

// Add watches a path. Directories are watched recursively: fsnotify
// watches are per-directory, so every subdirectory is registered, and
// newly created subdirectories are added as their create events arrive.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.fw.Add(path)
	}
	return filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return w.fw.Add(p)
		}
		return nil
	})
}

// Run forwards events until ctx is cancelled, then closes the
// underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			op, qualifying := classifyOp(ev)
			if !qualifying {
				continue
			}
			if op == OpCreated {
				// Keep recursive coverage as the tree grows.
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						slog.Debug("cannot watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			w.orch.Notify(Event{Path: ev.Name, Op: op, Time: time.Now()})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

// classifyOp maps an fsnotify event to a watch Op. Chmod-only events and
// editor temp files do not qualify.
func classifyOp(ev fsnotify.Event) (Op, bool) {
	base := filepath.Base(ev.Name)
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return 0, false
	}
	switch {
	case ev.Op.Has(fsnotify.Create):
		return OpCreated, true
	case ev.Op.Has(fsnotify.Write):
		return OpModified, true
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		return OpRemoved, true
	default:
		return 0, false
	}
}
