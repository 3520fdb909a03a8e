package srcwalk

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/autoreg/registry"
)

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// Walker performs the walks. Required.
	Walker *Walker

	// DebounceDelay is how long to wait for more changes before rewalking.
	DebounceDelay time.Duration

	// Logger for watch diagnostics.
	Logger *slog.Logger
}

// Snapshot is the result of one rewalk triggered by file changes.
type Snapshot struct {
	// Registry is the freshly built registry. Nil when Err is set.
	Registry *registry.Registry

	// Err is the walk error, if any.
	Err error
}

// Watcher rebuilds a source-walk registry whenever the tree changes.
type Watcher struct {
	cfg     WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	closeOnce sync.Once
	events    chan Snapshot
}

// NewWatcher creates a watcher around a configured walker.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	return &Watcher{
		cfg:     cfg,
		watcher: fsw,
		logger:  logger,
		events:  make(chan Snapshot, 16),
	}, nil
}

// Events returns the channel of rewalk snapshots.
func (w *Watcher) Events() <-chan Snapshot { return w.events }

// Start adds watches for every directory under the walker's root and begins
// emitting snapshots. It returns after the watches are established.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.cfg.Walker.cfg.Root); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Source watcher started",
		slog.String("root", w.cfg.Walker.cfg.Root),
		slog.Duration("debounce", w.cfg.DebounceDelay))
	return nil
}

// Stop stops the watcher and closes the events channel.
func (w *Watcher) Stop() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
		close(w.events)
	})
	return err
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && skipDir(filepath.Base(path)) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// New directories need their own watch before their
			// contents produce events.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addWatchesRecursive(event.Name); err != nil {
						w.logger.Warn("Failed to watch new directory",
							slog.String("path", event.Name), slog.String("error", err.Error()))
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.cfg.DebounceDelay)
				fire = timer.C
			} else {
				timer.Reset(w.cfg.DebounceDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watch error", slog.String("error", err.Error()))

		case <-fire:
			timer = nil
			fire = nil
			reg, err := w.cfg.Walker.Walk(ctx)
			select {
			case w.events <- Snapshot{Registry: reg, Err: err}:
			default:
				w.logger.Warn("Dropping snapshot, events channel full")
			}
		}
	}
}

// relevant filters events down to changes that can alter the registry.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
		return true
	}
	// Directory creations and removals reshape the tree.
	if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		return !strings.Contains(name, ".")
	}
	return false
}
