package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/aescanero/seattlewaste-opts/internal/config"
)

// Loader binds the file at path.
type Loader func(path string) (*config.Opts, error)

// ReloadFunc is called after a successful swap.
type ReloadFunc func(prev, next *config.Opts)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce coalesces bursts of file events into one reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLoader replaces config.LoadFile as the bind step.
func WithLoader(loader Loader) Option {
	return func(w *Watcher) {
		if loader != nil {
			w.load = loader
		}
	}
}

// WithOnReload registers fn to run after each successful reload.
func WithOnReload(fn ReloadFunc) Option {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// Watcher rebinds a configuration file into a store on change
type Watcher struct {
	path     string
	store    *config.Store
	load     Loader
	onReload ReloadFunc
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a watcher for path
func New(path string, store *config.Store, logger *zap.Logger, opts ...Option) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		path:     path,
		store:    store,
		debounce: 250 * time.Millisecond,
		logger:   logger,
	}
	w.load = func(path string) (*config.Opts, error) {
		return config.LoadFile(path, config.WithLogger(w.logger))
	}

	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Reload binds the file once and swaps the result into the store. On error
// the current record is left untouched.
func (w *Watcher) Reload() error {
	next, err := w.load(w.path)
	if err != nil {
		w.logger.Error("failed to reload configuration, keeping previous section",
			zap.String("path", w.path),
			zap.Error(err),
		)
		return err
	}

	prev := w.store.Replace(next)
	w.logger.Info("configuration reloaded",
		zap.String("path", w.path),
		zap.String("section", next.Section()),
		zap.Int("resources", next.Len()),
	)

	if w.onReload != nil {
		w.onReload(prev, next)
	}
	return nil
}

// dataLink is the symlink a Kubernetes ConfigMap volume swaps atomically on
// update; the mounted file itself never changes.
const dataLink = "..data"

// Run watches the file's directory until ctx is cancelled. Editors that
// save by renaming a temporary file over the target are handled because
// the directory, not the file, is watched. A swap of the directory's ..data
// symlink also triggers a reload.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(target)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.logger.Info("watching configuration file", zap.String("path", target))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("configuration watcher stopped", zap.String("path", target))
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name, target) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug("configuration file changed",
				zap.String("path", target),
				zap.String("op", event.Op.String()),
			)

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_ = w.Reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(name, target string) bool {
	name = filepath.Clean(name)
	if name == target {
		return true
	}
	return filepath.Dir(name) == filepath.Dir(target) && filepath.Base(name) == dataLink
}
