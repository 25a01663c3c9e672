package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls fn with the base name of every known file that is created or
// rewritten in the data directory. It blocks until ctx is done and returns
// ctx.Err(). fn runs on the watching goroutine and must not block for long.
func (s *Store) Watch(ctx context.Context, fn func(name string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("storage: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(s.dir); err != nil {
		return fmt.Errorf("storage: watch %s: %w", s.dir, err)
	}
	s.logger.Debug("watching data dir", zap.String("dir", s.dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return ctx.Err()
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name := filepath.Base(ev.Name)
			if !known(name) {
				continue
			}
			s.logger.Debug("data file changed", zap.String("file", name), zap.Stringer("op", ev.Op))
			fn(name)

		case err, ok := <-w.Errors:
			if !ok {
				return ctx.Err()
			}
			s.logger.Warn("watch error", zap.Error(err))
		}
	}
}
