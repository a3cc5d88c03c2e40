package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"evtxview/internal/app/errors"
)

// followPoll wakes a waiting follower even without a write event, covering writes
// that landed between the last read and the watch
const followPoll = time.Second

// follower waits for more data to be appended to a file
type follower struct {
	watcher *fsnotify.Watcher
	path    string
}

func newFollower(path string) (*follower, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	return &follower{watcher: w, path: path}, nil
}

// Wait blocks until the file is written to, the poll interval passes, or ctx is done.
// Removal or rename of the file ends following with ErrSourceClosed.
func (f *follower) Wait(ctx context.Context) error {
	timer := time.NewTimer(followPoll)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case event, ok := <-f.watcher.Events:
			if !ok {
				return errors.ErrSourceClosed
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				return fmt.Errorf("%w: %s was moved or removed", errors.ErrSourceClosed, f.path)
			}

			if event.Has(fsnotify.Write) {
				return nil
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return errors.ErrSourceClosed
			}

			return err
		}
	}
}

func (f *follower) Close() error {
	return f.watcher.Close()
}
