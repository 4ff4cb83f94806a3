package runlock

import (
	"context"
	"os"
	"time"
)

// Acquire takes an advisory lock by exclusively creating path, polling
// until the file can be created or ctx is done. waiting, if non-nil,
// is invoked each time the lock is found held. The returned release
// func removes the lock file.
func Acquire(ctx context.Context, path string, waiting func()) (func(), error) {
	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()

	for {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			f.Close()
			break
		}

		if waiting != nil {
			waiting()
		}

		select {
		case <-tick.C:
			// retry
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	release := func() {
		os.Remove(path)
	}

	return release, nil
}
