// Package freshness records template modification times to decide when dependents need recompiling.
package freshness

import (
	"sync"
	"time"
	"unique"

	"go.trai.ch/views/internal/core/ports"
)

var _ ports.FreshnessTracker = (*Tracker)(nil)

// Tracker implements ports.FreshnessTracker.
// One Tracker is shared by every request in the process.
type Tracker struct {
	mu       sync.Mutex
	observed map[unique.Handle[string]]int64
	fs       ports.FileSystem
}

// NewTracker creates a tracker that stats files through fs.
func NewTracker(fs ports.FileSystem) *Tracker {
	return &Tracker{
		observed: make(map[unique.Handle[string]]int64),
		fs:       fs,
	}
}

// IsFresh reports true the first time an existing path is seen and whenever its write time
// moved forward since the previous observation. The observation is updated in both cases.
// The whole check-and-update runs under one lock so concurrent callers see exactly one
// transition per change.
func (t *Tracker) IsFresh(path string) bool {
	modTime, err := t.fs.ModTime(path)
	if err != nil {
		return false
	}
	stamp := modTime.UnixNano()
	key := unique.Make(path)

	t.mu.Lock()
	defer t.mu.Unlock()

	last, seen := t.observed[key]
	if seen && stamp <= last {
		return false
	}
	t.observed[key] = stamp
	return true
}

// Observed returns the write time recorded for path.
func (t *Tracker) Observed(path string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	stamp, ok := t.observed[unique.Make(path)]
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, stamp).UTC(), true
}

// Len returns the number of tracked paths.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.observed)
}
