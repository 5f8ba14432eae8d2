package cart

import (
	"context"
	"sync"

	"github.com/novamart-dev/storefront-session/pkg/logger"
	"github.com/novamart-dev/storefront-session/pkg/storage"
)

// snapshotWriter persists cart snapshots best-effort. Writes carry the
// revision of the in-memory state they captured; a write for a revision
// older than the newest one seen is dropped, so a slow or retried write can
// never overwrite a later mutation's snapshot. Failures are logged and
// swallowed: in-memory state stays authoritative.
type snapshotWriter struct {
	store storage.Store
	logg  *logger.Logger
	key   string

	mu     sync.Mutex
	newest uint64
}

func newSnapshotWriter(store storage.Store, logg *logger.Logger, key string) *snapshotWriter {
	return &snapshotWriter{store: store, logg: logg, key: key}
}

// reset clears the high-water mark so a fresh revision sequence starts
// persisting again after a re-hydrate.
func (w *snapshotWriter) reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.newest = 0
}

func (w *snapshotWriter) write(ctx context.Context, rev uint64, items []Item) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if rev < w.newest {
		return
	}
	w.newest = rev

	if err := storage.SaveJSON(ctx, w.store, w.key, items); err != nil && w.logg != nil {
		w.logg.Error(w.logg.WithStorageKey(ctx, w.key), "persist cart snapshot", err)
	}
}
