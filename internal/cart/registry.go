// internal/cart/registry.go
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const persistTimeout = 5 * time.Second

type entry struct {
	store       *Store
	unsubscribe func()
	lastSeen    time.Time
}

// Registry owns one Store per session. Stores are restored from the persister
// on first use and mirrored back to it after every mutation.
type Registry struct {
	storeName string
	persister Persister
	logger    logrus.FieldLogger

	mu      sync.Mutex
	entries map[string]*entry
}

func NewRegistry(storeName string, persister Persister, logger logrus.FieldLogger) *Registry {
	if persister == nil {
		persister = NewMemoryPersister()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Registry{
		storeName: storeName,
		persister: persister,
		logger:    logger,
		entries:   make(map[string]*entry),
	}
}

// Store returns the session's store, creating or restoring it when needed.
// A failing persister only costs the restored state; the session still gets
// an empty store. The persister is read without holding the registry lock,
// so a slow restore never blocks other sessions.
func (r *Registry) Store(ctx context.Context, sessionID string) *Store {
	if store, ok := r.lookup(sessionID); ok {
		return store
	}

	key := Key(r.storeName, sessionID)
	log := r.logger.WithField("key", key)

	store := NewStore()
	state, found, err := r.persister.Load(ctx, key)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to restore store, starting empty")
	case found:
		store = NewStoreFromState(state)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another request for the same session may have restored it first.
	if e, ok := r.entries[sessionID]; ok {
		e.lastSeen = time.Now()
		return e.store
	}

	unsubscribe := store.Subscribe(func(s State) {
		r.persist(key, s, log)
	})
	r.entries[sessionID] = &entry{store: store, unsubscribe: unsubscribe, lastSeen: time.Now()}
	return store
}

func (r *Registry) lookup(sessionID string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.store, true
}

// persist mirrors s to the persister. An empty state (no items, no user)
// deletes the snapshot instead of storing an empty one.
func (r *Registry) persist(key string, s State, log logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if len(s.Items) == 0 && s.User == nil {
		if err := r.persister.Delete(ctx, key); err != nil {
			log.WithError(err).Warn("Failed to delete persisted store")
		}
		return
	}
	if err := r.persister.Save(ctx, key, s); err != nil {
		log.WithError(err).Warn("Failed to persist store")
	}
}

// Len is the number of live stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Evict drops stores not used for maxIdle. Their persisted snapshots stay,
// so a returning session is restored.
func (r *Registry) Evict(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.entries {
		if time.Since(e.lastSeen) > maxIdle {
			e.unsubscribe()
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor evicts idle stores every interval until ctx is done.
func (r *Registry) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Evict(maxIdle); n > 0 {
				r.logger.WithField("evicted", n).Debug("Evicted idle stores")
			}
		}
	}
}
