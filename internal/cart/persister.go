// internal/cart/persister.go
package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// Persister saves store snapshots under a key. It is an optional mirror of the
// in-memory store, never the state of record.
type Persister interface {
	Load(ctx context.Context, key string) (State, bool, error)
	Save(ctx context.Context, key string, state State) error
	Delete(ctx context.Context, key string) error
}

// Key builds the persistence key for one session of a named store.
func Key(storeName, sessionID string) string {
	return storeName + ":" + sessionID
}

func encodeState(state State) ([]byte, error) {
	return json.Marshal(state)
}

func decodeState(data []byte) (State, error) {
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, err
	}
	return state, nil
}

// MemoryPersister keeps encoded snapshots in a map. Encoding on save keeps
// stored values independent from the live store.
type MemoryPersister struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

func (p *MemoryPersister) Load(_ context.Context, key string) (State, bool, error) {
	p.mu.RLock()
	data, ok := p.data[key]
	p.mu.RUnlock()
	if !ok {
		return State{}, false, nil
	}

	state, err := decodeState(data)
	if err != nil {
		return State{}, false, err
	}
	return state, true, nil
}

func (p *MemoryPersister) Save(_ context.Context, key string, state State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.data[key] = data
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersister) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.data, key)
	p.mu.Unlock()
	return nil
}
