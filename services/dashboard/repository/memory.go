package repository

import (
	"sync"
	"time"

	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/services/dashboard"
)

type collectionState struct {
	issued   uint64
	snapshot *models.CollectionSnapshot
}

// CollectionRepo keeps the authoritative in-memory copy of every dashboard collection
type CollectionRepo struct {
	mu          sync.RWMutex
	collections map[string]*collectionState
}

var _ dashboard.CollectionRepo = (*CollectionRepo)(nil)

// NewCollectionRepository creates an empty collection store
func NewCollectionRepository() *CollectionRepo {
	return &CollectionRepo{collections: make(map[string]*collectionState)}
}

func (r *CollectionRepo) state(collection string) *collectionState {
	st, ok := r.collections[collection]
	if !ok {
		st = &collectionState{}
		r.collections[collection] = st
	}
	return st
}

// Begin issues the next generation number for collection
func (r *CollectionRepo) Begin(collection string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(collection)
	st.issued++
	return st.issued
}

// Apply replaces the collection when generation is newer than the applied one.
// A fetch that started earlier but finished later loses.
func (r *CollectionRepo) Apply(collection string, generation uint64, items []models.CollectionItem, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(collection)
	if st.snapshot != nil && generation <= st.snapshot.Generation {
		return false
	}
	st.snapshot = &models.CollectionSnapshot{
		Name:       collection,
		Items:      items,
		Generation: generation,
		SyncedAt:   at,
	}
	return true
}

// Snapshot returns the last applied copy. Callers must not mutate Items.
func (r *CollectionRepo) Snapshot(collection string) (*models.CollectionSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.collections[collection]
	if !ok || st.snapshot == nil {
		return nil, false
	}
	return st.snapshot, true
}
