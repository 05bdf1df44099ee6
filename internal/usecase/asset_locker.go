package usecase

import "sync"

// AssetLocker serialises lifecycle transitions per parcel: the engine holds
// the parcel's lock for the whole read-validate-write span of a transition,
// so two concurrent actions against the same parcel cannot both commit.
// Transitions on different parcels proceed independently.

type AssetLocker struct {
	mu    sync.Mutex
	locks map[string]*assetLock
}

type assetLock struct {
	mu   sync.Mutex
	refs int
}

func NewAssetLocker() *AssetLocker {
	return &AssetLocker{locks: make(map[string]*assetLock)}
}

// Lock acquires the lock for realEstateID and returns the release func.
// Entries are reference counted so idle parcels don't accumulate.
func (l *AssetLocker) Lock(realEstateID string) func() {
	l.mu.Lock()
	e, ok := l.locks[realEstateID]
	if !ok {
		e = &assetLock{}
		l.locks[realEstateID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, realEstateID)
		}
		l.mu.Unlock()
	}
}
