package service

import "sync"

// billLocks serializes read-modify-write cycles on a bill's session.
// Entries are dropped once no goroutine holds or waits for them.
type billLocks struct {
	mu    sync.Mutex
	locks map[string]*billLock
}

type billLock struct {
	sync.Mutex
	refs int
}

func newBillLocks() *billLocks {
	return &billLocks{locks: make(map[string]*billLock)}
}

// lock blocks until the bill's lock is held and returns its release func.
func (l *billLocks) lock(billID string) func() {
	l.mu.Lock()
	bl, ok := l.locks[billID]
	if !ok {
		bl = &billLock{}
		l.locks[billID] = bl
	}
	bl.refs++
	l.mu.Unlock()

	bl.Lock()
	return func() {
		bl.Unlock()
		l.mu.Lock()
		bl.refs--
		if bl.refs == 0 {
			delete(l.locks, billID)
		}
		l.mu.Unlock()
	}
}
