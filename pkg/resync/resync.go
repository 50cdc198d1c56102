// Package resync provides a sync.Once variant that can be reset,
// so that lazy-loaded singletons can be reinitialized between tests.
package resync

import (
	"sync"
	"sync/atomic"
)

// Once behaves like sync.Once but supports Reset.
type Once struct {
	m    sync.Mutex
	done uint32
}

// Do calls f only once until the next Reset.
func (o *Once) Do(f func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}
	o.m.Lock()
	defer o.m.Unlock()
	if o.done == 0 {
		defer atomic.StoreUint32(&o.done, 1)
		f()
	}
}

// Reset allows Do to run f again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	atomic.StoreUint32(&o.done, 0)
}
