// Package state provides the observable container every store keeps its data
// in. Mutations happen under the container lock; subscribers are notified
// with an immutable snapshot after the lock is released. Data values must be
// treated as copy-on-write: patches build new slices and maps instead of
// editing the ones held by earlier snapshots.
package state

import "sync"

// Status is the loading/error part shared by every store.
type Status struct {
	IsLoading    bool   `json:"isLoading"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Snapshot is a point-in-time copy of a store.
type Snapshot[S any] struct {
	Status
	Data S
}

// Token identifies a subscription.
type Token uint64

// Op tracks one pending remote operation. Results of an Op are dropped when
// the store was reset after the Op began, or when the Op was superseded by a
// newer one with the same key.
type Op struct {
	gen uint64
	key string
	seq uint64
}

// Container holds a store's snapshot.
type Container[S any] struct {
	mu       sync.Mutex
	defaults func() S
	snap     Snapshot[S]
	pending  int
	gen      uint64
	latest   map[string]uint64
	subs     map[Token]func(Snapshot[S])
	nextSub  Token
}

// New creates a container initialized with defaults().
func New[S any](defaults func() S) *Container[S] {
	return &Container[S]{
		defaults: defaults,
		snap:     Snapshot[S]{Data: defaults()},
		latest:   make(map[string]uint64),
		subs:     make(map[Token]func(Snapshot[S])),
	}
}

// Snapshot returns the current state.
func (c *Container[S]) Snapshot() Snapshot[S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Subscribe registers fn to be called after every change.
func (c *Container[S]) Subscribe(fn func(Snapshot[S])) Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSub++
	c.subs[c.nextSub] = fn
	return c.nextSub
}

// Unsubscribe removes a subscription. Unknown tokens are ignored.
func (c *Container[S]) Unsubscribe(t Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, t)
}

// Begin marks the store as loading and returns the Op to settle with End.
func (c *Container[S]) Begin() Op {
	return c.begin("")
}

// BeginLatest is Begin for loads where only the newest request per key may
// apply its result.
func (c *Container[S]) BeginLatest(key string) Op {
	return c.begin(key)
}

// Invalidate makes every pending Op for key stale.
func (c *Container[S]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest[key]++
}

func (c *Container[S]) begin(key string) Op {
	c.mu.Lock()
	op := Op{gen: c.gen, key: key}
	if key != "" {
		c.latest[key]++
		op.seq = c.latest[key]
	}
	c.pending++
	c.snap.IsLoading = true
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
	return op
}

// End settles op. It always runs, whatever the outcome of the operation.
func (c *Container[S]) End(op Op) {
	c.mu.Lock()
	if op.gen != c.gen {
		c.mu.Unlock()
		return
	}
	if c.pending > 0 {
		c.pending--
	}
	c.snap.IsLoading = c.pending > 0
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
}

// Apply patches the data with the result of op and clears the error message.
// It reports false when op is stale and nothing was applied.
func (c *Container[S]) Apply(op Op, patch func(*S)) bool {
	c.mu.Lock()
	if !c.current(op) {
		c.mu.Unlock()
		return false
	}
	patch(&c.snap.Data)
	c.snap.ErrorMessage = ""
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
	return true
}

// Fail records message as the store's error unless op is stale.
func (c *Container[S]) Fail(op Op, message string) {
	c.mu.Lock()
	if !c.current(op) {
		c.mu.Unlock()
		return
	}
	c.snap.ErrorMessage = message
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
}

// Mutate patches the data immediately, outside of any Op. Used for resets of
// partial state and for optimistic patches.
func (c *Container[S]) Mutate(patch func(*S)) {
	c.mu.Lock()
	patch(&c.snap.Data)
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
}

// SetError sets the error message outside of any Op.
func (c *Container[S]) SetError(message string) {
	c.mu.Lock()
	c.snap.ErrorMessage = message
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
}

// ClearMessages clears the error message only.
func (c *Container[S]) ClearMessages() {
	c.SetError("")
}

// Reset restores the defaults and invalidates every pending Op.
func (c *Container[S]) Reset() {
	c.ResetWith(nil)
}

// ResetWith restores the defaults, then applies init before subscribers see
// the new state.
func (c *Container[S]) ResetWith(init func(*S)) {
	c.mu.Lock()
	c.gen++
	c.pending = 0
	c.latest = make(map[string]uint64)
	c.snap = Snapshot[S]{Data: c.defaults()}
	if init != nil {
		init(&c.snap.Data)
	}
	snap, subs := c.snap, c.subscribers()
	c.mu.Unlock()

	notify(subs, snap)
}

func (c *Container[S]) current(op Op) bool {
	if op.gen != c.gen {
		return false
	}
	return op.key == "" || c.latest[op.key] == op.seq
}

func (c *Container[S]) subscribers() []func(Snapshot[S]) {
	if len(c.subs) == 0 {
		return nil
	}
	out := make([]func(Snapshot[S]), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}

func notify[S any](subs []func(Snapshot[S]), snap Snapshot[S]) {
	for _, fn := range subs {
		fn(snap)
	}
}
