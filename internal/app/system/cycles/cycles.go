// Package cycles sequences load-filter-render cycles per visitor.
//
// A visitor typing into the search box fires one request per change. Each
// request begins a cycle; beginning a cycle cancels the visitor's previous
// in-flight cycle and marks it stale, so a slow early response can never
// overwrite a newer one. It is safe for concurrent use.
package cycles

import (
	"context"
	"sync"
)

// Coordinator tracks the newest cycle for each key.
type Coordinator struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	seq    uint64
	cancel context.CancelFunc
	active int // tickets not yet Done
}

// Ticket represents one cycle. Always call Done when the cycle finishes.
type Ticket struct {
	c      *Coordinator
	key    string
	seq    uint64
	cancel context.CancelFunc
	once   sync.Once
}

// New creates an empty Coordinator.
func New() *Coordinator {
	return &Coordinator{entries: make(map[string]*entry)}
}

// Begin starts a new cycle for key. The returned context is derived from
// ctx and is cancelled when a newer cycle begins for the same key, when
// the ticket is Done, or when ctx ends. An empty key disables sequencing:
// the ticket is always current.
func (c *Coordinator) Begin(ctx context.Context, key string) (context.Context, *Ticket) {
	cctx, cancel := context.WithCancel(ctx)
	if key == "" {
		return cctx, &Ticket{cancel: cancel}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	if e.cancel != nil {
		e.cancel()
	}
	e.seq++
	e.cancel = cancel
	e.active++

	return cctx, &Ticket{c: c, key: key, seq: e.seq, cancel: cancel}
}

// Current reports whether t is still the newest cycle for its key.
func (t *Ticket) Current() bool {
	if t.c == nil {
		return true
	}
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	e, ok := t.c.entries[t.key]
	return ok && e.seq == t.seq
}

// Seq returns the ticket's sequence number for its key (0 when unsequenced).
func (t *Ticket) Seq() uint64 { return t.seq }

// Done releases the ticket and cancels its context. The key's entry is
// dropped once no tickets for it remain. Safe to call more than once.
func (t *Ticket) Done() {
	t.once.Do(func() {
		t.cancel()
		if t.c == nil {
			return
		}
		t.c.mu.Lock()
		defer t.c.mu.Unlock()
		e, ok := t.c.entries[t.key]
		if !ok {
			return
		}
		e.active--
		if e.seq == t.seq {
			e.cancel = nil
		}
		if e.active <= 0 {
			delete(t.c.entries, t.key)
		}
	})
}

// Len returns the number of keys with cycles in flight.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
