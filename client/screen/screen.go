// Package screen implements the observable state machines behind the app's
// list screens: canonical collection loading, optimistic toggles, and the
// derived filter/sort views. Rendering is the mobile shell's concern; this
// package only owns state.
package screen

import (
	"context"
	"sync"
)

type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// collection owns a screen's canonical entity list together with its
// load/refresh/error state and the per-entity toggle markers. Each screen
// instance holds its own collection; nothing is shared across screens.
type collection[T any] struct {
	fetch func(ctx context.Context) ([]T, error)
	id    func(T) int

	mu         sync.Mutex
	phase      Phase
	refreshing bool
	err        *Descriptor
	items      []T
	inflight   map[int]struct{}
}

func newCollection[T any](fetch func(ctx context.Context) ([]T, error), id func(T) int) *collection[T] {
	return &collection[T]{
		fetch:    fetch,
		id:       id,
		phase:    PhaseLoading,
		inflight: map[int]struct{}{},
	}
}

// load fetches the canonical list. On success the previous list is replaced
// wholesale; on failure it is left untouched and the classified error becomes
// the current error state. Overlapping loads are not de-duplicated, the last
// response wins.
func (c *collection[T]) load(ctx context.Context, showSpinner bool) error {
	c.mu.Lock()
	if showSpinner {
		c.phase = PhaseLoading
	}
	c.err = nil
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshing = false
	if err != nil {
		desc := Classify(err)
		c.err = &desc
		c.phase = PhaseError
		return desc
	}
	c.items = items
	c.phase = PhaseReady
	return nil
}

func (c *collection[T]) refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshing = true
	c.mu.Unlock()
	return c.load(ctx, false)
}

// toggle applies flip to the entity immediately, then issues the backend
// mutation via send. A failed send leaves the optimistic state in place; the
// caller surfaces the returned Descriptor with a retry prompt, and retrying
// calls toggle again. The in-flight marker is for disabling the entity's
// control in the UI; toggle itself does not suppress concurrent calls.
// An id no longer in the list (a concurrent refresh removed it) is a no-op.
func (c *collection[T]) toggle(ctx context.Context, id int, flip func(*T), send func(context.Context) error) error {
	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.id(c.items[i]) == id {
			flip(&c.items[i])
			found = true
			break
		}
	}
	if !found {
		c.mu.Unlock()
		return nil
	}
	c.inflight[id] = struct{}{}
	c.mu.Unlock()

	err := send(ctx)

	c.mu.Lock()
	delete(c.inflight, id)
	c.mu.Unlock()

	if err != nil {
		return Classify(err)
	}
	return nil
}

func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *collection[T]) currentPhase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *collection[T]) isRefreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

func (c *collection[T]) currentErr() *Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return nil
	}
	desc := *c.err
	return &desc
}

func (c *collection[T]) pending(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[id]
	return ok
}
