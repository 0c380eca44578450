package repositories

import (
	"context"
	"sync"
)

// Entity is satisfied by every stored model. Clone must return a copy that
// shares no pointers or slices with the receiver.
type Entity[T any] interface {
	GetID() string
	Clone() T
}

/*
BaseMemRepo is one in-memory collection keyed by id. It gives you:

	• GetByID / List / ListWhere   (copies, insertion order)
	• Insert(ctx, build)           (build sees the 1-based sequence number)
	• UpdateWith(ctx, id, mutate)  (read-mutate-write under one lock)

Values are deep-copied in and out through Clone, so callers never hold a
reference into the map, not even through a pointer field.
*/
type BaseMemRepo[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewBaseMemRepo[T Entity[T]]() *BaseMemRepo[T] {
	return &BaseMemRepo[T]{items: make(map[string]T)}
}

// -------------------------- reads --------------------------

func (b *BaseMemRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.items[id]
	if !ok {
		return nil, nil
	}
	v = v.Clone()
	return &v, nil
}

func (b *BaseMemRepo[T]) List(ctx context.Context) ([]*T, error) {
	return b.ListWhere(ctx, nil)
}

// ListWhere returns the records for which keep reports true. A nil keep
// matches everything.
func (b *BaseMemRepo[T]) ListWhere(ctx context.Context, keep func(*T) bool) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*T, 0, len(b.order))
	for _, id := range b.order {
		v := b.items[id].Clone()
		if keep != nil && !keep(&v) {
			continue
		}
		out = append(out, &v)
	}
	return out, nil
}

func (b *BaseMemRepo[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// -------------------------- writes --------------------------

// Insert stores the value produced by build. seq is the collection size
// plus one, observed under the write lock, so two concurrent inserts never
// see the same seq.
func (b *BaseMemRepo[T]) Insert(ctx context.Context, build func(seq int) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	v, err := build(len(b.items) + 1)
	if err != nil {
		return zero, err
	}
	id := v.GetID()
	if _, exists := b.items[id]; exists {
		return zero, ErrDuplicateID
	}
	b.items[id] = v.Clone()
	b.order = append(b.order, id)
	return v, nil
}

// UpdateWith applies mutate to a copy of the stored record and writes it
// back only if mutate succeeds. The id cannot be changed.
func (b *BaseMemRepo[T]) UpdateWith(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	stored, ok := b.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	current := stored.Clone()
	if err := mutate(&current); err != nil {
		return nil, err
	}
	if current.GetID() != id {
		return nil, ErrImmutableID
	}
	b.items[id] = current
	out := current.Clone()
	return &out, nil
}

// scan walks the collection while the read lock is held. fn sees the stored
// values and must not retain or modify them.
func (b *BaseMemRepo[T]) scan(fn func(T) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, id := range b.order {
		if !fn(b.items[id]) {
			return
		}
	}
}
