package contact

import (
	"context"
	"fmt"
)

// State of the per-visitor submission lock. The only transition is
// NotSubmitted -> Submitted.
type State int

const (
	NotSubmitted State = iota
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "not_submitted"
}

// LockStore persists lock states by client key. Get returns NotSubmitted for
// unknown keys.
type LockStore interface {
	Get(ctx context.Context, key string) (State, error)
	Set(ctx context.Context, key string, state State) error
}

type Lock struct {
	store LockStore
}

func NewLock(store LockStore) *Lock {
	return &Lock{store: store}
}

func (l *Lock) Check(ctx context.Context, clientID string) (State, error) {
	state, err := l.store.Get(ctx, clientID)
	if err != nil {
		return NotSubmitted, fmt.Errorf("read submission lock: %w", err)
	}
	return state, nil
}

// MarkSubmitted closes the lock. Closing a closed lock is a no-op and there
// is no way to reopen it.
func (l *Lock) MarkSubmitted(ctx context.Context, clientID string) error {
	current, err := l.Check(ctx, clientID)
	if err != nil {
		return err
	}
	if current == Submitted {
		return nil
	}
	if err := l.store.Set(ctx, clientID, Submitted); err != nil {
		return fmt.Errorf("write submission lock: %w", err)
	}
	return nil
}
