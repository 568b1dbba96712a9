package app

import (
	"slices"
	"sync"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// ref provides thread-safe access to a mutable value.
type ref[T any] struct {
	mu  sync.RWMutex
	val T
}

func newRef[T any](val T) *ref[T] {
	return &ref[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (r *ref[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value.
func (r *ref[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// compareAndSet replaces the value with next only if it currently equals
// old, and reports whether it did.
func compareAndSet[T comparable](r *ref[T], old, next T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.val != old {
		return false
	}
	r.val = next
	return true
}

// directory is the fixed set of users tasks can be assigned to.
type directory struct {
	users []board.User
}

// DefaultUsers is the assignee directory the service starts with.
func DefaultUsers() []board.User {
	return []board.User{
		{ID: "user1", Name: "John Doe", Email: "john@example.com", Role: "admin"},
		{ID: "user2", Name: "Jane Smith", Email: "jane@example.com", Role: "developer"},
		{ID: "user3", Name: "Bob Johnson", Email: "bob@example.com", Role: "designer"},
		{ID: "user4", Name: "Alice Williams", Email: "alice@example.com", Role: "product"},
	}
}

func (d directory) list() []board.User {
	return slices.Clone(d.users)
}

func (d directory) find(id string) (board.User, error) {
	i := slices.IndexFunc(d.users, func(u board.User) bool { return u.ID == id })
	if i < 0 {
		return board.User{}, domain.NotFoundError("user", id)
	}
	return d.users[i], nil
}
