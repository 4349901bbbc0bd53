package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/asilbek-0311/arc-omnichan-yield/pkg/apperror"
)

// guard serialises the entry points of one vault or relay instance and turns
// nested calls into an error instead of a deadlock. A call is nested when its
// context descends from one that already holds the guard.
type guard struct {
	name string
	mu   sync.Mutex
}

type guardKey struct{ g *guard }

func newGuard(name string) *guard {
	return &guard{name: name}
}

// enter acquires the guard for a mutating operation. The returned context
// marks the holder and must be passed to every downstream call so callbacks
// are recognised as reentrant.
func (g *guard) enter(ctx context.Context) (context.Context, func(), error) {
	if g.held(ctx) {
		return ctx, func() {}, apperror.ErrReentrantCall(g.name)
	}
	g.mu.Lock()
	return context.WithValue(ctx, guardKey{g}, struct{}{}), g.mu.Unlock, nil
}

// view acquires the guard for a read unless ctx already holds it, in which
// case the caller is inside an operation and reads its own state.
func (g *guard) view(ctx context.Context) func() {
	if g.held(ctx) {
		return func() {}
	}
	g.mu.Lock()
	return g.mu.Unlock
}

func (g *guard) held(ctx context.Context) bool {
	return ctx.Value(guardKey{g}) != nil
}

// undoLog collects compensations for steps already applied to external
// ledgers so a failed operation can be unwound in reverse order.
type undoLog struct {
	steps []undoStep
}

type undoStep struct {
	name string
	fn   func() error
}

func (u *undoLog) push(name string, fn func() error) {
	u.steps = append(u.steps, undoStep{name: name, fn: fn})
}

// rollback runs every compensation and returns cause joined with any
// compensation failures.
func (u *undoLog) rollback(cause error) error {
	errs := []error{cause}
	for i := len(u.steps) - 1; i >= 0; i-- {
		if err := u.steps[i].fn(); err != nil {
			errs = append(errs, apperror.InternalError(fmt.Errorf("undo %s: %w", u.steps[i].name, err)))
		}
	}
	u.steps = nil
	if len(errs) == 1 {
		return cause
	}
	return errors.Join(errs...)
}
