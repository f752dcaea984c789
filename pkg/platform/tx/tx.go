package tx

import (
	"context"
	"database/sql"
	"sync"
)

type txCtxKey struct{}

var txKey = txCtxKey{}

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// Hooks collects callbacks to run once the enclosing unit of work commits.
// Realtime publishes are deferred through it so a recipient never sees an
// alert referencing data that is not yet visible.
type Hooks struct {
	mu sync.Mutex
	fn []func()
}

type hooksCtxKey struct{}

var hooksKey = hooksCtxKey{}

// WithHooks attaches a fresh hook collector to the context. The caller that
// owns the transaction boundary is responsible for calling Commit.
func WithHooks(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, hooksKey, h), h
}

// OnCommit registers fn to run after commit. When no hook collector is in
// the context (no transaction in flight) fn runs immediately.
func OnCommit(ctx context.Context, fn func()) {
	h, ok := ctx.Value(hooksKey).(*Hooks)
	if !ok {
		fn()
		return
	}
	h.mu.Lock()
	h.fn = append(h.fn, fn)
	h.mu.Unlock()
}

// Commit runs all registered callbacks in registration order and clears them.
func (h *Hooks) Commit() {
	h.mu.Lock()
	fns := h.fn
	h.fn = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Discard drops registered callbacks without running them, for rolled-back
// units of work.
func (h *Hooks) Discard() {
	h.mu.Lock()
	h.fn = nil
	h.mu.Unlock()
}
