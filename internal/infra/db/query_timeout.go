package db

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const cancelKey = "budget:query_cancel"

// queryTimeout is a GORM plugin that bounds every statement whose context has no deadline.
// Writes release the deadline only after the implicit transaction commits.
type queryTimeout struct {
	timeout time.Duration
}

func newQueryTimeout(timeout time.Duration) *queryTimeout {
	return &queryTimeout{timeout: timeout}
}

// Name implements gorm.Plugin.
func (p *queryTimeout) Name() string {
	return "budget:query_timeout"
}

// Initialize implements gorm.Plugin.
func (p *queryTimeout) Initialize(db *gorm.DB) error {
	if p.timeout <= 0 {
		return nil
	}

	cb := db.Callback()
	hooks := []struct {
		before func(name string) error
		after  func(name string) error
	}{
		{
			before: func(name string) error { return cb.Create().Before("gorm:begin_transaction").Register(name, p.start) },
			after:  func(name string) error { return cb.Create().After("gorm:commit_or_rollback_transaction").Register(name, p.stop) },
		},
		{
			before: func(name string) error { return cb.Query().Before("gorm:query").Register(name, p.start) },
			after:  func(name string) error { return cb.Query().After("gorm:query").Register(name, p.stop) },
		},
		{
			before: func(name string) error { return cb.Update().Before("gorm:begin_transaction").Register(name, p.start) },
			after:  func(name string) error { return cb.Update().After("gorm:commit_or_rollback_transaction").Register(name, p.stop) },
		},
		{
			before: func(name string) error { return cb.Delete().Before("gorm:begin_transaction").Register(name, p.start) },
			after:  func(name string) error { return cb.Delete().After("gorm:commit_or_rollback_transaction").Register(name, p.stop) },
		},
	}

	for _, h := range hooks {
		if err := h.before(p.Name() + ":start"); err != nil {
			return err
		}
		if err := h.after(p.Name() + ":stop"); err != nil {
			return err
		}
	}
	return nil
}

func (p *queryTimeout) start(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	db.Statement.Context = ctx
	db.InstanceSet(cancelKey, cancel)
}

func (p *queryTimeout) stop(db *gorm.DB) {
	if v, ok := db.InstanceGet(cancelKey); ok {
		if cancel, ok := v.(context.CancelFunc); ok {
			cancel()
		}
	}
}
