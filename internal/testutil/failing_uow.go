package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/db"
)

// FailingUoW runs real transactions but makes one write fail, so tests can
// check that a use case leaves no partial state behind.
//
// A write fails when its SQL contains Match, or when it is the FailOn-th
// ExecContext of the transaction (counted from 1). Reads are never failed.
type FailingUoW struct {
	DB     *sql.DB
	Match  string
	FailOn int
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingTx{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow   *FailingUoW
	execs int
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execs++
	if f.execs == f.uow.FailOn || (f.uow.Match != "" && strings.Contains(query, f.uow.Match)) {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
