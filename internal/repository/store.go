package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wheeleat/voucher-service/internal/domain"
)

// Querier is the query surface available both on the pool and inside a
// transaction. Every mutation that guards an invariant is a single
// conditional statement, so the store, not the application, provides the
// critical section.
type Querier interface {
	ReclaimExpired(ctx context.Context, now time.Time) (int64, error)
	UpsertVoucherType(ctx context.Context, arg UpsertVoucherTypeParams) (domain.VoucherType, error)
	GetVoucherType(ctx context.Context, id string) (domain.VoucherType, error)
	HasActiveEntry(ctx context.Context, userID, voucherTypeID string) (bool, error)
	InsertActiveEntry(ctx context.Context, arg InsertActiveEntryParams) (int64, error)
	DecrementRemaining(ctx context.Context, voucherTypeID string, now time.Time) (int, error)
	GetEntry(ctx context.Context, id string) (domain.UserVoucherEntry, error)
	ReleaseEntry(ctx context.Context, id, userID string, now time.Time) (int64, error)
	RedeemEntry(ctx context.Context, id, userID string, now time.Time) (int64, error)
	RemoveTransferDuplicates(ctx context.Context, guestID, destID string, now time.Time) (int64, error)
	ReassignActiveEntries(ctx context.Context, guestID, destID string, now time.Time) (int64, error)
	ListActiveEntries(ctx context.Context, userID string) ([]domain.UserVoucherEntry, error)
	InsertSpinLog(ctx context.Context, arg InsertSpinLogParams) error
}

type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type store struct {
	pool *pgxpool.Pool
	*Queries
}

func New(pool *pgxpool.Pool) Store {
	return &store{
		pool:    pool,
		Queries: NewQueries(pool),
	}
}

func (s *store) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	q := s.Queries.WithTx(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
