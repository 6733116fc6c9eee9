package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wheeleat/voucher-service/internal/domain"
)

// reclaimExpired restocks each voucher type by the number of rows this
// statement flipped, never by a separately read count, so concurrent
// sweeps cannot double-restock the same entry.
const reclaimExpired = `
WITH expired AS (
    UPDATE user_vouchers
       SET status = 'expired', updated_at = $1
     WHERE status = 'active' AND expires_at <= $1
    RETURNING voucher_type_id
), counts AS (
    SELECT voucher_type_id, COUNT(*) AS n
      FROM expired
     GROUP BY voucher_type_id
), restocked AS (
    UPDATE vouchers v
       SET remaining_qty = LEAST(v.total_qty, v.remaining_qty + c.n),
           updated_at = $1
      FROM counts c
     WHERE v.id = c.voucher_type_id
    RETURNING v.id
)
SELECT COALESCE(SUM(n), 0) FROM counts
`

func (q *Queries) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	var reclaimed int64
	err := q.db.QueryRow(ctx, reclaimExpired, now).Scan(&reclaimed)
	return reclaimed, err
}

const upsertVoucherType = `
INSERT INTO vouchers (id, merchant_name, merchant_logo, value_rm, min_spend_rm,
                      total_qty, remaining_qty, created_at, updated_at)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $6, $7, $7)
ON CONFLICT (id) DO UPDATE SET
    merchant_name = EXCLUDED.merchant_name,
    merchant_logo = COALESCE(EXCLUDED.merchant_logo, vouchers.merchant_logo),
    value_rm = EXCLUDED.value_rm,
    min_spend_rm = EXCLUDED.min_spend_rm,
    updated_at = EXCLUDED.updated_at
RETURNING id, merchant_name, COALESCE(merchant_logo, ''), value_rm, min_spend_rm,
          total_qty, remaining_qty, created_at, updated_at
`

type UpsertVoucherTypeParams struct {
	ID           string
	MerchantName string
	MerchantLogo string
	Value        decimal.Decimal
	MinSpend     decimal.Decimal
	TotalQty     int
	Now          time.Time
}

func (q *Queries) UpsertVoucherType(ctx context.Context, arg UpsertVoucherTypeParams) (domain.VoucherType, error) {
	row := q.db.QueryRow(ctx, upsertVoucherType,
		arg.ID, arg.MerchantName, arg.MerchantLogo, arg.Value, arg.MinSpend, arg.TotalQty, arg.Now)
	return scanVoucherType(row)
}

const getVoucherType = `
SELECT id, merchant_name, COALESCE(merchant_logo, ''), value_rm, min_spend_rm,
       total_qty, remaining_qty, created_at, updated_at
  FROM vouchers
 WHERE id = $1
`

func (q *Queries) GetVoucherType(ctx context.Context, id string) (domain.VoucherType, error) {
	return scanVoucherType(q.db.QueryRow(ctx, getVoucherType, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoucherType(row rowScanner) (domain.VoucherType, error) {
	var vt domain.VoucherType
	err := row.Scan(&vt.ID, &vt.MerchantName, &vt.MerchantLogo, &vt.Value, &vt.MinSpend,
		&vt.TotalQty, &vt.RemainingQty, &vt.CreatedAt, &vt.UpdatedAt)
	return vt, err
}

const hasActiveEntry = `
SELECT EXISTS (
    SELECT 1 FROM user_vouchers
     WHERE user_id = $1 AND voucher_type_id = $2 AND status = 'active'
)
`

func (q *Queries) HasActiveEntry(ctx context.Context, userID, voucherTypeID string) (bool, error) {
	var held bool
	err := q.db.QueryRow(ctx, hasActiveEntry, userID, voucherTypeID).Scan(&held)
	return held, err
}

// insertActiveEntry conflicts against the partial unique index
// user_vouchers_one_active; zero rows affected means a concurrent or
// earlier claim already holds this merchant for the user.
const insertActiveEntry = `
INSERT INTO user_vouchers (id, user_id, voucher_type_id, status, issued_at, expires_at, updated_at)
VALUES ($1, $2, $3, 'active', $4, $5, $4)
ON CONFLICT (user_id, voucher_type_id) WHERE status = 'active' DO NOTHING
`

type InsertActiveEntryParams struct {
	ID            string
	UserID        string
	VoucherTypeID string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

func (q *Queries) InsertActiveEntry(ctx context.Context, arg InsertActiveEntryParams) (int64, error) {
	tag, err := q.db.Exec(ctx, insertActiveEntry,
		arg.ID, arg.UserID, arg.VoucherTypeID, arg.IssuedAt, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const decrementRemaining = `
UPDATE vouchers
   SET remaining_qty = remaining_qty - 1, updated_at = $2
 WHERE id = $1 AND remaining_qty > 0
RETURNING remaining_qty
`

// DecrementRemaining returns pgx.ErrNoRows when there is no stock left.
func (q *Queries) DecrementRemaining(ctx context.Context, voucherTypeID string, now time.Time) (int, error) {
	var remaining int
	err := q.db.QueryRow(ctx, decrementRemaining, voucherTypeID, now).Scan(&remaining)
	return remaining, err
}

const getEntry = `
SELECT uv.id, uv.user_id, uv.voucher_type_id, uv.status, uv.issued_at, uv.expires_at,
       uv.removed_at, uv.used_at,
       v.merchant_name, COALESCE(v.merchant_logo, ''), v.value_rm, v.min_spend_rm
  FROM user_vouchers uv
  JOIN vouchers v ON v.id = uv.voucher_type_id
 WHERE uv.id = $1
`

func (q *Queries) GetEntry(ctx context.Context, id string) (domain.UserVoucherEntry, error) {
	return scanEntry(q.db.QueryRow(ctx, getEntry, id))
}

func scanEntry(row rowScanner) (domain.UserVoucherEntry, error) {
	var e domain.UserVoucherEntry
	err := row.Scan(&e.ID, &e.UserID, &e.VoucherTypeID, &e.Status, &e.IssuedAt, &e.ExpiresAt,
		&e.RemovedAt, &e.UsedAt,
		&e.MerchantName, &e.MerchantLogo, &e.Value, &e.MinSpend)
	return e, err
}

// releaseEntry restocks in the same statement that flips the row, so a
// concurrently expired entry can never be restocked twice.
const releaseEntry = `
WITH released AS (
    UPDATE user_vouchers
       SET status = 'removed', removed_at = $3, updated_at = $3
     WHERE id = $1 AND user_id = $2 AND status = 'active'
    RETURNING voucher_type_id
), restocked AS (
    UPDATE vouchers v
       SET remaining_qty = LEAST(v.total_qty, v.remaining_qty + 1),
           updated_at = $3
      FROM released r
     WHERE v.id = r.voucher_type_id
    RETURNING v.id
)
SELECT COUNT(*) FROM released
`

func (q *Queries) ReleaseEntry(ctx context.Context, id, userID string, now time.Time) (int64, error) {
	var released int64
	err := q.db.QueryRow(ctx, releaseEntry, id, userID, now).Scan(&released)
	return released, err
}

const redeemEntry = `
UPDATE user_vouchers
   SET status = 'used', used_at = $3, updated_at = $3
 WHERE id = $1 AND user_id = $2 AND status = 'active'
`

func (q *Queries) RedeemEntry(ctx context.Context, id, userID string, now time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, redeemEntry, id, userID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// removeTransferDuplicates resolves guest entries whose merchant the
// destination user already actively holds: the guest copy is removed and
// its unit returned to stock.
const removeTransferDuplicates = `
WITH dup AS (
    UPDATE user_vouchers g
       SET status = 'removed', removed_at = $3, updated_at = $3
     WHERE g.user_id = $1 AND g.status = 'active'
       AND EXISTS (
           SELECT 1 FROM user_vouchers d
            WHERE d.user_id = $2
              AND d.voucher_type_id = g.voucher_type_id
              AND d.status = 'active'
       )
    RETURNING g.voucher_type_id
), counts AS (
    SELECT voucher_type_id, COUNT(*) AS n
      FROM dup
     GROUP BY voucher_type_id
), restocked AS (
    UPDATE vouchers v
       SET remaining_qty = LEAST(v.total_qty, v.remaining_qty + c.n),
           updated_at = $3
      FROM counts c
     WHERE v.id = c.voucher_type_id
    RETURNING v.id
)
SELECT COALESCE(SUM(n), 0) FROM counts
`

func (q *Queries) RemoveTransferDuplicates(ctx context.Context, guestID, destID string, now time.Time) (int64, error) {
	var deduped int64
	err := q.db.QueryRow(ctx, removeTransferDuplicates, guestID, destID, now).Scan(&deduped)
	return deduped, err
}

const reassignActiveEntries = `
UPDATE user_vouchers
   SET user_id = $2, updated_at = $3
 WHERE user_id = $1 AND status = 'active'
`

func (q *Queries) ReassignActiveEntries(ctx context.Context, guestID, destID string, now time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, reassignActiveEntries, guestID, destID, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listActiveEntries = `
SELECT uv.id, uv.user_id, uv.voucher_type_id, uv.status, uv.issued_at, uv.expires_at,
       uv.removed_at, uv.used_at,
       v.merchant_name, COALESCE(v.merchant_logo, ''), v.value_rm, v.min_spend_rm
  FROM user_vouchers uv
  JOIN vouchers v ON v.id = uv.voucher_type_id
 WHERE uv.user_id = $1 AND uv.status = 'active'
 ORDER BY uv.issued_at DESC
`

func (q *Queries) ListActiveEntries(ctx context.Context, userID string) ([]domain.UserVoucherEntry, error) {
	rows, err := q.db.Query(ctx, listActiveEntries, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.UserVoucherEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const insertSpinLog = `
INSERT INTO spin_logs (id, restaurant_name, restaurant_unit, restaurant_floor,
                       category, mall_id, selected_categories, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertSpinLogParams struct {
	ID                 string
	RestaurantName     string
	RestaurantUnit     string
	RestaurantFloor    string
	Category           string
	MallID             string
	SelectedCategories string
	Now                time.Time
}

func (q *Queries) InsertSpinLog(ctx context.Context, arg InsertSpinLogParams) error {
	_, err := q.db.Exec(ctx, insertSpinLog,
		arg.ID, arg.RestaurantName, arg.RestaurantUnit, arg.RestaurantFloor,
		arg.Category, arg.MallID, arg.SelectedCategories, arg.Now)
	return err
}
