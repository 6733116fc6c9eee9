package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/repository"
)

// fakeStore is an in-memory ledger with the same conditional-update
// semantics as the SQL store, including transaction rollback.
type fakeStore struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	types    map[string]*domain.VoucherType
	entries  map[string]*domain.UserVoucherEntry
	spinLogs []repository.InsertSpinLogParams

	failNext error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		types:   map[string]*domain.VoucherType{},
		entries: map[string]*domain.UserVoucherEntry{},
	}
}

func (f *fakeStore) fail() error {
	if err := f.failNext; err != nil {
		f.failNext = nil
		return err
	}
	return nil
}

func (f *fakeStore) snapshot() (map[string]*domain.VoucherType, map[string]*domain.UserVoucherEntry) {
	types := make(map[string]*domain.VoucherType, len(f.types))
	for id, vt := range f.types {
		cp := *vt
		types[id] = &cp
	}
	entries := make(map[string]*domain.UserVoucherEntry, len(f.entries))
	for id, e := range f.entries {
		cp := *e
		entries[id] = &cp
	}
	return types, entries
}

// ExecTx serializes transactions on txMu, so a rollback restores a
// snapshot no other transaction has written past.
func (f *fakeStore) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	types, entries := f.snapshot()
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.types, f.entries = types, entries
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return 0, err
	}

	var reclaimed int64
	for _, e := range f.entries {
		if e.Status == domain.StatusActive && !e.ExpiresAt.After(now) {
			e.Status = domain.StatusExpired
			f.restock(e.VoucherTypeID, 1)
			reclaimed++
		}
	}
	return reclaimed, nil
}

func (f *fakeStore) restock(voucherTypeID string, n int) {
	vt := f.types[voucherTypeID]
	if vt == nil {
		return
	}
	vt.RemainingQty += n
	if vt.RemainingQty > vt.TotalQty {
		vt.RemainingQty = vt.TotalQty
	}
}

func (f *fakeStore) UpsertVoucherType(ctx context.Context, arg repository.UpsertVoucherTypeParams) (domain.VoucherType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return domain.VoucherType{}, err
	}

	vt, ok := f.types[arg.ID]
	if !ok {
		vt = &domain.VoucherType{
			ID:           arg.ID,
			TotalQty:     arg.TotalQty,
			RemainingQty: arg.TotalQty,
			CreatedAt:    arg.Now,
		}
		f.types[arg.ID] = vt
	}
	vt.MerchantName = arg.MerchantName
	if arg.MerchantLogo != "" {
		vt.MerchantLogo = arg.MerchantLogo
	}
	vt.Value = arg.Value
	vt.MinSpend = arg.MinSpend
	vt.UpdatedAt = arg.Now
	return *vt, nil
}

func (f *fakeStore) GetVoucherType(ctx context.Context, id string) (domain.VoucherType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vt, ok := f.types[id]
	if !ok {
		return domain.VoucherType{}, pgx.ErrNoRows
	}
	return *vt, nil
}

func (f *fakeStore) HasActiveEntry(ctx context.Context, userID, voucherTypeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.UserID == userID && e.VoucherTypeID == voucherTypeID && e.Status == domain.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) InsertActiveEntry(ctx context.Context, arg repository.InsertActiveEntryParams) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return 0, err
	}

	for _, e := range f.entries {
		if e.UserID == arg.UserID && e.VoucherTypeID == arg.VoucherTypeID && e.Status == domain.StatusActive {
			return 0, nil
		}
	}
	f.entries[arg.ID] = &domain.UserVoucherEntry{
		ID:            arg.ID,
		UserID:        arg.UserID,
		VoucherTypeID: arg.VoucherTypeID,
		Status:        domain.StatusActive,
		IssuedAt:      arg.IssuedAt,
		ExpiresAt:     arg.ExpiresAt,
	}
	return 1, nil
}

func (f *fakeStore) DecrementRemaining(ctx context.Context, voucherTypeID string, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return 0, err
	}

	vt, ok := f.types[voucherTypeID]
	if !ok || vt.RemainingQty <= 0 {
		return 0, pgx.ErrNoRows
	}
	vt.RemainingQty--
	return vt.RemainingQty, nil
}

func (f *fakeStore) GetEntry(ctx context.Context, id string) (domain.UserVoucherEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return domain.UserVoucherEntry{}, pgx.ErrNoRows
	}
	out := *e
	if vt, ok := f.types[e.VoucherTypeID]; ok {
		out.MerchantName = vt.MerchantName
		out.MerchantLogo = vt.MerchantLogo
		out.Value = vt.Value
		out.MinSpend = vt.MinSpend
	}
	return out, nil
}

func (f *fakeStore) ReleaseEntry(ctx context.Context, id, userID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok || e.UserID != userID || e.Status != domain.StatusActive {
		return 0, nil
	}
	e.Status = domain.StatusRemoved
	removedAt := now
	e.RemovedAt = &removedAt
	f.restock(e.VoucherTypeID, 1)
	return 1, nil
}

func (f *fakeStore) RedeemEntry(ctx context.Context, id, userID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok || e.UserID != userID || e.Status != domain.StatusActive {
		return 0, nil
	}
	e.Status = domain.StatusUsed
	usedAt := now
	e.UsedAt = &usedAt
	return 1, nil
}

func (f *fakeStore) RemoveTransferDuplicates(ctx context.Context, guestID, destID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return 0, err
	}

	destHeld := map[string]bool{}
	for _, e := range f.entries {
		if e.UserID == destID && e.Status == domain.StatusActive {
			destHeld[e.VoucherTypeID] = true
		}
	}

	var deduped int64
	for _, e := range f.entries {
		if e.UserID == guestID && e.Status == domain.StatusActive && destHeld[e.VoucherTypeID] {
			e.Status = domain.StatusRemoved
			removedAt := now
			e.RemovedAt = &removedAt
			f.restock(e.VoucherTypeID, 1)
			deduped++
		}
	}
	return deduped, nil
}

func (f *fakeStore) ReassignActiveEntries(ctx context.Context, guestID, destID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return 0, err
	}

	var moved int64
	for _, e := range f.entries {
		if e.UserID == guestID && e.Status == domain.StatusActive {
			e.UserID = destID
			moved++
		}
	}
	return moved, nil
}

func (f *fakeStore) ListActiveEntries(ctx context.Context, userID string) ([]domain.UserVoucherEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.UserVoucherEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Status == domain.StatusActive {
			cp := *e
			if vt, ok := f.types[e.VoucherTypeID]; ok {
				cp.MerchantName = vt.MerchantName
				cp.MerchantLogo = vt.MerchantLogo
				cp.Value = vt.Value
				cp.MinSpend = vt.MinSpend
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (f *fakeStore) InsertSpinLog(ctx context.Context, arg repository.InsertSpinLogParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return err
	}
	f.spinLogs = append(f.spinLogs, arg)
	return nil
}

var _ repository.Store = (*fakeStore)(nil)
