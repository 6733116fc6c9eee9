package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/repository"
)

// VoucherConfig carries the deployment's offer terms.
type VoucherConfig struct {
	TTL             time.Duration
	TotalQty        int
	DefaultValue    decimal.Decimal
	DefaultMinSpend decimal.Decimal
}

type ClaimParams struct {
	User         domain.Identity
	MerchantName string
	MerchantLogo string
	Value        decimal.Decimal
	MinSpend     decimal.Decimal
}

// VoucherService holds no state of its own; every invariant is re-derived
// from the store on each call.
type VoucherService struct {
	store repository.Store
	cfg   VoucherConfig
	now   func() time.Time
}

func NewVoucherService(store repository.Store, cfg VoucherConfig) *VoucherService {
	return &VoucherService{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Claim attempts to issue one voucher for the merchant. Stock and the
// one-active-per-merchant rule are both enforced inside a single store
// transaction; a losing claimant gets a structured rejection, never a
// partial mutation.
func (s *VoucherService) Claim(ctx context.Context, p ClaimParams) (*domain.ClaimResult, error) {
	if p.User.ID == "" || p.MerchantName == "" {
		return nil, domain.ErrInvalidArgument
	}
	if p.User.IsAnonymous() {
		return &domain.ClaimResult{Won: false, Reason: domain.ReasonGuestRejected}, nil
	}

	value := p.Value
	if value.Sign() <= 0 {
		value = s.cfg.DefaultValue
	}
	minSpend := p.MinSpend
	if minSpend.Sign() <= 0 {
		minSpend = s.cfg.DefaultMinSpend
	}

	now := s.now()
	if _, err := s.store.ReclaimExpired(ctx, now); err != nil {
		return nil, storeErr(err)
	}

	vt, err := s.store.UpsertVoucherType(ctx, repository.UpsertVoucherTypeParams{
		ID:           domain.VoucherTypeID(p.MerchantName),
		MerchantName: p.MerchantName,
		MerchantLogo: p.MerchantLogo,
		Value:        value,
		MinSpend:     minSpend,
		TotalQty:     s.cfg.TotalQty,
		Now:          now,
	})
	if err != nil {
		return nil, storeErr(err)
	}

	held, err := s.store.HasActiveEntry(ctx, p.User.ID, vt.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if held {
		return &domain.ClaimResult{
			Won:          false,
			Reason:       domain.ReasonAlreadyHeld,
			RemainingQty: vt.RemainingQty,
		}, nil
	}

	entry := domain.UserVoucherEntry{
		ID:            uuid.New().String(),
		UserID:        p.User.ID,
		VoucherTypeID: vt.ID,
		Status:        domain.StatusActive,
		IssuedAt:      now,
		ExpiresAt:     now.Add(s.cfg.TTL),
		MerchantName:  vt.MerchantName,
		MerchantLogo:  vt.MerchantLogo,
		Value:         vt.Value,
		MinSpend:      vt.MinSpend,
	}

	var remaining int
	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		inserted, err := q.InsertActiveEntry(ctx, repository.InsertActiveEntryParams{
			ID:            entry.ID,
			UserID:        entry.UserID,
			VoucherTypeID: entry.VoucherTypeID,
			IssuedAt:      entry.IssuedAt,
			ExpiresAt:     entry.ExpiresAt,
		})
		if err != nil {
			return err
		}
		if inserted == 0 {
			// Lost a same-user race against the partial unique index.
			return domain.ErrAlreadyHeld
		}

		remaining, err = q.DecrementRemaining(ctx, entry.VoucherTypeID, now)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSoldOut
		}
		return err
	})

	switch {
	case err == nil:
		return &domain.ClaimResult{Won: true, RemainingQty: remaining, Entry: &entry}, nil
	case errors.Is(err, domain.ErrAlreadyHeld):
		return &domain.ClaimResult{
			Won:          false,
			Reason:       domain.ReasonAlreadyHeld,
			RemainingQty: vt.RemainingQty,
		}, nil
	case errors.Is(err, domain.ErrSoldOut):
		return &domain.ClaimResult{
			Won:          false,
			Reason:       domain.ReasonSoldOut,
			RemainingQty: s.currentRemaining(ctx, vt.ID),
		}, nil
	default:
		return nil, storeErr(err)
	}
}

func (s *VoucherService) currentRemaining(ctx context.Context, voucherTypeID string) int {
	vt, err := s.store.GetVoucherType(ctx, voucherTypeID)
	if err != nil {
		return 0
	}
	return vt.RemainingQty
}

// Release voluntarily returns the caller's active entry to stock.
func (s *VoucherService) Release(ctx context.Context, user domain.Identity, entryID string) (bool, error) {
	entry, now, err := s.checkEntry(ctx, user, entryID)
	if err != nil {
		return false, err
	}

	released, err := s.store.ReleaseEntry(ctx, entry.ID, user.ID, now)
	if err != nil {
		return false, storeErr(err)
	}
	if released == 0 {
		// Flipped by a concurrent expiry or release between the check and
		// the conditional update; the update itself is the guard.
		return false, domain.ErrAlreadyTerminal
	}
	return true, nil
}

// Redeem marks the caller's active entry as used. Terminal, no restock.
func (s *VoucherService) Redeem(ctx context.Context, user domain.Identity, entryID string) (bool, error) {
	entry, now, err := s.checkEntry(ctx, user, entryID)
	if err != nil {
		return false, err
	}

	used, err := s.store.RedeemEntry(ctx, entry.ID, user.ID, now)
	if err != nil {
		return false, storeErr(err)
	}
	if used == 0 {
		return false, domain.ErrAlreadyTerminal
	}
	return true, nil
}

// checkEntry runs the reclaim sweep and the shared release/redeem
// preconditions, returning the entry and the operation timestamp.
func (s *VoucherService) checkEntry(ctx context.Context, user domain.Identity, entryID string) (domain.UserVoucherEntry, time.Time, error) {
	now := s.now()
	if user.ID == "" {
		return domain.UserVoucherEntry{}, now, domain.ErrInvalidArgument
	}
	if _, err := uuid.Parse(entryID); err != nil {
		return domain.UserVoucherEntry{}, now, domain.ErrInvalidArgument
	}

	if _, err := s.store.ReclaimExpired(ctx, now); err != nil {
		return domain.UserVoucherEntry{}, now, storeErr(err)
	}

	entry, err := s.store.GetEntry(ctx, entryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserVoucherEntry{}, now, domain.ErrNotFound
	}
	if err != nil {
		return domain.UserVoucherEntry{}, now, storeErr(err)
	}
	if entry.UserID != user.ID {
		return domain.UserVoucherEntry{}, now, domain.ErrWrongOwner
	}
	if entry.Status != domain.StatusActive {
		return domain.UserVoucherEntry{}, now, domain.ErrAlreadyTerminal
	}
	return entry, now, nil
}

// Transfer migrates all of a guest's active entries to a freshly
// authenticated user. Entries duplicated at the destination are removed
// with restock; the rest change owner in place. Repeat calls find nothing
// left under the guest id, so the operation is naturally idempotent.
func (s *VoucherService) Transfer(ctx context.Context, guest, authed domain.Identity) (*domain.TransferResult, error) {
	if guest.ID == "" || authed.ID == "" || guest.ID == authed.ID {
		return nil, domain.ErrInvalidArgument
	}
	if authed.IsAnonymous() {
		return nil, domain.ErrInvalidArgument
	}

	now := s.now()
	if _, err := s.store.ReclaimExpired(ctx, now); err != nil {
		return nil, storeErr(err)
	}

	var deduped, moved int64
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		var err error
		deduped, err = q.RemoveTransferDuplicates(ctx, guest.ID, authed.ID, now)
		if err != nil {
			return err
		}
		moved, err = q.ReassignActiveEntries(ctx, guest.ID, authed.ID, now)
		return err
	})
	if err != nil {
		return nil, storeErr(err)
	}

	return &domain.TransferResult{
		Transferred: int(moved + deduped),
		Reassigned:  int(moved),
		Deduped:     int(deduped),
	}, nil
}

// ListActive returns the user's active entries, newest first. The reclaim
// sweep runs first so a stale-expired row is never reported as active.
func (s *VoucherService) ListActive(ctx context.Context, user domain.Identity) ([]domain.UserVoucherEntry, error) {
	if user.ID == "" {
		return nil, domain.ErrInvalidArgument
	}

	if _, err := s.store.ReclaimExpired(ctx, s.now()); err != nil {
		return nil, storeErr(err)
	}

	entries, err := s.store.ListActiveEntries(ctx, user.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
