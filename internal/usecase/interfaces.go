package usecase

import (
	"context"

	"github.com/wheeleat/voucher-service/internal/domain"
)

// VoucherGateway is the entry point the HTTP layer talks to. It is either
// the Kafka request/reply gateway or a direct in-process passthrough.
type VoucherGateway interface {
	Claim(ctx context.Context, p ClaimParams) (*domain.ClaimResult, error)
	Release(ctx context.Context, user domain.Identity, entryID string) (bool, error)
	Redeem(ctx context.Context, user domain.Identity, entryID string) (bool, error)
	Transfer(ctx context.Context, guest, authed domain.Identity) (*domain.TransferResult, error)
	ListActive(ctx context.Context, user domain.Identity) ([]domain.UserVoucherEntry, error)
}
