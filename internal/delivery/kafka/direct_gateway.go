package kafka

import (
	"context"

	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/usecase"
)

// DirectGateway bypasses Kafka and calls the service in-process. Used
// when event-driven mode is disabled.
type DirectGateway struct {
	service *usecase.VoucherService
}

func NewDirectGateway(service *usecase.VoucherService) usecase.VoucherGateway {
	return &DirectGateway{service: service}
}

func (g *DirectGateway) Claim(ctx context.Context, p usecase.ClaimParams) (*domain.ClaimResult, error) {
	return g.service.Claim(ctx, p)
}

func (g *DirectGateway) Release(ctx context.Context, user domain.Identity, entryID string) (bool, error) {
	return g.service.Release(ctx, user, entryID)
}

func (g *DirectGateway) Redeem(ctx context.Context, user domain.Identity, entryID string) (bool, error) {
	return g.service.Redeem(ctx, user, entryID)
}

func (g *DirectGateway) Transfer(ctx context.Context, guest, authed domain.Identity) (*domain.TransferResult, error) {
	return g.service.Transfer(ctx, guest, authed)
}

func (g *DirectGateway) ListActive(ctx context.Context, user domain.Identity) ([]domain.UserVoucherEntry, error) {
	return g.service.ListActive(ctx, user)
}
