package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/wheeleat/voucher-service/internal/config"
	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/usecase"
)

// Gateway forwards voucher operations over Kafka request/reply topics and
// correlates responses back to the waiting caller.
type Gateway struct {
	client      *kgo.Client
	cfg         *config.Config
	pendingResp sync.Map
}

func NewGateway(cfg *config.Config, client *kgo.Client) *Gateway {
	return &Gateway{
		client: client,
		cfg:    cfg,
	}
}

func (g *Gateway) Claim(ctx context.Context, p usecase.ClaimParams) (*domain.ClaimResult, error) {
	req := g.newRequest()
	req.UserID = p.User.ID
	req.MerchantName = p.MerchantName
	req.MerchantLogo = p.MerchantLogo
	req.ValueRM = p.Value
	req.MinSpendRM = p.MinSpend

	key := fmt.Sprintf("%s:%s", p.MerchantName, p.User.ID)
	resp, err := g.requestReply(ctx, TopicClaimRequest, []byte(key), req)
	if err != nil {
		return nil, err
	}
	if resp.Status == StatusError {
		return nil, g.mapError(resp.ErrorCode, resp.ErrorMessage)
	}
	return resp.Claim, nil
}

func (g *Gateway) Release(ctx context.Context, user domain.Identity, entryID string) (bool, error) {
	req := g.newRequest()
	req.UserID = user.ID
	req.EntryID = entryID

	resp, err := g.requestReply(ctx, TopicReleaseRequest, []byte(entryID), req)
	if err != nil {
		return false, err
	}
	if resp.Status == StatusError {
		return false, g.mapError(resp.ErrorCode, resp.ErrorMessage)
	}
	return resp.Released, nil
}

func (g *Gateway) Redeem(ctx context.Context, user domain.Identity, entryID string) (bool, error) {
	req := g.newRequest()
	req.UserID = user.ID
	req.EntryID = entryID

	resp, err := g.requestReply(ctx, TopicRedeemRequest, []byte(entryID), req)
	if err != nil {
		return false, err
	}
	if resp.Status == StatusError {
		return false, g.mapError(resp.ErrorCode, resp.ErrorMessage)
	}
	return resp.Used, nil
}

func (g *Gateway) Transfer(ctx context.Context, guest, authed domain.Identity) (*domain.TransferResult, error) {
	req := g.newRequest()
	req.GuestUserID = guest.ID
	req.AuthedUserID = authed.ID

	resp, err := g.requestReply(ctx, TopicTransferRequest, []byte(guest.ID), req)
	if err != nil {
		return nil, err
	}
	if resp.Status == StatusError {
		return nil, g.mapError(resp.ErrorCode, resp.ErrorMessage)
	}
	return resp.Transfer, nil
}

func (g *Gateway) ListActive(ctx context.Context, user domain.Identity) ([]domain.UserVoucherEntry, error) {
	req := g.newRequest()
	req.UserID = user.ID

	resp, err := g.requestReply(ctx, TopicListRequest, []byte(user.ID), req)
	if err != nil {
		return nil, err
	}
	if resp.Status == StatusError {
		return nil, g.mapError(resp.ErrorCode, resp.ErrorMessage)
	}
	return resp.Entries, nil
}

func (g *Gateway) newRequest() RequestPayload {
	return RequestPayload{
		SchemaVersion: 1,
		CorrelationID: uuid.New().String(),
		ReplyTo:       fmt.Sprintf("%s%s", TopicReplyPrefix, g.cfg.KafkaInstanceID),
	}
}

func (g *Gateway) requestReply(ctx context.Context, topic string, key []byte, req RequestPayload) (*ResponsePayload, error) {
	respChan := make(chan *ResponsePayload, 1)
	g.pendingResp.Store(req.CorrelationID, respChan)
	defer g.pendingResp.Delete(req.CorrelationID)

	payload, _ := json.Marshal(req)
	record := &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: payload,
	}

	if err := g.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return nil, err
	}

	select {
	case resp := <-respChan:
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(RequestTimeout):
		return nil, errors.New("timeout waiting for response")
	}
}

func (g *Gateway) HandleResponse(payload []byte) {
	var resp ResponsePayload
	if err := json.Unmarshal(payload, &resp); err != nil {
		log.Printf("Failed to decode response payload: %v", err)
		return
	}

	if ch, ok := g.pendingResp.Load(resp.CorrelationID); ok {
		ch.(chan *ResponsePayload) <- &resp
		return
	}

	log.Printf("No pending response for correlation ID %s", resp.CorrelationID)
}

func (g *Gateway) mapError(code, message string) error {
	switch code {
	case ErrCodeNotFound:
		return domain.ErrNotFound
	case ErrCodeWrongOwner:
		return domain.ErrWrongOwner
	case ErrCodeAlreadyTerminal:
		return domain.ErrAlreadyTerminal
	case ErrCodeInvalidRequest:
		return domain.ErrInvalidArgument
	case ErrCodeStoreUnavailable:
		return domain.ErrStoreUnavailable
	default:
		return errors.New(message)
	}
}

var _ usecase.VoucherGateway = (*Gateway)(nil)
