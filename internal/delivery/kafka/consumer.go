package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/wheeleat/voucher-service/internal/config"
	"github.com/wheeleat/voucher-service/internal/domain"
	"github.com/wheeleat/voucher-service/internal/usecase"
)

type Consumer struct {
	client  *kgo.Client
	cfg     *config.Config
	service *usecase.VoucherService
	ready   chan struct{}
}

func NewConsumer(cfg *config.Config, client *kgo.Client, service *usecase.VoucherService) *Consumer {
	return &Consumer{
		client:  client,
		cfg:     cfg,
		service: service,
		ready:   make(chan struct{}),
	}
}

func (c *Consumer) Start(ctx context.Context) {
	close(c.ready)
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return
		}
		if errs := fetches.Errors(); len(errs) > 0 {
			log.Printf("Consumer poll errors: %v", errs)
		}

		iter := fetches.RecordIter()
		for !iter.Done() {
			record := iter.Next()
			c.processRecord(ctx, record)
		}

		if err := c.client.CommitRecords(ctx, fetches.Records()...); err != nil {
			log.Printf("Failed to commit records: %v", err)
		}
	}
}

func (c *Consumer) StartRetry(ctx context.Context) {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return
		}
		iter := fetches.RecordIter()
		for !iter.Done() {
			record := iter.Next()

			if nextAt, ok := retryNextAt(record); ok && time.Now().Before(nextAt) {
				time.Sleep(time.Until(nextAt))
			}

			mainTopic := strings.TrimSuffix(record.Topic, TopicRetrySuffix) + TopicRequestSuffix
			newRecord := &kgo.Record{
				Topic:   mainTopic,
				Key:     record.Key,
				Value:   record.Value,
				Headers: record.Headers,
			}
			if err := c.client.ProduceSync(ctx, newRecord).FirstErr(); err != nil {
				log.Printf("Failed to requeue retry record: %v", err)
			}
		}
		if err := c.client.CommitRecords(ctx, fetches.Records()...); err != nil {
			log.Printf("Failed to commit retry records: %v", err)
		}
	}
}

func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

func (c *Consumer) processRecord(ctx context.Context, record *kgo.Record) {
	switch record.Topic {
	case TopicClaimRequest:
		c.handleClaim(ctx, record)
	case TopicReleaseRequest:
		c.handleRelease(ctx, record)
	case TopicRedeemRequest:
		c.handleRedeem(ctx, record)
	case TopicTransferRequest:
		c.handleTransfer(ctx, record)
	case TopicListRequest:
		c.handleList(ctx, record)
	}
}

func (c *Consumer) handleClaim(ctx context.Context, record *kgo.Record) {
	req, ok := c.decode(ctx, record)
	if !ok {
		return
	}

	user, err := domain.ParseIdentity(req.UserID)
	if err != nil {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, err.Error()))
		return
	}

	result, err := c.service.Claim(ctx, usecase.ClaimParams{
		User:         user,
		MerchantName: req.MerchantName,
		MerchantLogo: req.MerchantLogo,
		Value:        req.ValueRM,
		MinSpend:     req.MinSpendRM,
	})
	if err != nil {
		code, msg := mapServiceError(err)
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, code, msg))
		return
	}

	resp := successResponse(req.CorrelationID)
	resp.Claim = result
	c.reply(ctx, req.ReplyTo, resp)
}

func (c *Consumer) handleRelease(ctx context.Context, record *kgo.Record) {
	req, ok := c.decode(ctx, record)
	if !ok {
		return
	}

	user, err := domain.ParseIdentity(req.UserID)
	if err != nil {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, err.Error()))
		return
	}

	released, err := c.service.Release(ctx, user, req.EntryID)
	if err != nil {
		code, msg := mapServiceError(err)
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, code, msg))
		return
	}

	resp := successResponse(req.CorrelationID)
	resp.Released = released
	c.reply(ctx, req.ReplyTo, resp)
}

func (c *Consumer) handleRedeem(ctx context.Context, record *kgo.Record) {
	req, ok := c.decode(ctx, record)
	if !ok {
		return
	}

	user, err := domain.ParseIdentity(req.UserID)
	if err != nil {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, err.Error()))
		return
	}

	used, err := c.service.Redeem(ctx, user, req.EntryID)
	if err != nil {
		code, msg := mapServiceError(err)
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, code, msg))
		return
	}

	resp := successResponse(req.CorrelationID)
	resp.Used = used
	c.reply(ctx, req.ReplyTo, resp)
}

func (c *Consumer) handleTransfer(ctx context.Context, record *kgo.Record) {
	req, ok := c.decode(ctx, record)
	if !ok {
		return
	}

	guest, err := domain.ParseIdentity(req.GuestUserID)
	if err != nil {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, err.Error()))
		return
	}
	authed, err := domain.ParseIdentity(req.AuthedUserID)
	if err != nil {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, err.Error()))
		return
	}

	result, err := c.service.Transfer(ctx, guest, authed)
	if err != nil {
		code, msg := mapServiceError(err)
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, code, msg))
		return
	}

	resp := successResponse(req.CorrelationID)
	resp.Transfer = result
	c.reply(ctx, req.ReplyTo, resp)
}

func (c *Consumer) handleList(ctx context.Context, record *kgo.Record) {
	req, ok := c.decode(ctx, record)
	if !ok {
		return
	}

	user, err := domain.ParseIdentity(req.UserID)
	if err != nil {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, err.Error()))
		return
	}

	entries, err := c.service.ListActive(ctx, user)
	if err != nil {
		code, msg := mapServiceError(err)
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, code, msg))
		return
	}

	resp := successResponse(req.CorrelationID)
	resp.Entries = entries
	c.reply(ctx, req.ReplyTo, resp)
}

func (c *Consumer) decode(ctx context.Context, record *kgo.Record) (RequestPayload, bool) {
	var req RequestPayload
	if err := json.Unmarshal(record.Value, &req); err != nil {
		c.sendToDLQ(ctx, record, "invalid request payload")
		return req, false
	}
	return req, true
}

func (c *Consumer) reply(ctx context.Context, topic string, resp *ResponsePayload) {
	if topic == "" {
		return
	}
	payload, _ := json.Marshal(resp)
	record := &kgo.Record{
		Topic: topic,
		Value: payload,
	}
	if err := c.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		log.Printf("Failed to send response to %s: %v", topic, err)
	}
}

func (c *Consumer) sendToDLQ(ctx context.Context, record *kgo.Record, message string) {
	var req RequestPayload
	_ = json.Unmarshal(record.Value, &req)
	if req.ReplyTo != "" {
		c.reply(ctx, req.ReplyTo, errorResponse(req.CorrelationID, ErrCodeInvalidRequest, message))
	}

	dlqRecord := &kgo.Record{
		Topic: record.Topic + TopicDLQSuffix,
		Value: record.Value,
		Headers: []kgo.RecordHeader{
			{Key: ErrorHeaderKey, Value: []byte(message)},
		},
	}
	_ = c.client.ProduceSync(ctx, dlqRecord).FirstErr()
}

func retryNextAt(record *kgo.Record) (time.Time, bool) {
	for _, header := range record.Headers {
		if header.Key != RetryHeaderNextAt {
			continue
		}
		nextAt, err := time.Parse(time.RFC3339, string(header.Value))
		if err != nil {
			return time.Time{}, false
		}
		return nextAt, true
	}

	return time.Time{}, false
}

func successResponse(correlationID string) *ResponsePayload {
	return &ResponsePayload{
		SchemaVersion: 1,
		CorrelationID: correlationID,
		Status:        StatusSuccess,
	}
}

func errorResponse(correlationID, code, message string) *ResponsePayload {
	return &ResponsePayload{
		SchemaVersion: 1,
		CorrelationID: correlationID,
		Status:        StatusError,
		ErrorCode:     code,
		ErrorMessage:  message,
	}
}

func mapServiceError(err error) (string, string) {
	code := ErrCodeInternalError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = ErrCodeNotFound
	case errors.Is(err, domain.ErrWrongOwner):
		code = ErrCodeWrongOwner
	case errors.Is(err, domain.ErrAlreadyTerminal):
		code = ErrCodeAlreadyTerminal
	case errors.Is(err, domain.ErrInvalidArgument):
		code = ErrCodeInvalidRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		code = ErrCodeStoreUnavailable
	}
	return code, err.Error()
}
