package kafka

import (
	"github.com/shopspring/decimal"

	"github.com/wheeleat/voucher-service/internal/domain"
)

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeWrongOwner       = "WRONG_OWNER"
	ErrCodeAlreadyTerminal  = "ALREADY_TERMINAL"
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// RequestPayload carries every voucher operation; unused fields stay
// empty. Claim rejections (already held, sold out, guest) travel inside
// the ClaimResult, not as ERROR responses.
type RequestPayload struct {
	SchemaVersion int    `json:"schema_version"`
	CorrelationID string `json:"correlation_id"`
	ReplyTo       string `json:"reply_to"`

	UserID       string          `json:"user_id,omitempty"`
	GuestUserID  string          `json:"guest_user_id,omitempty"`
	AuthedUserID string          `json:"authenticated_user_id,omitempty"`
	EntryID      string          `json:"entry_id,omitempty"`
	MerchantName string          `json:"merchant_name,omitempty"`
	MerchantLogo string          `json:"merchant_logo,omitempty"`
	ValueRM      decimal.Decimal `json:"value_rm"`
	MinSpendRM   decimal.Decimal `json:"min_spend_rm"`
}

type ResponsePayload struct {
	SchemaVersion int    `json:"schema_version"`
	CorrelationID string `json:"correlation_id"`
	Status        string `json:"status"`
	ErrorCode     string `json:"error_code,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`

	Claim    *domain.ClaimResult       `json:"claim,omitempty"`
	Released bool                      `json:"released,omitempty"`
	Used     bool                      `json:"used,omitempty"`
	Transfer *domain.TransferResult    `json:"transfer,omitempty"`
	Entries  []domain.UserVoucherEntry `json:"entries,omitempty"`
}
