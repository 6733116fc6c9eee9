package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyHeld      = errors.New("user already holds an active voucher for this merchant")
	ErrSoldOut          = errors.New("voucher is sold out")
	ErrNotFound         = errors.New("voucher entry not found")
	ErrWrongOwner       = errors.New("voucher entry belongs to another user")
	ErrAlreadyTerminal  = errors.New("voucher entry is no longer active")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNoRestaurants    = errors.New("no restaurants match the selected categories")
	ErrStoreUnavailable = errors.New("voucher store unavailable")
)

type EntryStatus string

const (
	StatusActive  EntryStatus = "active"
	StatusUsed    EntryStatus = "used"
	StatusRemoved EntryStatus = "removed"
	StatusExpired EntryStatus = "expired"
)

// VoucherType is the per-merchant offer definition and its stock counter.
// remaining_qty only moves through conditional updates in the store, so
// 0 <= RemainingQty <= TotalQty holds at all times.
type VoucherType struct {
	ID           string          `json:"id"`
	MerchantName string          `json:"merchant_name"`
	MerchantLogo string          `json:"merchant_logo,omitempty"`
	Value        decimal.Decimal `json:"value_rm"`
	MinSpend     decimal.Decimal `json:"min_spend_rm"`
	TotalQty     int             `json:"total_qty"`
	RemainingQty int             `json:"remaining_qty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UserVoucherEntry is one issued voucher instance. The merchant display
// fields are denormalized from the owning VoucherType when read.
type UserVoucherEntry struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	VoucherTypeID string          `json:"voucher_id"`
	Status        EntryStatus     `json:"status"`
	IssuedAt      time.Time       `json:"issued_at"`
	ExpiresAt     time.Time       `json:"expired_at"`
	RemovedAt     *time.Time      `json:"removed_at,omitempty"`
	UsedAt        *time.Time      `json:"used_at,omitempty"`
	MerchantName  string          `json:"merchant_name,omitempty"`
	MerchantLogo  string          `json:"merchant_logo,omitempty"`
	Value         decimal.Decimal `json:"value_rm"`
	MinSpend      decimal.Decimal `json:"min_spend_rm"`
}

const (
	ReasonAlreadyHeld   = "already_has_voucher"
	ReasonSoldOut       = "sold_out"
	ReasonGuestRejected = "guest_rejected"
)

// ClaimResult is the outcome of a claim attempt. Business rejections are
// carried in Reason rather than as errors.
type ClaimResult struct {
	Won          bool              `json:"won"`
	Reason       string            `json:"reason,omitempty"`
	RemainingQty int               `json:"remaining_qty"`
	Entry        *UserVoucherEntry `json:"user_voucher,omitempty"`
}

// TransferResult reports how a guest's active entries were resolved.
// Transferred = Reassigned + Deduped.
type TransferResult struct {
	Transferred int `json:"transferred"`
	Reassigned  int `json:"reassigned"`
	Deduped     int `json:"deduped"`
}

// VoucherTypeID derives the stable voucher type id for a merchant, so
// repeated ensure calls for the same merchant hit the same row.
func VoucherTypeID(merchantName string) string {
	slug := slugify(merchantName)
	if slug == "" {
		slug = "restaurant"
	}
	return "voucher_" + slug
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	pendingDash := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
