package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/pricingkit/internal/money"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
)

// Addon is a purchasable add-on resolved against the price catalog.
type Addon struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

// Attachment links an addon to a subscription, optionally bounded in time.
type Attachment struct {
	AddonID   string     `json:"addon_id"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ActiveAt reports whether the attachment window contains the given instant.
func (a Attachment) ActiveAt(at time.Time) bool {
	if a.StartDate != nil && at.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && at.After(*a.EndDate) {
		return false
	}
	return true
}

// BreakdownLine is one addon's recurring contribution, kept for display.
type BreakdownLine struct {
	AddonID   string       `json:"addon_id"`
	AddonName string       `json:"addon_name"`
	PriceID   string       `json:"price_id"`
	Amount    money.Amount `json:"amount"`
}

// Aggregation is the summed recurring addon charge for one billing period.
type Aggregation struct {
	Total     money.Amount    `json:"total"`
	Breakdown []BreakdownLine `json:"breakdown"`
}

// Catalog is the pre-fetched addon collection supplied by the caller.
type Catalog interface {
	GetAddon(ctx context.Context, id string) (Addon, error)
}

// Service sums the recurring charges of attached addons.
type Service interface {
	// Aggregate resolves each attachment to the addon's FIXED price matching
	// the subscription's billing period and currency, summing the matches.
	// Attachments with no matching recurring price contribute zero and are
	// omitted from the breakdown; that is expected for usage-only addons.
	Aggregate(ctx context.Context, attachments []Attachment, billingPeriod pricedomain.BillingPeriod, currency string, asOf time.Time) (Aggregation, error)
}

var (
	ErrAddonNotFound = errors.New("addon_not_found")

	// ErrNoMatchingAddonPrice is informational: callers may log it, but the
	// aggregator treats the condition as a zero contribution.
	ErrNoMatchingAddonPrice = errors.New("no_matching_addon_price")
)
