package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	addondomain "github.com/smallbiznis/pricingkit/internal/addon/domain"
	billingcycledomain "github.com/smallbiznis/pricingkit/internal/billingcycle/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	taxdomain "github.com/smallbiznis/pricingkit/internal/tax/domain"
)

// LineItem is one plan charge of the subscription being previewed. A zero
// quantity defaults to 1.
type LineItem struct {
	PriceID     string          `json:"price_id"`
	DisplayName string          `json:"display_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// Phase is a time-bounded segment of the subscription lifecycle with its own
// coupons. Phases never overlap; ordering is not assumed and is re-sorted
// defensively.
type Phase struct {
	StartDate         time.Time           `json:"start_date"`
	EndDate           *time.Time          `json:"end_date,omitempty"`
	CouponIDs         []string            `json:"coupons,omitempty"`
	LineItemCouponIDs map[string][]string `json:"line_item_coupons,omitempty"`
}

// Request is the full input of a subscription preview.
type Request struct {
	Currency      string                          `json:"currency"`
	BillingPeriod pricedomain.BillingPeriod       `json:"billing_period"`
	BillingCycle  billingcycledomain.BillingCycle `json:"billing_cycle"`

	LineItems []LineItem                            `json:"line_items"`
	Overrides map[string]*pricedomain.PriceOverride `json:"overrides,omitempty"`
	Addons    []addondomain.Attachment              `json:"addons,omitempty"`
	Phases    []Phase                               `json:"phases"`
}

// LineCharge is one resolved plan charge on the invoice preview.
type LineCharge struct {
	PriceID       string                    `json:"price_id"`
	DisplayName   string                    `json:"display_name,omitempty"`
	Quantity      decimal.Decimal           `json:"quantity"`
	Amount        money.Amount              `json:"amount"`
	Discount      money.Amount              `json:"discount"`
	Net           money.Amount              `json:"net"`
	IsOverridden  bool                      `json:"is_overridden"`
	ChangedFields []pricedomain.FieldChange `json:"changed_fields,omitempty"`
}

// InvoicePreview is the phase's full numeric breakdown:
// plan charges + addon charges - discounts + tax = net payable.
type InvoicePreview struct {
	Currency string `json:"currency"`

	LineCharges           []LineCharge `json:"line_charges"`
	RecurringSubtotal     money.Amount `json:"recurring_subtotal"`
	LineItemDiscountTotal money.Amount `json:"line_item_discount_total"`
	SubscriptionDiscount  money.Amount `json:"subscription_discount"`
	PlanSubtotal          money.Amount `json:"plan_subtotal"`

	AddonTotal     money.Amount               `json:"addon_total"`
	AddonBreakdown []addondomain.BreakdownLine `json:"addon_breakdown,omitempty"`

	PreTaxTotal money.Amount        `json:"pre_tax_total"`
	TaxAmount   money.Amount        `json:"tax_amount"`
	TaxLines    []taxdomain.TaxLine `json:"tax_lines,omitempty"`

	NetPayable        money.Amount `json:"net_payable"`
	DisplayNetPayable string       `json:"display_net_payable"`

	FirstInvoiceDate   time.Time `json:"first_invoice_date"`
	BillingDescription string    `json:"billing_description"`
}

type EntryKind string

const (
	EntryPhaseStart      EntryKind = "phase_start"
	EntryInvoicePreview  EntryKind = "invoice_preview"
	EntrySubscriptionEnd EntryKind = "subscription_end"
)

// TimelineEntry is one marker of the phase-by-phase financial timeline.
// Invoice is set only on invoice_preview entries.
type TimelineEntry struct {
	Kind       EntryKind       `json:"kind"`
	Date       time.Time       `json:"date"`
	PhaseIndex int             `json:"phase_index"`
	Invoice    *InvoicePreview `json:"invoice,omitempty"`
}

// Timeline is the display-ready, fully numeric preview output.
type Timeline struct {
	Entries []TimelineEntry `json:"entries"`
}

// Service builds subscription previews, for both pre-purchase preview and
// post-change invoice estimation.
type Service interface {
	// BuildPreview computes a phase-ordered financial timeline. A malformed
	// phase aborts the whole preview: a visible failure beats a silently
	// wrong total in a billing context.
	BuildPreview(ctx context.Context, req Request) (Timeline, error)
}

var ErrInvalidRequest = errors.New("invalid_preview_request")
