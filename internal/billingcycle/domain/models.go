package domain

import (
	"errors"
	"time"

	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
)

// BillingCycle anchors recurring invoices either to the subscription's own
// start date or to calendar boundaries shared by all customers.
type BillingCycle string

const (
	BillingCycleAnniversary BillingCycle = "ANNIVERSARY"
	BillingCycleCalendar    BillingCycle = "CALENDAR"
)

// Service computes invoice anchor dates for subscriptions.
type Service interface {
	// FirstInvoiceDate computes when the first invoice falls. ANNIVERSARY
	// bills from the start date itself; CALENDAR aligns to the start of the
	// next canonical period boundary (a start date already on a boundary
	// bills immediately).
	FirstInvoiceDate(start time.Time, period pricedomain.BillingPeriod, cycle BillingCycle) (time.Time, error)

	// NextAnchor steps one billing period forward from the current anchor,
	// clamping to month end for month-based periods.
	NextAnchor(current time.Time, period pricedomain.BillingPeriod) (time.Time, error)

	// PeriodDuration renders the period's duration for display, e.g.
	// MONTHLY -> "1 month".
	PeriodDuration(period pricedomain.BillingPeriod) (string, error)

	// BillingDescription summarizes when and for how long the customer is
	// billed, given the invoice cadences of the charges on the invoice.
	BillingDescription(cadences []pricedomain.InvoiceCadence, period pricedomain.BillingPeriod, date time.Time) (string, error)
}

var (
	ErrInvalidBillingPeriod = errors.New("invalid_billing_period")
	ErrInvalidBillingCycle  = errors.New("invalid_billing_cycle")
)
