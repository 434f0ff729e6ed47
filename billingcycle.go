package pricingkit

import (
	billingcycledomain "github.com/smallbiznis/pricingkit/internal/billingcycle/domain"
	billingcyclesvc "github.com/smallbiznis/pricingkit/internal/billingcycle/service"
	"go.uber.org/zap"
)

// BillingCycle anchors recurring invoices either to the subscription's own
// start date or to calendar boundaries shared by all customers.
type BillingCycle = billingcycledomain.BillingCycle

const (
	BillingCycleAnniversary = billingcycledomain.BillingCycleAnniversary
	BillingCycleCalendar    = billingcycledomain.BillingCycleCalendar
)

var (
	ErrInvalidBillingPeriod = billingcycledomain.ErrInvalidBillingPeriod
	ErrInvalidBillingCycle  = billingcycledomain.ErrInvalidBillingCycle
)

// BillingCycleService computes invoice anchor dates for subscriptions.
type BillingCycleService = billingcycledomain.Service

func NewBillingCycleService(log *zap.Logger) BillingCycleService {
	return billingcyclesvc.New(log)
}
