package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	addondomain "github.com/smallbiznis/pricingkit/internal/addon/domain"
	billingcycledomain "github.com/smallbiznis/pricingkit/internal/billingcycle/domain"
	"github.com/smallbiznis/pricingkit/internal/config"
	coupondomain "github.com/smallbiznis/pricingkit/internal/coupon/domain"
	"github.com/smallbiznis/pricingkit/internal/money"
	"github.com/smallbiznis/pricingkit/internal/preview/domain"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	taxdomain "github.com/smallbiznis/pricingkit/internal/tax/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log *zap.Logger
	cfg *config.Holder

	prices  pricedomain.Catalog
	coupons coupondomain.Catalog
	taxes   taxdomain.Catalog

	priceSvc  pricedomain.Service
	couponSvc coupondomain.Service
	addonSvc  addondomain.Service
	taxSvc    taxdomain.Service
	cycleSvc  billingcycledomain.Service
}

type ServiceParam struct {
	fx.In

	Log *zap.Logger
	Cfg *config.Holder

	Prices  pricedomain.Catalog
	Coupons coupondomain.Catalog
	Taxes   taxdomain.Catalog

	PriceSvc  pricedomain.Service
	CouponSvc coupondomain.Service
	AddonSvc  addondomain.Service
	TaxSvc    taxdomain.Service
	CycleSvc  billingcycledomain.Service
}

func New(p ServiceParam) domain.Service {
	return &Service{
		log:       p.Log.Named("preview.service"),
		cfg:       p.Cfg,
		prices:    p.Prices,
		coupons:   p.Coupons,
		taxes:     p.Taxes,
		priceSvc:  p.PriceSvc,
		couponSvc: p.CouponSvc,
		addonSvc:  p.AddonSvc,
		taxSvc:    p.TaxSvc,
		cycleSvc:  p.CycleSvc,
	}
}

func (s *Service) BuildPreview(ctx context.Context, req domain.Request) (domain.Timeline, error) {
	if err := validateRequest(req); err != nil {
		return domain.Timeline{}, err
	}

	// Callers may not guarantee phase order.
	phases := make([]domain.Phase, len(req.Phases))
	copy(phases, req.Phases)
	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].StartDate.Before(phases[j].StartDate)
	})

	taxOverrides, err := s.taxes.ListTaxOverrides(ctx)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("tax overrides: %w", err)
	}

	var timeline domain.Timeline
	for i, phase := range phases {
		invoice, err := s.buildPhaseInvoice(ctx, req, phase, taxOverrides)
		if err != nil {
			return domain.Timeline{}, fmt.Errorf("phase %d: %w", i, err)
		}

		timeline.Entries = append(timeline.Entries, domain.TimelineEntry{
			Kind:       domain.EntryPhaseStart,
			Date:       phase.StartDate.UTC(),
			PhaseIndex: i,
		})

		// The first phase drives the "next invoice" estimate.
		if i == 0 {
			timeline.Entries = append(timeline.Entries, domain.TimelineEntry{
				Kind:       domain.EntryInvoicePreview,
				Date:       invoice.FirstInvoiceDate,
				PhaseIndex: i,
				Invoice:    invoice,
			})
		}
	}

	if last := phases[len(phases)-1]; last.EndDate != nil {
		timeline.Entries = append(timeline.Entries, domain.TimelineEntry{
			Kind:       domain.EntrySubscriptionEnd,
			Date:       last.EndDate.UTC(),
			PhaseIndex: len(phases) - 1,
		})
	}

	return timeline, nil
}

// buildPhaseInvoice runs the full calculation pipeline for one phase:
// effective prices, line-item coupons, subscription coupons, addons, tax.
func (s *Service) buildPhaseInvoice(
	ctx context.Context,
	req domain.Request,
	phase domain.Phase,
	taxOverrides []taxdomain.TaxRateOverride,
) (*domain.InvoicePreview, error) {
	invoice := &domain.InvoicePreview{
		Currency:              req.Currency,
		RecurringSubtotal:     money.Zero(),
		LineItemDiscountTotal: money.Zero(),
		SubscriptionDiscount:  money.Zero(),
		PlanSubtotal:          money.Zero(),
		AddonTotal:            money.Zero(),
		PreTaxTotal:           money.Zero(),
		TaxAmount:             money.Zero(),
		NetPayable:            money.Zero(),
	}

	var cadences []pricedomain.InvoiceCadence

	for _, item := range req.LineItems {
		price, err := s.prices.GetPrice(ctx, item.PriceID)
		if err != nil {
			return nil, fmt.Errorf("price %s: %w", item.PriceID, err)
		}
		// Usage charges need metered data the preview does not have; only
		// fixed charges contribute to the recurring estimate.
		if price.Type != pricedomain.PriceTypeFixed {
			continue
		}

		effective, err := s.priceSvc.MergeOverride(price, req.Overrides[item.PriceID])
		if err != nil {
			return nil, err
		}
		cadences = append(cadences, effective.InvoiceCadence)

		quantity := item.Quantity
		if effective.Quantity != nil {
			quantity = *effective.Quantity
		}
		if quantity.IsZero() {
			quantity = decimal.NewFromInt(1)
		}

		amount, err := s.priceSvc.CalculateCost(effective.Price, quantity)
		if err != nil {
			return nil, err
		}

		lineCoupons, err := s.resolveCoupons(ctx, phase.LineItemCouponIDs[item.PriceID], phase.StartDate)
		if err != nil {
			return nil, err
		}
		rawDiscount, err := s.couponSvc.TotalDiscount(lineCoupons, amount)
		if err != nil {
			return nil, err
		}
		discount := money.Min(rawDiscount, amount)
		net := amount.Sub(discount)

		displayName := item.DisplayName
		if displayName == "" {
			displayName = price.DisplayName
		}

		invoice.LineCharges = append(invoice.LineCharges, domain.LineCharge{
			PriceID:       price.ID,
			DisplayName:   displayName,
			Quantity:      quantity,
			Amount:        amount,
			Discount:      discount,
			Net:           net,
			IsOverridden:  effective.IsOverridden,
			ChangedFields: effective.ChangedFields,
		})

		invoice.RecurringSubtotal = invoice.RecurringSubtotal.Add(net)
		invoice.LineItemDiscountTotal = invoice.LineItemDiscountTotal.Add(discount)
	}

	subCoupons, err := s.resolveCoupons(ctx, phase.CouponIDs, phase.StartDate)
	if err != nil {
		return nil, err
	}
	rawSubDiscount, err := s.couponSvc.TotalDiscount(subCoupons, invoice.RecurringSubtotal)
	if err != nil {
		return nil, err
	}
	invoice.SubscriptionDiscount = money.Min(rawSubDiscount, invoice.RecurringSubtotal)
	invoice.PlanSubtotal = invoice.RecurringSubtotal.Sub(invoice.SubscriptionDiscount).ClampZero()

	addons, err := s.addonSvc.Aggregate(ctx, req.Addons, req.BillingPeriod, req.Currency, phase.StartDate)
	if err != nil {
		return nil, err
	}
	invoice.AddonTotal = addons.Total
	invoice.AddonBreakdown = addons.Breakdown
	invoice.PreTaxTotal = invoice.PlanSubtotal.Add(addons.Total)

	taxResult, err := s.taxSvc.TaxFor(ctx, invoice.PreTaxTotal, taxOverrides, req.Currency)
	if err != nil {
		return nil, err
	}
	invoice.TaxAmount = taxResult.Total
	invoice.TaxLines = taxResult.Lines
	invoice.NetPayable = invoice.PreTaxTotal.Add(taxResult.Total)
	if precision := s.cfg.Current().DisplayPrecision; precision > 0 {
		invoice.DisplayNetPayable = invoice.NetPayable.DisplayFixed(precision)
	} else {
		invoice.DisplayNetPayable = invoice.NetPayable.Display(req.Currency)
	}

	firstInvoiceDate, err := s.cycleSvc.FirstInvoiceDate(phase.StartDate, req.BillingPeriod, req.BillingCycle)
	if err != nil {
		return nil, err
	}
	invoice.FirstInvoiceDate = firstInvoiceDate

	description, err := s.cycleSvc.BillingDescription(cadences, req.BillingPeriod, firstInvoiceDate)
	if err != nil {
		return nil, err
	}
	invoice.BillingDescription = description

	return invoice, nil
}

// resolveCoupons loads and validates coupons, keeping only those active at
// the phase start and still applying at the first billing period.
func (s *Service) resolveCoupons(ctx context.Context, ids []string, asOf time.Time) ([]coupondomain.Coupon, error) {
	var active []coupondomain.Coupon
	for _, id := range ids {
		coupon, err := s.coupons.GetCoupon(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("coupon %s: %w", id, err)
		}
		if err := coupon.Validate(); err != nil {
			return nil, err
		}
		if !s.couponSvc.IsActive(coupon, asOf) {
			continue
		}
		if !s.couponSvc.AppliesToPeriod(coupon, 0) {
			continue
		}
		active = append(active, coupon)
	}
	return active, nil
}

func validateRequest(req domain.Request) error {
	if req.Currency == "" {
		return fmt.Errorf("%w: missing currency", domain.ErrInvalidRequest)
	}
	if req.BillingPeriod == "" {
		return fmt.Errorf("%w: missing billing period", domain.ErrInvalidRequest)
	}
	if req.BillingCycle == "" {
		return fmt.Errorf("%w: missing billing cycle", domain.ErrInvalidRequest)
	}
	if len(req.Phases) == 0 {
		return fmt.Errorf("%w: at least one phase required", domain.ErrInvalidRequest)
	}
	return nil
}
