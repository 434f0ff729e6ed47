package pricingkit

import (
	previewdomain "github.com/smallbiznis/pricingkit/internal/preview/domain"
	previewsvc "github.com/smallbiznis/pricingkit/internal/preview/service"
	"go.uber.org/zap"
)

type (
	LineItem       = previewdomain.LineItem
	Phase          = previewdomain.Phase
	PreviewRequest = previewdomain.Request
	LineCharge     = previewdomain.LineCharge
	InvoicePreview = previewdomain.InvoicePreview
	EntryKind      = previewdomain.EntryKind
	TimelineEntry  = previewdomain.TimelineEntry
	Timeline       = previewdomain.Timeline
)

const (
	EntryPhaseStart      = previewdomain.EntryPhaseStart
	EntryInvoicePreview  = previewdomain.EntryInvoicePreview
	EntrySubscriptionEnd = previewdomain.EntrySubscriptionEnd
)

var ErrInvalidPreviewRequest = previewdomain.ErrInvalidRequest

// PreviewService builds subscription previews, for both pre-purchase preview
// and post-change invoice estimation.
type PreviewService = previewdomain.Service

func NewPreviewService(
	log *zap.Logger,
	cfg *ConfigHolder,
	prices PriceCatalog,
	coupons CouponCatalog,
	taxes TaxCatalog,
	priceSvc PriceService,
	couponSvc CouponService,
	addonSvc AddonService,
	taxSvc TaxService,
	cycleSvc BillingCycleService,
) PreviewService {
	return previewsvc.New(previewsvc.ServiceParam{
		Log:       log,
		Cfg:       cfg,
		Prices:    prices,
		Coupons:   coupons,
		Taxes:     taxes,
		PriceSvc:  priceSvc,
		CouponSvc: couponSvc,
		AddonSvc:  addonSvc,
		TaxSvc:    taxSvc,
		CycleSvc:  cycleSvc,
	})
}
