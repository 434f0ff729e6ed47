package pricingkit

import (
	coupondomain "github.com/smallbiznis/pricingkit/internal/coupon/domain"
	couponsvc "github.com/smallbiznis/pricingkit/internal/coupon/service"
	"go.uber.org/zap"
)

type (
	Coupon        = coupondomain.Coupon
	CouponType    = coupondomain.CouponType
	CouponCadence = coupondomain.CouponCadence
)

const (
	CouponTypeFixed      = coupondomain.CouponTypeFixed
	CouponTypePercentage = coupondomain.CouponTypePercentage

	CadenceOnce     = coupondomain.CadenceOnce
	CadenceRepeated = coupondomain.CadenceRepeated
	CadenceForever  = coupondomain.CadenceForever
)

var (
	ErrInvalidCouponConfig = coupondomain.ErrInvalidCouponConfig
	ErrCouponNotFound      = coupondomain.ErrCouponNotFound
)

// CouponService computes discount magnitudes. It never tracks redemption
// counts.
type CouponService = coupondomain.Service

// CouponCatalog is the pre-fetched coupon collection supplied by the caller.
type CouponCatalog = coupondomain.Catalog

func NewCouponService(log *zap.Logger) CouponService {
	return couponsvc.New(log)
}
