package domain

import "errors"

var (
	ErrInvalidCouponConfig = errors.New("invalid_coupon_config")
	ErrCouponNotFound      = errors.New("coupon_not_found")
)
