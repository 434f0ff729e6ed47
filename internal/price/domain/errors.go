package domain

import "errors"

var (
	ErrInvalidTierConfig   = errors.New("invalid_tier_config")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidOverride     = errors.New("invalid_override")
	ErrInvalidBillingModel = errors.New("invalid_billing_model")
	ErrInvalidTierMode     = errors.New("invalid_tier_mode")
	ErrPriceNotFound       = errors.New("price_not_found")
)
