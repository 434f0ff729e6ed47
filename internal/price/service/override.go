package service

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/smallbiznis/pricingkit/internal/price/domain"
)

// MergeOverride derives the effective price from a base price and an optional
// partial override. Override fields take precedence; absent fields fall back
// to the base definition. The virtual SLAB_TIERED billing-model tag is
// normalized to TIERED with SLAB mode before any comparison, so an override
// that restates the base configuration reports no changes.
func (s *Service) MergeOverride(base domain.Price, override *domain.PriceOverride) (domain.EffectivePrice, error) {
	effective := domain.EffectivePrice{Price: base}
	if override == nil {
		return effective, nil
	}
	if override.PriceID != "" && override.PriceID != base.ID {
		return effective, fmt.Errorf("%w: override targets price %s, base is %s",
			domain.ErrInvalidOverride, override.PriceID, base.ID)
	}

	model, mode, err := normalizeModel(base, override)
	if err != nil {
		return effective, fmt.Errorf("price %s: %w", base.ID, err)
	}
	effective.BillingModel = model
	effective.TierMode = mode

	if model == domain.BillingModelTiered {
		// Amount is only meaningful when the effective model is not tiered.
		if override.Amount != nil {
			return effective, fmt.Errorf("price %s: %w: amount supplied for tiered billing model",
				base.ID, domain.ErrInvalidOverride)
		}
		if len(override.Tiers) > 0 {
			effective.Tiers = override.Tiers
		}
		if err := validateTiers(effective.Tiers); err != nil {
			return effective, fmt.Errorf("price %s: %w", base.ID, err)
		}
	} else {
		if len(override.Tiers) > 0 {
			return effective, fmt.Errorf("price %s: %w: tiers supplied for billing model %s",
				base.ID, domain.ErrInvalidOverride, model)
		}
		effective.Tiers = nil
		effective.TierMode = ""
		if override.Amount != nil {
			effective.Amount = *override.Amount
		}
	}

	if override.TransformQuantity != nil {
		if model != domain.BillingModelPackage {
			return effective, fmt.Errorf("price %s: %w: transform_quantity supplied for billing model %s",
				base.ID, domain.ErrInvalidOverride, model)
		}
		effective.TransformQuantity = override.TransformQuantity
	}
	if model != domain.BillingModelPackage {
		effective.TransformQuantity = nil
	}

	effective.Quantity = override.Quantity
	effective.EffectiveFrom = override.EffectiveFrom
	effective.ChangedFields = diffFields(base, effective)
	effective.IsOverridden = len(effective.ChangedFields) > 0

	return effective, nil
}

// HasChanges reports whether applying the override would semantically change
// the base price.
func (s *Service) HasChanges(base domain.Price, override *domain.PriceOverride) (bool, error) {
	if override == nil {
		return false, nil
	}
	effective, err := s.MergeOverride(base, override)
	if err != nil {
		return false, err
	}
	return effective.IsOverridden, nil
}

// normalizeModel resolves the effective billing model and tier mode,
// collapsing the SLAB_TIERED sentinel into its tagged form.
func normalizeModel(base domain.Price, override *domain.PriceOverride) (domain.BillingModel, domain.TierMode, error) {
	model := base.BillingModel
	mode := base.TierMode

	if override.BillingModel != nil {
		switch *override.BillingModel {
		case domain.BillingModelSlabTiered:
			model = domain.BillingModelTiered
			mode = domain.TierModeSlab
		case domain.BillingModelTiered:
			model = domain.BillingModelTiered
			mode = domain.TierModeVolume
			if override.TierMode != nil {
				mode = *override.TierMode
			}
		case domain.BillingModelFlatFee, domain.BillingModelPackage:
			model = *override.BillingModel
			mode = ""
		default:
			return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidBillingModel, *override.BillingModel)
		}
		return model, mode, nil
	}

	if override.TierMode != nil {
		if model != domain.BillingModelTiered {
			return "", "", fmt.Errorf("%w: tier_mode supplied for billing model %s",
				domain.ErrInvalidOverride, model)
		}
		mode = *override.TierMode
	}
	return model, mode, nil
}

// diffFields produces the audit diff between the base price and the merged
// effective price. Comparison happens on normalized values, so literal enum
// tags that resolve to the same configuration do not show up.
func diffFields(base domain.Price, effective domain.EffectivePrice) []domain.FieldChange {
	var changes []domain.FieldChange

	if effective.BillingModel != base.BillingModel {
		changes = append(changes, domain.FieldChange{
			Field: "billing_model",
			From:  string(base.BillingModel),
			To:    string(effective.BillingModel),
		})
	}
	if effective.TierMode != base.TierMode {
		changes = append(changes, domain.FieldChange{
			Field: "tier_mode",
			From:  string(base.TierMode),
			To:    string(effective.TierMode),
		})
	}
	if effective.BillingModel != domain.BillingModelTiered && !effective.Amount.Equal(base.Amount) {
		changes = append(changes, domain.FieldChange{
			Field: "amount",
			From:  base.Amount.String(),
			To:    effective.Amount.String(),
		})
	}
	if effective.BillingModel == domain.BillingModelTiered && !tiersEqual(base.Tiers, effective.Tiers) {
		changes = append(changes, domain.FieldChange{
			Field: "tiers",
			From:  formatTiers(base.Tiers),
			To:    formatTiers(effective.Tiers),
		})
	}
	if !transformEqual(base.TransformQuantity, effective.TransformQuantity) {
		changes = append(changes, domain.FieldChange{
			Field: "transform_quantity",
			From:  formatTransform(base.TransformQuantity),
			To:    formatTransform(effective.TransformQuantity),
		})
	}
	if effective.Quantity != nil {
		changes = append(changes, domain.FieldChange{
			Field: "quantity",
			From:  "",
			To:    effective.Quantity.String(),
		})
	}
	return changes
}

func tiersEqual(a, b []domain.PriceTier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if (a[i].UpTo == nil) != (b[i].UpTo == nil) {
			return false
		}
		if a[i].UpTo != nil && *a[i].UpTo != *b[i].UpTo {
			return false
		}
		if !a[i].UnitAmount.Equal(b[i].UnitAmount) || !a[i].FlatAmount.Equal(b[i].FlatAmount) {
			return false
		}
	}
	return true
}

func transformEqual(a, b *domain.TransformQuantity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.DivideBy == b.DivideBy && a.Round == b.Round
}

func formatTiers(tiers []domain.PriceTier) string {
	rows := lo.Map(tiers, func(t domain.PriceTier, _ int) string {
		bound := "inf"
		if t.UpTo != nil {
			bound = fmt.Sprintf("%d", *t.UpTo)
		}
		return fmt.Sprintf("up_to=%s unit=%s flat=%s", bound, t.UnitAmount, t.FlatAmount)
	})
	return strings.Join(rows, "; ")
}

func formatTransform(t *domain.TransformQuantity) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("divide_by=%d round=%s", t.DivideBy, t.Round)
}
