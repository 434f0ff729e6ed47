// Package catalog provides in-memory implementations of the catalog
// contracts the engine consumes: price, coupon, addon and tax lookups. The
// engine never fetches data itself; callers populate a Catalog from whatever
// store they own and hand it to the services.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	addondomain "github.com/smallbiznis/pricingkit/internal/addon/domain"
	coupondomain "github.com/smallbiznis/pricingkit/internal/coupon/domain"
	pricedomain "github.com/smallbiznis/pricingkit/internal/price/domain"
	taxdomain "github.com/smallbiznis/pricingkit/internal/tax/domain"
)

// Catalog is a thread-safe in-memory record store. Records registered
// without an id get a generated snowflake id; addons registered without a
// code get one slugified from their name.
type Catalog struct {
	mu    sync.RWMutex
	genID *snowflake.Node

	prices       map[string]pricedomain.Price
	addons       map[string]addondomain.Addon
	addonPrices  map[string][]string
	coupons      map[string]coupondomain.Coupon
	taxRates     map[string]taxdomain.TaxRate
	taxOverrides []taxdomain.TaxRateOverride
}

func New() (*Catalog, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		genID:       node,
		prices:      make(map[string]pricedomain.Price),
		addons:      make(map[string]addondomain.Addon),
		addonPrices: make(map[string][]string),
		coupons:     make(map[string]coupondomain.Coupon),
		taxRates:    make(map[string]taxdomain.TaxRate),
	}, nil
}

// AddPrice registers a price and returns it with its id populated.
func (c *Catalog) AddPrice(p pricedomain.Price) pricedomain.Price {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.ID == "" {
		p.ID = fmt.Sprintf("price_%s", c.genID.Generate())
	}
	c.prices[p.ID] = p
	return p
}

// AddAddon registers an addon and links its prices. Prices are registered as
// a side effect.
func (c *Catalog) AddAddon(a addondomain.Addon, prices ...pricedomain.Price) addondomain.Addon {
	c.mu.Lock()
	if a.ID == "" {
		a.ID = fmt.Sprintf("addon_%s", c.genID.Generate())
	}
	if a.Code == "" && a.Name != "" {
		a.Code = slug.Make(a.Name)
	}
	c.addons[a.ID] = a
	c.mu.Unlock()

	for _, p := range prices {
		registered := c.AddPrice(p)
		c.mu.Lock()
		c.addonPrices[a.ID] = append(c.addonPrices[a.ID], registered.ID)
		c.mu.Unlock()
	}
	return a
}

func (c *Catalog) AddCoupon(coupon coupondomain.Coupon) coupondomain.Coupon {
	c.mu.Lock()
	defer c.mu.Unlock()
	if coupon.ID == "" {
		coupon.ID = fmt.Sprintf("coupon_%s", c.genID.Generate())
	}
	c.coupons[coupon.ID] = coupon
	return coupon
}

func (c *Catalog) AddTaxRate(rate taxdomain.TaxRate) taxdomain.TaxRate {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rate.Code == "" && rate.Name != "" {
		rate.Code = slug.Make(rate.Name)
	}
	c.taxRates[rate.Code] = rate
	return rate
}

func (c *Catalog) AddTaxOverride(override taxdomain.TaxRateOverride) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.taxOverrides = append(c.taxOverrides, override)
}

func (c *Catalog) GetPrice(_ context.Context, id string) (pricedomain.Price, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.prices[id]
	if !ok {
		return pricedomain.Price{}, fmt.Errorf("%w: %s", pricedomain.ErrPriceNotFound, id)
	}
	return p, nil
}

func (c *Catalog) ListPricesForAddon(_ context.Context, addonID string) ([]pricedomain.Price, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := c.addonPrices[addonID]
	prices := make([]pricedomain.Price, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.prices[id]; ok {
			prices = append(prices, p)
		}
	}
	return prices, nil
}

func (c *Catalog) GetAddon(_ context.Context, id string) (addondomain.Addon, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.addons[id]
	if !ok {
		return addondomain.Addon{}, fmt.Errorf("%w: %s", addondomain.ErrAddonNotFound, id)
	}
	return a, nil
}

func (c *Catalog) GetCoupon(_ context.Context, id string) (coupondomain.Coupon, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coupon, ok := c.coupons[id]
	if !ok {
		return coupondomain.Coupon{}, fmt.Errorf("%w: %s", coupondomain.ErrCouponNotFound, id)
	}
	return coupon, nil
}

func (c *Catalog) GetTaxRate(_ context.Context, code string) (taxdomain.TaxRate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rate, ok := c.taxRates[code]
	if !ok {
		return taxdomain.TaxRate{}, fmt.Errorf("%w: %s", taxdomain.ErrUnresolvableTaxRate, code)
	}
	return rate, nil
}

func (c *Catalog) ListTaxOverrides(_ context.Context) ([]taxdomain.TaxRateOverride, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	overrides := make([]taxdomain.TaxRateOverride, len(c.taxOverrides))
	copy(overrides, c.taxOverrides)
	return overrides, nil
}
