package pricingkit

import "github.com/smallbiznis/pricingkit/internal/catalog"

// Catalog is the engine's in-memory record store. It implements every catalog
// contract the services consume; callers populate it from whatever store they
// own.
type Catalog = catalog.Catalog

func NewCatalog() (*Catalog, error) { return catalog.New() }
