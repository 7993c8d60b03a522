package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/wearloom/storefront-api/models"
	"gopkg.in/yaml.v2"
)

// Catalog is a fixed, ordered collection of products. It is built once at
// startup and never mutated afterwards.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// New builds a catalog from the given products, preserving their order.
func New(products []models.Product) *Catalog {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	return New(defaultProducts)
}

// LoadFile reads a catalog from a YAML file, replacing the built-in one.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}
	return New(products), nil
}

// All returns the products in catalog order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a single product.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Filter returns products matching a category (exact) and a free-text query
// (case-insensitive substring on name or description). Either argument may
// be empty, in which case it matches everything.
func (c *Catalog) Filter(category, query string) []models.Product {
	query = strings.ToLower(query)
	out := []models.Product{}
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
