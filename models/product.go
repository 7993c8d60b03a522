package models

// Product is one catalog entry. The catalog is static configuration and
// read-only at runtime.
type Product struct {
	ID           int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Subtitle     string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Price        string `json:"price" yaml:"price"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	Description  string `json:"description" yaml:"description"`
	Category     string `json:"category,omitempty" yaml:"category,omitempty"`
	Brand        string `json:"brand,omitempty" yaml:"brand,omitempty"`
	IsBestSeller bool   `json:"is_best_seller,omitempty" yaml:"is_best_seller,omitempty"`
}
