package models

// CartItem is a catalog product plus the shopper's selection for it.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
}
