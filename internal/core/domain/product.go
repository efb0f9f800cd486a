package domain

// Product is a catalog entity. The catalog is a fixed dataset shipped with
// the binary; products are never created, updated or deleted at runtime.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description"`
}
