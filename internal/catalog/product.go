package catalog

import (
	"github.com/novamart-dev/storefront-session/pkg/money"
)

// Product is a catalog entry as served by the backend. The engine never
// mutates products; it only filters and renders them.
type Product struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Price       money.Price `json:"price"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url,omitempty"`
}
