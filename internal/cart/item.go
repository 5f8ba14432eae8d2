package cart

import (
	"github.com/novamart-dev/storefront-session/pkg/money"
)

// Item is one product/quantity pairing in the cart. The JSON shape matches
// the snapshot the web storefront keeps in browser storage, so existing
// snapshots hydrate cleanly.
type Item struct {
	ProductID int64       `json:"id"`
	Name      string      `json:"name"`
	Price     money.Price `json:"price"`
	Quantity  int         `json:"quantity"`
}
