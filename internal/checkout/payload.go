package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/novamart-dev/storefront-session/internal/cart"
)

// OrderPayload is the wire shape posted to the orders endpoint.
type OrderPayload struct {
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	ShippingAddress string      `json:"shipping_address"`
	TotalAmount     float64     `json:"total_amount"`
	Items           []OrderItem `json:"items"`
}

// OrderItem references one cart line item by product id.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// BuildPayload maps the cart snapshot and validated form into the order
// request body. The shipping address is the single composed line the
// server expects.
func BuildPayload(items []cart.Item, total decimal.Decimal, form Form) OrderPayload {
	orderItems := make([]OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	amount, _ := total.Float64()
	return OrderPayload{
		CustomerName:    form.FullName,
		CustomerEmail:   form.Email,
		ShippingAddress: fmt.Sprintf("%s, %s, %s", form.Address, form.City, form.ZipCode),
		TotalAmount:     amount,
		Items:           orderItems,
	}
}
