package checkout

import (
	"context"

	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/httpapi"
)

// OrderResponse is the server's acknowledgment of a created order.
type OrderResponse struct {
	ID int64 `json:"id"`
}

// Client submits orders to the backend.
type Client struct {
	api *httpapi.Client
}

// NewClient builds an orders client over the shared API transport.
func NewClient(api *httpapi.Client) (*Client, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &Client{api: api}, nil
}

// Create posts the order payload and returns the server's acknowledgment.
func (c *Client) Create(ctx context.Context, payload OrderPayload) (OrderResponse, error) {
	var resp OrderResponse
	if err := c.api.Post(ctx, "/orders/", payload, &resp); err != nil {
		return OrderResponse{}, err
	}
	return resp, nil
}
