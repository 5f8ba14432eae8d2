package catalog

import (
	"context"
	"net/url"
	"strconv"

	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/httpapi"
)

// Client fetches the product catalog from the storefront backend.
type Client struct {
	api *httpapi.Client
}

// NewClient wires the catalog client.
func NewClient(api *httpapi.Client) (*Client, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &Client{api: api}, nil
}

// List fetches products; limit <= 0 leaves the server default in place.
func (c *Client) List(ctx context.Context, limit int) ([]Product, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}

	var products []Product
	if err := c.api.Get(ctx, "/products/", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}
