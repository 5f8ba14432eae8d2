package assistant

import (
	"context"

	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/httpapi"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Client talks to the conversational backend.
type Client struct {
	api *httpapi.Client
}

// NewClient builds a chat client over the shared API transport.
func NewClient(api *httpapi.Client) (*Client, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &Client{api: api}, nil
}

// Send posts the user's message and returns the assistant's reply.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "message text is required")
	}
	var resp chatResponse
	if err := c.api.Post(ctx, "/chat/message", chatRequest{Message: text}, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}
