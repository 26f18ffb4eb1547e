package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const webhooksPath = "/v2/webhooks"

// WebhooksClient implements moip.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// List implements moip.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, params *moip.WebhookListParams) (*moip.WebhookList, error) {
	var list moip.WebhookList

	_, err := c.httpClient.Get(ctx, webhooksPath, webhookQuery(params), &list)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return &list, nil
}

func webhookQuery(params *moip.WebhookListParams) url.Values {
	values := url.Values{}
	if params == nil {
		return values
	}

	if params.ResourceID != "" {
		values.Set("resourceId", params.ResourceID)
	}

	if params.Event != "" {
		values.Set("event", params.Event)
	}

	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}

	if params.Offset > 0 {
		values.Set("offset", strconv.Itoa(params.Offset))
	}

	return values
}
