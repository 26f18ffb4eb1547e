package client

import (
	"context"
	"fmt"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const ordersPath = "/v2/orders"

// OrdersClient implements moip.OrdersClient.
type OrdersClient struct {
	httpClient *http.Client
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{
		httpClient: httpClient,
	}
}

// Create implements moip.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, request *moip.OrderRequest) (*moip.Order, error) {
	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	var order moip.Order

	_, err := c.httpClient.Post(ctx, ordersPath, request, &order)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return &order, nil
}

// Get implements moip.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string) (*moip.Order, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var order moip.Order

	_, err := c.httpClient.Get(ctx, resourcePath(ordersPath, id), nil, &order)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	return &order, nil
}

// List implements moip.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, params *moip.ListParams) (*moip.OrderList, error) {
	var list moip.OrderList

	_, err := c.httpClient.Get(ctx, ordersPath, params.ToValues(), &list)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return &list, nil
}
