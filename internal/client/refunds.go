package client

import (
	"context"
	"fmt"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const refundsPath = "/v2/refunds"

// RefundsClient implements moip.RefundsClient.
type RefundsClient struct {
	httpClient *http.Client
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *http.Client) *RefundsClient {
	return &RefundsClient{
		httpClient: httpClient,
	}
}

// RefundPayment implements moip.RefundsClient.RefundPayment. A nil request
// refunds the full amount.
func (c *RefundsClient) RefundPayment(ctx context.Context, paymentID string, request *moip.RefundRequest) (*moip.Refund, error) {
	return c.create(ctx, paymentsPath, paymentID, request, "refunding payment")
}

// RefundOrder implements moip.RefundsClient.RefundOrder.
func (c *RefundsClient) RefundOrder(ctx context.Context, orderID string, request *moip.RefundRequest) (*moip.Refund, error) {
	return c.create(ctx, ordersPath, orderID, request, "refunding order")
}

func (c *RefundsClient) create(ctx context.Context, collection, id string, request *moip.RefundRequest, operation string) (*moip.Refund, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	if request == nil {
		request = &moip.RefundRequest{}
	}

	var refund moip.Refund

	_, err := c.httpClient.Post(ctx, resourcePath(collection, id)+"/refunds", request, &refund)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return &refund, nil
}

// Get implements moip.RefundsClient.Get.
func (c *RefundsClient) Get(ctx context.Context, id string) (*moip.Refund, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var refund moip.Refund

	_, err := c.httpClient.Get(ctx, resourcePath(refundsPath, id), nil, &refund)
	if err != nil {
		return nil, fmt.Errorf("getting refund: %w", err)
	}

	return &refund, nil
}

// ListForPayment implements moip.RefundsClient.ListForPayment.
func (c *RefundsClient) ListForPayment(ctx context.Context, paymentID string) (*moip.RefundList, error) {
	if paymentID == "" {
		return nil, moip.ErrIDRequired
	}

	var list moip.RefundList

	_, err := c.httpClient.Get(ctx, resourcePath(paymentsPath, paymentID)+"/refunds", nil, &list)
	if err != nil {
		return nil, fmt.Errorf("listing refunds: %w", err)
	}

	return &list, nil
}
