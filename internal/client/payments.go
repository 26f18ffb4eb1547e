package client

import (
	"context"
	"fmt"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const paymentsPath = "/v2/payments"

// PaymentsClient implements moip.PaymentsClient.
type PaymentsClient struct {
	httpClient *http.Client
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return &PaymentsClient{
		httpClient: httpClient,
	}
}

// Create implements moip.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, orderID string, request *moip.PaymentRequest) (*moip.Payment, error) {
	if orderID == "" {
		return nil, moip.ErrIDRequired
	}

	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	var payment moip.Payment

	_, err := c.httpClient.Post(ctx, resourcePath(ordersPath, orderID)+"/payments", request, &payment)
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return &payment, nil
}

// Get implements moip.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id string) (*moip.Payment, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var payment moip.Payment

	_, err := c.httpClient.Get(ctx, resourcePath(paymentsPath, id), nil, &payment)
	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return &payment, nil
}

// Capture implements moip.PaymentsClient.Capture.
func (c *PaymentsClient) Capture(ctx context.Context, id string) (*moip.Payment, error) {
	return c.action(ctx, id, "capture", "capturing payment")
}

// CancelPreAuthorized implements moip.PaymentsClient.CancelPreAuthorized.
func (c *PaymentsClient) CancelPreAuthorized(ctx context.Context, id string) (*moip.Payment, error) {
	return c.action(ctx, id, "void", "cancelling pre-authorized payment")
}

func (c *PaymentsClient) action(ctx context.Context, id, action, operation string) (*moip.Payment, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var payment moip.Payment

	_, err := c.httpClient.Post(ctx, resourcePath(paymentsPath, id)+"/"+action, nil, &payment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return &payment, nil
}
