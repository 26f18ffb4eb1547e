package client

import (
	"context"
	"fmt"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const (
	customersPath          = "/v2/customers"
	fundingInstrumentsPath = "/v2/fundinginstruments"
)

// CustomersClient implements moip.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
	}
}

// Create implements moip.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *moip.CustomerRequest) (*moip.Customer, error) {
	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	var customer moip.Customer

	_, err := c.httpClient.Post(ctx, customersPath, request, &customer)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return &customer, nil
}

// Get implements moip.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) (*moip.Customer, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var customer moip.Customer

	_, err := c.httpClient.Get(ctx, resourcePath(customersPath, id), nil, &customer)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return &customer, nil
}

// AddCreditCard implements moip.CustomersClient.AddCreditCard.
func (c *CustomersClient) AddCreditCard(ctx context.Context, customerID string, request *moip.FundingInstrumentRequest) (*moip.FundingInstrument, error) {
	if customerID == "" {
		return nil, moip.ErrIDRequired
	}

	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	var instrument moip.FundingInstrument

	_, err := c.httpClient.Post(ctx, resourcePath(customersPath, customerID)+"/fundinginstruments", request, &instrument)
	if err != nil {
		return nil, fmt.Errorf("adding credit card: %w", err)
	}

	return &instrument, nil
}

// DeleteCreditCard implements moip.CustomersClient.DeleteCreditCard.
func (c *CustomersClient) DeleteCreditCard(ctx context.Context, creditCardID string) error {
	if creditCardID == "" {
		return moip.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, resourcePath(fundingInstrumentsPath, creditCardID), nil)
	if err != nil {
		return fmt.Errorf("deleting credit card: %w", err)
	}

	return nil
}
