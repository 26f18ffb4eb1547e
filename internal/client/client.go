// Package client implements the moip resource clients on top of the HTTP
// pipeline.
package client

import (
	"net/url"

	"github.com/moip/moip-sdk-go/internal/auth"
	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

// Client implements the moip.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     moip.Logger

	// Resource clients
	orders                  moip.OrdersClient
	payments                moip.PaymentsClient
	customers               moip.CustomersClient
	refunds                 moip.RefundsClient
	escrows                 moip.EscrowsClient
	notificationPreferences moip.NotificationPreferencesClient
	webhooks                moip.WebhooksClient
	accounts                moip.AccountsClient
	connect                 moip.ConnectClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *moip.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithTimeouts(config.ConnectTimeout, config.ReadTimeout),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// New creates a new Moip API client.
func New(config *moip.Config) (*Client, error) {
	if config == nil {
		return nil, moip.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, moip.ErrEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, auth.FromConfig(config), createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.orders = NewOrdersClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.escrows = NewEscrowsClient(c.httpClient)
	c.notificationPreferences = NewNotificationPreferencesClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
	c.connect = NewConnectClient(c.httpClient)
}

// BaseURL returns the API endpoint of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// Orders implements moip.Client.Orders.
func (c *Client) Orders() moip.OrdersClient {
	return c.orders
}

// Payments implements moip.Client.Payments.
func (c *Client) Payments() moip.PaymentsClient {
	return c.payments
}

// Customers implements moip.Client.Customers.
func (c *Client) Customers() moip.CustomersClient {
	return c.customers
}

// Refunds implements moip.Client.Refunds.
func (c *Client) Refunds() moip.RefundsClient {
	return c.refunds
}

// Escrows implements moip.Client.Escrows.
func (c *Client) Escrows() moip.EscrowsClient {
	return c.escrows
}

// NotificationPreferences implements moip.Client.NotificationPreferences.
func (c *Client) NotificationPreferences() moip.NotificationPreferencesClient {
	return c.notificationPreferences
}

// Webhooks implements moip.Client.Webhooks.
func (c *Client) Webhooks() moip.WebhooksClient {
	return c.webhooks
}

// Accounts implements moip.Client.Accounts.
func (c *Client) Accounts() moip.AccountsClient {
	return c.accounts
}

// Connect implements moip.Client.Connect.
func (c *Client) Connect() moip.ConnectClient {
	return c.connect
}

// resourcePath joins a collection path and an escaped id.
func resourcePath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
