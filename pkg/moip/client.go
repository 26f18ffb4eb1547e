package moip

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Base URLs of the Moip API.
const (
	Production        = "https://api.moip.com.br"
	Sandbox           = "https://sandbox.moip.com.br"
	ConnectProduction = "https://connect.moip.com.br"
	ConnectSandbox    = "https://connect-sandbox.moip.com.br"
)

// Authenticator decorates an outgoing request with credentials.
type Authenticator interface {
	Authenticate(req *http.Request) error
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(req *http.Request) error

// Authenticate calls f(req).
func (f AuthenticatorFunc) Authenticate(req *http.Request) error {
	return f(req)
}

// OrdersClient manages orders.
type OrdersClient interface {
	Create(ctx context.Context, request *OrderRequest) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, params *ListParams) (*OrderList, error)
}

// PaymentsClient manages payments.
type PaymentsClient interface {
	Create(ctx context.Context, orderID string, request *PaymentRequest) (*Payment, error)
	Get(ctx context.Context, id string) (*Payment, error)
	Capture(ctx context.Context, id string) (*Payment, error)
	CancelPreAuthorized(ctx context.Context, id string) (*Payment, error)
}

// CustomersClient manages customers and their stored cards.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	AddCreditCard(ctx context.Context, customerID string, request *FundingInstrumentRequest) (*FundingInstrument, error)
	DeleteCreditCard(ctx context.Context, creditCardID string) error
}

// RefundsClient manages refunds.
type RefundsClient interface {
	RefundPayment(ctx context.Context, paymentID string, request *RefundRequest) (*Refund, error)
	RefundOrder(ctx context.Context, orderID string, request *RefundRequest) (*Refund, error)
	Get(ctx context.Context, id string) (*Refund, error)
	ListForPayment(ctx context.Context, paymentID string) (*RefundList, error)
}

// EscrowsClient releases amounts held in custody.
type EscrowsClient interface {
	Release(ctx context.Context, id string) (*Escrow, error)
}

// NotificationPreferencesClient manages notification targets.
type NotificationPreferencesClient interface {
	Create(ctx context.Context, request *NotificationPreferenceRequest) (*NotificationPreference, error)
	Get(ctx context.Context, id string) (*NotificationPreference, error)
	List(ctx context.Context) ([]NotificationPreference, error)
	Delete(ctx context.Context, id string) error
}

// WebhooksClient lists notification deliveries.
type WebhooksClient interface {
	List(ctx context.Context, params *WebhookListParams) (*WebhookList, error)
}

// AccountsClient manages Moip accounts.
type AccountsClient interface {
	Create(ctx context.Context, request *AccountRequest) (*Account, error)
	Get(ctx context.Context, id string) (*Account, error)
	Exists(ctx context.Context, taxDocument string) (bool, error)
}

// ConnectClient runs the Moip Connect OAuth flow. Use it with a client built
// for a Connect base URL.
type ConnectClient interface {
	AuthorizeURL(clientID, redirectURI string, scopes ...string) string
	Token(ctx context.Context, request *TokenRequest) (*AccessToken, error)
	Refresh(ctx context.Context, request *RefreshRequest) (*AccessToken, error)
	TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource
}

// Client provides access to all resource clients.
type Client interface {
	Orders() OrdersClient
	Payments() PaymentsClient
	Customers() CustomersClient
	Refunds() RefundsClient
	Escrows() EscrowsClient
	NotificationPreferences() NotificationPreferencesClient
	Webhooks() WebhooksClient
	Accounts() AccountsClient
	Connect() ConnectClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a moip.Client.
//
// # Authentication precedence
//
// The concrete client (see pkg/moipclient) selects credentials in this order:
//  1. Authenticator: used as is.
//  2. TokenSource: each request carries "OAuth <token>" from the source.
//  3. AccessToken: a static OAuth token.
//  4. Token and Key: HTTP basic authentication.
//  5. No credentials: requests are sent without authentication.
//
// # Timeouts
//
// ConnectTimeout bounds dialing and the TLS handshake. ReadTimeout bounds the
// wait for response headers and every stall while reading the body. Zero disables the bound. Callers can still cancel
// a call through its context.
type Config struct {
	// APIEndpoint: base URL, one of Production, Sandbox, ConnectProduction,
	// ConnectSandbox or any other URL. Paths are appended verbatim.
	APIEndpoint string

	// Token and Key: basic authentication credentials.
	Token string
	Key   string
	// AccessToken: static OAuth access token.
	AccessToken string
	// TokenSource: dynamic OAuth access tokens.
	TokenSource oauth2.TokenSource
	// Authenticator: overrides every other credential field.
	Authenticator Authenticator

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the User-Agent derived from build metadata.
	UserAgent string
	// HTTPClient: replaces the pooled transport. ConnectTimeout and the TLS
	// floor are not applied to it. ReadTimeout still bounds body reads.
	HTTPClient *http.Client
}
