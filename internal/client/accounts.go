package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const accountsPath = "/v2/accounts"

// AccountsClient implements moip.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// Create implements moip.AccountsClient.Create.
func (c *AccountsClient) Create(ctx context.Context, request *moip.AccountRequest) (*moip.Account, error) {
	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	if request.Person == nil || request.Person.TaxDocument == nil {
		return nil, moip.ErrTaxDocumentMissing
	}

	var account moip.Account

	_, err := c.httpClient.Post(ctx, accountsPath, request, &account)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return &account, nil
}

// Get implements moip.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, id string) (*moip.Account, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var account moip.Account

	_, err := c.httpClient.Get(ctx, resourcePath(accountsPath, id), nil, &account)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &account, nil
}

// Exists implements moip.AccountsClient.Exists. The API answers 200 when an
// account holds the tax document and 404 when none does.
func (c *AccountsClient) Exists(ctx context.Context, taxDocument string) (bool, error) {
	if taxDocument == "" {
		return false, moip.ErrTaxDocumentMissing
	}

	query := url.Values{"tax_document": []string{taxDocument}}

	_, err := c.httpClient.Get(ctx, accountsPath+"/exists", query, nil)
	if err != nil {
		if moip.IsNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("checking account existence: %w", err)
	}

	return true, nil
}
