package client

import (
	"context"
	"fmt"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const escrowsPath = "/v2/escrows"

// EscrowsClient implements moip.EscrowsClient.
type EscrowsClient struct {
	httpClient *http.Client
}

// NewEscrowsClient creates a new escrows client.
func NewEscrowsClient(httpClient *http.Client) *EscrowsClient {
	return &EscrowsClient{
		httpClient: httpClient,
	}
}

// Release implements moip.EscrowsClient.Release.
func (c *EscrowsClient) Release(ctx context.Context, id string) (*moip.Escrow, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var escrow moip.Escrow

	_, err := c.httpClient.Post(ctx, resourcePath(escrowsPath, id)+"/release", nil, &escrow)
	if err != nil {
		return nil, fmt.Errorf("releasing escrow: %w", err)
	}

	return &escrow, nil
}
