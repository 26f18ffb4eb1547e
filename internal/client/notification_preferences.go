package client

import (
	"context"
	"fmt"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

const notificationPreferencesPath = "/v2/preferences/notifications"

// NotificationPreferencesClient implements moip.NotificationPreferencesClient.
type NotificationPreferencesClient struct {
	httpClient *http.Client
}

// NewNotificationPreferencesClient creates a new notification preferences client.
func NewNotificationPreferencesClient(httpClient *http.Client) *NotificationPreferencesClient {
	return &NotificationPreferencesClient{
		httpClient: httpClient,
	}
}

// Create implements moip.NotificationPreferencesClient.Create.
func (c *NotificationPreferencesClient) Create(ctx context.Context, request *moip.NotificationPreferenceRequest) (*moip.NotificationPreference, error) {
	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	var preference moip.NotificationPreference

	_, err := c.httpClient.Post(ctx, notificationPreferencesPath, request, &preference)
	if err != nil {
		return nil, fmt.Errorf("creating notification preference: %w", err)
	}

	return &preference, nil
}

// Get implements moip.NotificationPreferencesClient.Get.
func (c *NotificationPreferencesClient) Get(ctx context.Context, id string) (*moip.NotificationPreference, error) {
	if id == "" {
		return nil, moip.ErrIDRequired
	}

	var preference moip.NotificationPreference

	_, err := c.httpClient.Get(ctx, resourcePath(notificationPreferencesPath, id), nil, &preference)
	if err != nil {
		return nil, fmt.Errorf("getting notification preference: %w", err)
	}

	return &preference, nil
}

// List implements moip.NotificationPreferencesClient.List.
func (c *NotificationPreferencesClient) List(ctx context.Context) ([]moip.NotificationPreference, error) {
	var preferences []moip.NotificationPreference

	_, err := c.httpClient.Get(ctx, notificationPreferencesPath, nil, &preferences)
	if err != nil {
		return nil, fmt.Errorf("listing notification preferences: %w", err)
	}

	return preferences, nil
}

// Delete implements moip.NotificationPreferencesClient.Delete.
func (c *NotificationPreferencesClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return moip.ErrIDRequired
	}

	_, err := c.httpClient.Delete(ctx, resourcePath(notificationPreferencesPath, id), nil)
	if err != nil {
		return fmt.Errorf("deleting notification preference: %w", err)
	}

	return nil
}
