package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport(t *testing.T) {
	t.Parallel()

	transport := newTransport(2*time.Second, 5*time.Second)
	require.NotNil(t, transport.TLSClientConfig)
	assert.Equal(t, uint16(tls.VersionTLS11), transport.TLSClientConfig.MinVersion)
	assert.Equal(t, 2*time.Second, transport.TLSHandshakeTimeout)
	assert.Equal(t, 5*time.Second, transport.ResponseHeaderTimeout)

	unbounded := newTransport(0, 0)
	assert.Zero(t, unbounded.TLSHandshakeTimeout)
	assert.Zero(t, unbounded.ResponseHeaderTimeout)
}

func TestNewClient_NeverRetries(t *testing.T) {
	t.Parallel()

	client := NewClient("https://sandbox.moip.com.br", nil)
	assert.Zero(t, client.httpClient.RetryMax)

	retry, err := client.httpClient.CheckRetry(context.Background(), &http.Response{StatusCode: 503}, nil)
	require.NoError(t, err)
	assert.False(t, retry)
}

func tlsServer(t *testing.T, minVersion, maxVersion uint16) (*httptest.Server, *x509.CertPool) {
	t.Helper()

	server := httptest.NewUnstartedServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{}`))
	}))
	server.TLS = &tls.Config{MinVersion: minVersion, MaxVersion: maxVersion} // #nosec G402 -- exercising the client floor
	server.StartTLS()
	t.Cleanup(server.Close)

	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())

	return server, pool
}

func pinnedClient(pool *x509.CertPool) *http.Client {
	transport := newTransport(time.Second, time.Second)
	transport.TLSClientConfig.RootCAs = pool

	return &http.Client{Transport: transport}
}

func TestTransport_TLSFloor(t *testing.T) {
	t.Parallel()

	t.Run("TLS 1.2 accepted", func(t *testing.T) {
		t.Parallel()

		server, pool := tlsServer(t, tls.VersionTLS12, tls.VersionTLS12)
		client := NewClient(server.URL, nil, WithHTTPClient(pinnedClient(pool)))

		resp, err := client.Get(context.Background(), "/", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("TLS 1.0 rejected", func(t *testing.T) {
		t.Parallel()

		server, pool := tlsServer(t, tls.VersionTLS10, tls.VersionTLS10)
		client := NewClient(server.URL, nil, WithHTTPClient(pinnedClient(pool)))

		_, err := client.Get(context.Background(), "/", nil, nil)
		require.Error(t, err)
		assert.True(t, moip.IsTransport(err))
	})
}
