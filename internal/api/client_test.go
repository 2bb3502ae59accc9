// internal/api/client_test.go
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/config"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(&config.Config{API: config.APIConfig{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
		UserAgent:      "storefront-client/test",
	}})
	require.NoError(t, err)
	return client
}

func TestErrorBodyNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Insufficient stock for this product"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCart(context.Background())

	require.Error(t, err)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "Insufficient stock for this product", remoteErr.Message)
	assert.Equal(t, "Insufficient stock for this product", UserMessage(err, "fallback"))
}

func TestErrorKeyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Your account has been blocked"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCart(context.Background())

	assert.Equal(t, "Your account has been blocked", UserMessage(err, "fallback"))
}

func TestEmptyErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCart(context.Background())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "request failed", remoteErr.Message)
}

func TestTransportFailureNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCart(context.Background())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Zero(t, remoteErr.StatusCode)
	assert.Equal(t, "service unavailable", remoteErr.Message)
}

func TestInvalidJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.GetCart(context.Background())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "invalid server response", remoteErr.Message)
}

func TestListProductsQueryEncoding(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"products":[],"total":0,"totalPages":0}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.ListProducts(context.Background(), ProductQuery{
		Page:      2,
		Limit:     12,
		SortBy:    "price_low_high",
		Category:  "Audio",
		PriceMin:  10,
		PriceMax:  500,
		MinRating: 4,
		Search:    "lamp",
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "/products", captured.URL.Path)
	values := captured.URL.Query()
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "12", values.Get("limit"))
	assert.Equal(t, "price_low_high", values.Get("sortBy"))
	assert.Equal(t, "Audio", values.Get("category"))
	assert.Equal(t, "10-500", values.Get("priceRange"))
	assert.Equal(t, "4", values.Get("rating"))
	assert.Equal(t, "lamp", values.Get("search"))
}

func TestRequestHeaders(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		_, _ = w.Write([]byte(`{"items":[],"total":0,"itemCount":0}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	client.SetToken("session-token")

	_, err := client.GetCart(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer session-token", captured.Get("Authorization"))
	assert.Equal(t, "storefront-client/test", captured.Get("User-Agent"))
	assert.Equal(t, "application/json", captured.Get("Accept"))
	assert.NotEmpty(t, captured.Get("X-Request-ID"))
}

func TestClearTokenRemovesAuthorization(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		_, _ = w.Write([]byte(`{"items":[],"total":0,"itemCount":0}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	client.SetToken("session-token")
	client.ClearToken()

	_, err := client.GetCart(context.Background())
	require.NoError(t, err)

	assert.Empty(t, captured.Get("Authorization"))
}
