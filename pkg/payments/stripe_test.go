package payments_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bistro/pkg/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *payments.StripeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
	})
	return payments.NewStripeProvider("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestStripeProvider_CreatePaymentIntent(t *testing.T) {
	var form url.Values
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1999,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	})

	secret, err := provider.CreatePaymentIntent(context.Background(), 1999, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
	assert.Equal(t, "1999", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
}

func TestStripeProvider_CreatePaymentIntentError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least $0.50 usd"}}`))
	})

	_, err := provider.CreatePaymentIntent(context.Background(), 10, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create payment intent")
}
