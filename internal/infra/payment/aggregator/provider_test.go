package aggregator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"matrimony/config"
	"matrimony/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, gatewayURL string) service.PaymentProvider {
	provider, err := NewProvider(&config.Config{
		Aggregator: &config.AggregatorConfig{
			StoreID:       "store-1",
			StorePassword: "secret",
			BaseURL:       gatewayURL,
			SuccessURL:    "https://api.example.com/payments/callback/success",
			FailURL:       "https://api.example.com/payments/callback/fail",
			CancelURL:     "https://api.example.com/payments/callback/cancel",
		},
	})
	require.NoError(t, err)

	return provider
}

func TestNewProvider_RequiresCredentials(t *testing.T) {
	_, err := NewProvider(&config.Config{Aggregator: &config.AggregatorConfig{StoreID: "store-1"}})
	assert.Error(t, err)

	_, err = NewProvider(&config.Config{})
	assert.Error(t, err)
}

func TestProvider_Initiate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/gwprocess/v4/api.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "store-1", r.PostForm.Get("store_id"))
		assert.Equal(t, "tran-1", r.PostForm.Get("tran_id"))
		assert.Equal(t, "5.00", r.PostForm.Get("total_amount"))
		assert.Equal(t, "USD", r.PostForm.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://pay.example.com/session/abc"}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	initiation, err := provider.Initiate(context.Background(), service.InitiateRequest{
		TranID:         "tran-1",
		AmountCents:    500,
		Currency:       "usd",
		RequesterEmail: "buyer@example.com",
		ProductName:    "Contact information of biodata Seven",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", initiation.RedirectURL)
	assert.Empty(t, initiation.ClientSecret)
}

func TestProvider_Initiate_Refused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"FAILED","failedreason":"Store Credential Error"}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	_, err := provider.Initiate(context.Background(), service.InitiateRequest{
		TranID:      "tran-1",
		AmountCents: 500,
		Currency:    "usd",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Store Credential Error")
}

func TestProvider_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/validator/api/merchantTransIDvalidationAPI.php", r.URL.Path)
		assert.Equal(t, "tran-1", r.URL.Query().Get("tran_id"))
		assert.Equal(t, "store-1", r.URL.Query().Get("store_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"VALID","tran_id":"tran-1","card_type":"BKASH-BKash"}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	verification, err := provider.Verify(context.Background(), "tran-1")
	require.NoError(t, err)
	assert.True(t, verification.Valid)
	assert.Equal(t, "BKASH-BKash", verification.Method)
}

func TestProvider_Verify_InvalidTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"INVALID_TRANSACTION"}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	verification, err := provider.Verify(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, verification.Valid)
}

func TestProvider_TrustModel(t *testing.T) {
	provider := newTestProvider(t, "https://sandbox.example.com")
	assert.Equal(t, service.TrustServerVerified, provider.TrustModel())
	assert.Equal(t, "aggregator", provider.Name())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "5.00", formatAmount(500))
	assert.Equal(t, "5.05", formatAmount(505))
	assert.Equal(t, "0.99", formatAmount(99))
	assert.Equal(t, "123.45", formatAmount(12345))
}
