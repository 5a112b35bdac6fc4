package card

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
		CardGateway: &config.CardGatewayConfig{
			SecretKey: "sk_test_123",
			BaseURL:   gatewayURL,
		},
	})
	require.NoError(t, err)

	return provider
}

func TestNewProvider_RequiresSecretKey(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	assert.Error(t, err)

	_, err = NewProvider(&config.Config{CardGateway: &config.CardGatewayConfig{BaseURL: "https://api.example.com"}})
	assert.Error(t, err)
}

func TestProvider_Initiate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "tran-1", r.PostForm.Get("metadata[tran_id]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	initiation, err := provider.Initiate(context.Background(), service.InitiateRequest{
		TranID:         "tran-1",
		AmountCents:    500,
		Currency:       "usd",
		RequesterEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", initiation.ClientSecret)
	assert.Empty(t, initiation.RedirectURL)
}

func TestProvider_Initiate_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := newTestProvider(t, server.URL)

	_, err := provider.Initiate(context.Background(), service.InitiateRequest{TranID: "tran-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestProvider_Verify_Unsupported(t *testing.T) {
	provider := newTestProvider(t, "https://api.example.com")

	_, err := provider.Verify(context.Background(), "tran-1")
	assert.ErrorIs(t, err, service.ErrVerifyUnsupported)
}

func TestProvider_TrustModel(t *testing.T) {
	provider := newTestProvider(t, "https://api.example.com")
	assert.Equal(t, service.TrustClientAsserted, provider.TrustModel())
	assert.Equal(t, "card", provider.Name())
}
