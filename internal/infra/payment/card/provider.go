// Package card integrates the card processor (gateway A). The processor
// hands the client a secret to complete the charge in the browser and sends
// the server no callback, so outcomes from this provider are client-asserted.
package card

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"matrimony/config"
	"matrimony/internal/domain/service"
)

const providerName = "card"

type provider struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewProvider is the constructor for the card processor client.
func NewProvider(cfg *config.Config) (service.PaymentProvider, error) {
	if cfg.CardGateway == nil || cfg.CardGateway.SecretKey == "" {
		return nil, errors.New("card gateway secret key must be provided")
	}

	timeout := cfg.CardGateway.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &provider{
		secretKey: cfg.CardGateway.SecretKey,
		baseURL:   strings.TrimSuffix(cfg.CardGateway.BaseURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Name identifies the provider in stored payment records.
func (p *provider) Name() string {
	return providerName
}

// TrustModel states how outcomes from this provider are established.
func (p *provider) TrustModel() service.TrustModel {
	return service.TrustClientAsserted
}

// intentResponse is the subset of the processor's answer we consume.
type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Initiate creates a payment intent and returns its client secret for the
// browser to complete the charge with.
func (p *provider) Initiate(ctx context.Context, req service.InitiateRequest) (*service.Initiation, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	form.Set("currency", req.Currency)
	form.Set("metadata[tran_id]", req.TranID)
	form.Set("receipt_email", req.RequesterEmail)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build payment intent request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("card gateway returned status %d", resp.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment intent response")
	}
	if intent.ClientSecret == "" {
		return nil, errors.New("card gateway returned no client secret")
	}

	return &service.Initiation{ClientSecret: intent.ClientSecret}, nil
}

// Verify is unsupported: the processor sends no server-to-server outcome.
func (p *provider) Verify(_ context.Context, _ string) (*service.Verification, error) {
	return nil, service.ErrVerifyUnsupported
}
