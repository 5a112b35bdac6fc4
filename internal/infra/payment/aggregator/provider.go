// Package aggregator integrates the redirect-style regional payment
// aggregator (gateway B). The server sends the buyer to a hosted checkout
// page and later receives success/cancel/fail callbacks matched by
// transaction ID; success outcomes are re-verified with the gateway's
// validation API before any state transition.
package aggregator

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

const providerName = "aggregator"

// StatusValid is the gateway's code for an authentic, settled transaction.
const StatusValid = "VALID"

type provider struct {
	storeID       string
	storePassword string
	baseURL       string
	successURL    string
	failURL       string
	cancelURL     string
	client        *http.Client
}

// NewProvider is the constructor for the aggregator client.
func NewProvider(cfg *config.Config) (service.PaymentProvider, error) {
	if cfg.Aggregator == nil || cfg.Aggregator.StoreID == "" || cfg.Aggregator.StorePassword == "" {
		return nil, errors.New("aggregator store credentials must be provided")
	}

	timeout := cfg.Aggregator.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &provider{
		storeID:       cfg.Aggregator.StoreID,
		storePassword: cfg.Aggregator.StorePassword,
		baseURL:       strings.TrimSuffix(cfg.Aggregator.BaseURL, "/"),
		successURL:    cfg.Aggregator.SuccessURL,
		failURL:       cfg.Aggregator.FailURL,
		cancelURL:     cfg.Aggregator.CancelURL,
		client:        &http.Client{Timeout: timeout},
	}, nil
}

// Name identifies the provider in stored payment records.
func (p *provider) Name() string {
	return providerName
}

// TrustModel states how outcomes from this provider are established.
func (p *provider) TrustModel() service.TrustModel {
	return service.TrustServerVerified
}

// initResponse is the subset of the gateway's session answer we consume.
type initResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// Initiate opens a checkout session and returns the hosted page URL to
// redirect the buyer to.
func (p *provider) Initiate(ctx context.Context, req service.InitiateRequest) (*service.Initiation, error) {
	form := url.Values{}
	form.Set("store_id", p.storeID)
	form.Set("store_passwd", p.storePassword)
	form.Set("tran_id", req.TranID)
	form.Set("total_amount", formatAmount(req.AmountCents))
	form.Set("currency", strings.ToUpper(req.Currency))
	form.Set("success_url", p.successURL)
	form.Set("fail_url", p.failURL)
	form.Set("cancel_url", p.cancelURL)
	form.Set("cus_email", req.RequesterEmail)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "service")
	form.Set("shipping_method", "NO")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/gwprocess/v4/api.php", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build checkout session request")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open checkout session")
	}
	defer resp.Body.Close()

	var session initResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session response")
	}
	if !strings.EqualFold(session.Status, "SUCCESS") || session.GatewayPageURL == "" {
		return nil, errors.Errorf("aggregator refused checkout session: %s", session.FailedReason)
	}

	return &service.Initiation{RedirectURL: session.GatewayPageURL}, nil
}

// validationResponse is the subset of the gateway's validation answer we consume.
type validationResponse struct {
	Status   string `json:"status"`
	TranID   string `json:"tran_id"`
	CardType string `json:"card_type"`
}

// Verify asks the gateway's validation API whether the transaction is
// authentic and settled.
func (p *provider) Verify(ctx context.Context, tranID string) (*service.Verification, error) {
	query := url.Values{}
	query.Set("tran_id", tranID)
	query.Set("store_id", p.storeID)
	query.Set("store_passwd", p.storePassword)
	query.Set("format", "json")

	endpoint := p.baseURL + "/validator/api/merchantTransIDvalidationAPI.php?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build validation request")
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate transaction")
	}
	defer resp.Body.Close()

	var validation validationResponse
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return nil, errors.Wrap(err, "failed to decode validation response")
	}

	return &service.Verification{
		Valid:  strings.EqualFold(validation.Status, StatusValid),
		Method: validation.CardType,
	}, nil
}

// formatAmount renders cents as the decimal string the gateway expects.
func formatAmount(cents int64) string {
	return strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}

	return strconv.FormatInt(n, 10)
}
