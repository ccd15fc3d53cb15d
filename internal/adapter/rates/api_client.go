package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// APIClient fetches exchange rates from an exchangerate-api.com style
// endpoint: GET {base}/{key}/latest/{from} returns a conversion_rates
// map keyed by target currency.
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewAPIClient creates a new APIClient.
func NewAPIClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ratesResponse is the provider's wire format. Rates are decoded as
// json.Number so no precision is lost to float64.
type ratesResponse struct {
	Result          string                 `json:"result"`
	BaseCode        string                 `json:"base_code"`
	ConversionRates map[string]json.Number `json:"conversion_rates"`
	ErrorType       string                 `json:"error-type,omitempty"`
}

// Rate fetches the current exchange rate for a currency pair.
func (c *APIClient) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, from)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Decimal{}, fmt.Errorf("rate API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to decode rate response: %w", err)
	}

	if apiResp.Result != "success" {
		return decimal.Decimal{}, fmt.Errorf("rate API returned result=%s error=%s", apiResp.Result, apiResp.ErrorType)
	}

	raw, ok := apiResp.ConversionRates[to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("currency %s not present in rate response", to)
	}

	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rate API returned malformed rate %q: %w", raw, err)
	}

	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("rate API returned non-positive rate %s for %s->%s", rate, from, to)
	}

	c.logger.Debug().
		Str("from", from).
		Str("to", to).
		Stringer("rate", rate).
		Msg("fetched exchange rate")

	return rate, nil
}
