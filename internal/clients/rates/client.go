package rates

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/finance-app/internal/logger"
)

const (
	latestPath         = "/latest"
	apiKeyParam        = "apikey"
	currenciesParam    = "currencies"
	baseCurrencyParam  = "base_currency"
	defaultHTTPTimeout = 10 * time.Second
)

type config interface {
	ApiKey() string
	BaseUrl() string
}

// Client talks to a freecurrencyapi-compatible exchange-rate endpoint.
type Client struct {
	apiKey  string
	baseUrl string
	client  *http.Client
}

type latestResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

func New(cfg config) *Client {
	return &Client{
		apiKey:  cfg.ApiKey(),
		baseUrl: cfg.BaseUrl(),
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// GetRates returns base-relative rates for the requested currency codes.
func (c *Client) GetRates(ctx context.Context, base string, symbols []string) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+latestPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build rates request")
	}

	q := req.URL.Query()
	q.Add(apiKeyParam, c.apiKey)
	q.Add(baseCurrencyParam, base)
	q.Add(currenciesParam, strings.Join(symbols, ","))
	req.URL.RawQuery = q.Encode()

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request rates")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read rates response")
	}
	if res.StatusCode != http.StatusOK {
		logger.Warn("rates api returned non-200",
			zap.Int("status", res.StatusCode), zap.ByteString("body", body))
		return nil, errors.Errorf("rates api status %d", res.StatusCode)
	}

	var latest latestResponse
	if err = json.Unmarshal(body, &latest); err != nil {
		return nil, errors.Wrap(err, "unmarshalling rates response")
	}
	if len(latest.Data) == 0 {
		return nil, errors.New("rates api returned no data")
	}

	return latest.Data, nil
}
