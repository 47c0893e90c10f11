package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public CoinGecko API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// FallbackPrice is the fixed USD price callers substitute when the feed
// is unreachable and no last-known price exists.
const FallbackPrice = 30000.0

// Client fetches BTC/USD prices from the CoinGecko API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a price feed client. An empty baseURL selects the
// public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// simplePriceResponse represents the /simple/price API response
type simplePriceResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}

// historyResponse represents the /coins/bitcoin/history API response
type historyResponse struct {
	MarketData *struct {
		CurrentPrice struct {
			USD float64 `json:"usd"`
		} `json:"current_price"`
	} `json:"market_data"`
}

// CurrentPrice returns the current BTC spot price in USD.
func (c *Client) CurrentPrice(ctx context.Context) (float64, error) {
	apiURL := fmt.Sprintf("%s/simple/price?ids=bitcoin&vs_currencies=usd", c.baseURL)

	var resp simplePriceResponse
	if err := c.get(ctx, apiURL, &resp); err != nil {
		return 0, err
	}
	if resp.Bitcoin.USD <= 0 {
		return 0, fmt.Errorf("feed returned no usd price")
	}
	return resp.Bitcoin.USD, nil
}

// HistoricalPrice returns the BTC price in USD on the given date.
func (c *Client) HistoricalPrice(ctx context.Context, date time.Time) (float64, error) {
	params := url.Values{}
	// CoinGecko wants DD-MM-YYYY for history lookups.
	params.Set("date", date.Format("02-01-2006"))

	apiURL := fmt.Sprintf("%s/coins/bitcoin/history?%s", c.baseURL, params.Encode())

	var resp historyResponse
	if err := c.get(ctx, apiURL, &resp); err != nil {
		return 0, err
	}
	if resp.MarketData == nil || resp.MarketData.CurrentPrice.USD <= 0 {
		return 0, fmt.Errorf("no historical price data for %s", date.Format("2006-01-02"))
	}
	return resp.MarketData.CurrentPrice.USD, nil
}

func (c *Client) get(ctx context.Context, apiURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
