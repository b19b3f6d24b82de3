// Package quotes provides a client for the Yahoo Finance quoteSummary
// API, used as the upstream source of current instrument prices.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/model"
)

var (
	// ErrNoQuote means the provider knows no instrument for the ticker
	// on any probed exchange.
	ErrNoQuote = errors.New("no quote for ticker")
	// ErrUnavailable means the provider could not be reached or answered
	// with an error; the previous price stays in effect.
	ErrUnavailable = errors.New("quote provider unavailable")
)

// Yahoo throttles default Go user agents aggressively, so requests carry
// a browser-looking one.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/88.0.4324.104 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:84.0) Gecko/20100101 Firefox/84.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/75.0.3770.100 Safari/537.36",
}

// exchangeSuffixes are probed in order until one resolves; the bare
// symbol first, then the Moscow Exchange listing.
var exchangeSuffixes = []string{"", ".ME"}

// Client calls the Yahoo Finance quoteSummary endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a quotes client. Every request is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				Symbol             string `json:"symbol"`
				ShortName          string `json:"shortName"`
				Currency           string `json:"currency"`
				CurrencySymbol     string `json:"currencySymbol"`
				RegularMarketPrice struct {
					Raw float64 `json:"raw"`
				} `json:"regularMarketPrice"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Fetch returns the current price for ticker. Exchange suffixes are
// tried in order; the first instrument that resolves wins. A ticker
// unknown on every exchange yields ErrNoQuote.
func (c *Client) Fetch(ctx context.Context, ticker string) (model.Amount, error) {
	var lastErr error

	for _, suffix := range exchangeSuffixes {
		amount, err := c.fetchSymbol(ctx, ticker+suffix)
		if err == nil {
			return amount, nil
		}
		if !errors.Is(err, ErrNoQuote) {
			lastErr = err
		}
	}

	if lastErr != nil {
		return model.Amount{}, lastErr
	}

	return model.Amount{}, fmt.Errorf("%w: %s", ErrNoQuote, ticker)
}

func (c *Client) fetchSymbol(ctx context.Context, symbol string) (model.Amount, error) {
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price", c.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Amount{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Amount{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Amount{}, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return model.Amount{}, fmt.Errorf("%w: status %s", ErrUnavailable, resp.Status)
	}

	var decoded quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return model.Amount{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if decoded.QuoteSummary.Error != nil || len(decoded.QuoteSummary.Result) == 0 {
		return model.Amount{}, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}

	price := decoded.QuoteSummary.Result[0].Price
	if price.Currency == "" {
		return model.Amount{}, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}

	return model.Amount{
		Value:          price.RegularMarketPrice.Raw,
		Currency:       price.Currency,
		CurrencySymbol: price.CurrencySymbol,
	}, nil
}
