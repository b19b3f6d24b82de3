package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quoteBody = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"symbol": "MOEX.ME",
				"shortName": "Moscow Exchange",
				"currency": "RUB",
				"currencySymbol": "₽",
				"regularMarketPrice": {"raw": 127.5, "fmt": "127.50"}
			}
		}],
		"error": null
	}
}`

const noQuoteBody = `{
	"quoteSummary": {
		"result": null,
		"error": {"code": "Not Found", "description": "Quote not found for ticker symbol"}
	}
}`

func TestFetch_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/finance/quoteSummary/MOEX", r.URL.Path)
		assert.Equal(t, "price", r.URL.Query().Get("modules"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, quoteBody)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	amount, err := client.Fetch(context.Background(), "MOEX")
	require.NoError(t, err)
	assert.Equal(t, 127.5, amount.Value)
	assert.Equal(t, "RUB", amount.Currency)
	assert.Equal(t, "₽", amount.CurrencySymbol)
}

func TestFetch_SuffixFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v10/finance/quoteSummary/SBER" {
			fmt.Fprint(w, noQuoteBody)
			return
		}
		require.Equal(t, "/v10/finance/quoteSummary/SBER.ME", r.URL.Path)
		fmt.Fprint(w, quoteBody)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	amount, err := client.Fetch(context.Background(), "SBER")
	require.NoError(t, err)
	assert.Equal(t, 127.5, amount.Value)
}

func TestFetch_UnknownTicker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, noQuoteBody)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.Fetch(context.Background(), "ZZZZZ")
	assert.ErrorIs(t, err, ErrNoQuote)
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.Fetch(context.Background(), "MOEX")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, quoteBody)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond)

	_, err := client.Fetch(context.Background(), "MOEX")
	assert.ErrorIs(t, err, ErrUnavailable)
}
