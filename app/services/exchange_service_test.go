package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSDToINRFetchesUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"INR":83.12,"EUR":0.92}}`))
	}))
	defer srv.Close()

	client := NewExchangeRateClient(srv.URL, nil)
	rate := client.USDToINR(context.Background())
	assert.True(t, rate.Equal(decimal.RequireFromString("83.12")), "rate %s", rate)
}

func TestUSDToINRFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewExchangeRateClient(srv.URL, nil)
	rate := client.USDToINR(context.Background())
	assert.True(t, rate.Equal(DefaultUSDToINR), "rate %s", rate)
}

func TestUSDToINRFallsBackOnMissingINR(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}))
	defer srv.Close()

	client := NewExchangeRateClient(srv.URL, nil)
	rate := client.USDToINR(context.Background())
	assert.True(t, rate.Equal(DefaultUSDToINR), "rate %s", rate)
}

func TestUSDToINRFallsBackOnUnreachableHost(t *testing.T) {
	client := NewExchangeRateClient("http://127.0.0.1:1", nil)
	rate := client.USDToINR(context.Background())
	assert.True(t, rate.Equal(DefaultUSDToINR), "rate %s", rate)
}
