package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cataleon/cataleon/app/models/other"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// Cache key for the USD to INR conversion rate.
	KeyExchangeRate = "fx:usd:inr"
)

var (
	TTLExchangeRate = 3600 * time.Second

	// DefaultUSDToINR is served when both the cache and the upstream API are
	// unavailable, so price views degrade instead of blocking.
	DefaultUSDToINR = decimal.NewFromFloat(83.50)
)

type ExchangeRateClient interface {
	// USDToINR never fails: upstream errors are logged and the last cached or
	// the default rate is returned instead.
	USDToINR(ctx context.Context) decimal.Decimal
}

type exchangeRateService struct {
	client  *http.Client
	baseURL string
	rdb     *redis.Client
}

// NewExchangeRateClient builds a client over the public exchange-rate API.
// rdb may be nil, which disables caching.
func NewExchangeRateClient(baseURL string, rdb *redis.Client) ExchangeRateClient {
	return &exchangeRateService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		rdb:     rdb,
	}
}

func (s *exchangeRateService) USDToINR(ctx context.Context) decimal.Decimal {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, KeyExchangeRate).Result()
		if err == nil {
			if rate, parseErr := decimal.NewFromString(cached); parseErr == nil {
				return rate
			}
		} else if err != redis.Nil {
			log.Printf("USDToINR: cache read failed: %v", err)
		}
	}

	rate, err := s.fetchRate(ctx)
	if err != nil {
		log.Printf("USDToINR: upstream fetch failed: %v. Falling back to default rate %s.", err, DefaultUSDToINR)
		return DefaultUSDToINR
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, KeyExchangeRate, rate.String(), TTLExchangeRate).Err(); err != nil {
			log.Printf("USDToINR: cache write failed: %v", err)
		}
	}

	return rate
}

func (s *exchangeRateService) fetchRate(ctx context.Context) (decimal.Decimal, error) {
	fullURL := s.baseURL + "/latest/USD"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("exchange API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResponse other.ExchangeRateResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse exchange response: %w", err)
	}

	inr, ok := apiResponse.Rates["INR"]
	if !ok || inr <= 0 {
		return decimal.Zero, fmt.Errorf("exchange response missing INR rate")
	}

	return decimal.NewFromFloat(inr).Round(4), nil
}
