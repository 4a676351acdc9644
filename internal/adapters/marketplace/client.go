// Package marketplace is the HTTP adapter for the Marketplace API, the
// upstream system of record for customer profiles, portfolio holdings,
// transactions and the asset catalog.
package marketplace

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/superapp/advisor-service/internal/domain/entities"
	domainerrors "github.com/superapp/advisor-service/internal/domain/errors"
	"github.com/superapp/advisor-service/pkg/metrics"
)

const (
	defaultTimeout = 5 * time.Second

	profileEndpoint      = "/api/v1/profile"
	holdingsEndpoint     = "/api/v1/portfolio/holdings"
	transactionsEndpoint = "/api/v1/transactions?limit=%d"
	assetsEndpoint       = "/api/marketplace/assets"

	customerIDHeader = "X-Customer-ID"

	transactionFetchLimit = 50
)

// Config holds marketplace connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the Marketplace API. All fetches share one circuit breaker;
// when it is open, callers get an error immediately and fall back to the
// documented default records.
type Client struct {
	config         Config
	httpClient     *http.Client
	circuitBreaker *gobreaker.CircuitBreaker
	logger         *zap.Logger
}

// NewClient creates a marketplace client.
func NewClient(config Config, logger *zap.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	httpClient := &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	st := gobreaker.Settings{
		Name:        "MarketplaceAPI",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Client{
		config:         config,
		httpClient:     httpClient,
		circuitBreaker: gobreaker.NewCircuitBreaker(st),
		logger:         logger,
	}
}

// envelope is the standard marketplace response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// get performs a GET through the circuit breaker and unwraps the data
// envelope.
func (c *Client) get(ctx context.Context, endpoint, customerID string) (json.RawMessage, error) {
	resultName := endpoint
	if idx := strings.IndexByte(resultName, '?'); idx >= 0 {
		resultName = resultName[:idx]
	}

	body, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if customerID != "" {
			req.Header.Set(customerIDHeader, customerID)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("marketplace request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("marketplace returned status %d for %s", resp.StatusCode, resultName)
		}

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		return raw, nil
	})
	if err != nil {
		metrics.MarketplaceRequests.WithLabelValues(resultName, "error").Inc()
		return nil, domainerrors.UpstreamError("marketplace", err)
	}
	metrics.MarketplaceRequests.WithLabelValues(resultName, "success").Inc()

	var env envelope
	if err := json.Unmarshal(body.([]byte), &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return env.Data, nil
}

// profilePayload mirrors the marketplace profile response shape.
type profilePayload struct {
	InvestmentProfile struct {
		RiskTolerance        string `json:"riskTolerance"`
		InvestmentExperience string `json:"investmentExperience"`
		InvestmentGoals      string `json:"investmentGoals"`
		InvestmentHorizon    string `json:"investmentHorizon"`
	} `json:"investmentProfile"`
	ProfileCompletion struct {
		Percentage float64 `json:"percentage"`
	} `json:"profileCompletion"`
	KYCStatus struct {
		Status string `json:"status"`
	} `json:"kycStatus"`
}

// GetProfile fetches the customer's investment profile. Every field the
// marketplace left blank is filled with its documented default so the
// advisory core always sees a fully populated record.
func (c *Client) GetProfile(ctx context.Context, customerID string) (entities.InvestmentProfile, error) {
	profile := entities.DefaultInvestmentProfile()

	data, err := c.get(ctx, profileEndpoint, customerID)
	if err != nil {
		return profile, err
	}

	var payload profilePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return profile, fmt.Errorf("decode profile: %w", err)
	}

	if payload.InvestmentProfile.RiskTolerance != "" {
		profile.RiskTolerance = payload.InvestmentProfile.RiskTolerance
	}
	if payload.InvestmentProfile.InvestmentExperience != "" {
		profile.InvestmentExperience = payload.InvestmentProfile.InvestmentExperience
	}
	profile.InvestmentGoals = payload.InvestmentProfile.InvestmentGoals
	if payload.InvestmentProfile.InvestmentHorizon != "" {
		profile.InvestmentHorizon = payload.InvestmentProfile.InvestmentHorizon
	}
	profile.ProfileCompletion = payload.ProfileCompletion.Percentage
	if payload.KYCStatus.Status != "" {
		profile.KYCStatus = payload.KYCStatus.Status
	}

	return profile, nil
}

// holdingPayload mirrors one portfolio holding on the wire.
type holdingPayload struct {
	AssetName  string          `json:"assetName"`
	AssetType  string          `json:"assetType"`
	TotalValue decimal.Decimal `json:"totalValue"`
	GainLoss   decimal.Decimal `json:"gainLoss"`
}

// GetPortfolio fetches the customer's holdings.
func (c *Client) GetPortfolio(ctx context.Context, customerID string) (entities.Portfolio, error) {
	data, err := c.get(ctx, holdingsEndpoint, customerID)
	if err != nil {
		return entities.Portfolio{Holdings: []entities.Holding{}}, err
	}

	var payload struct {
		Holdings []holdingPayload `json:"holdings"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return entities.Portfolio{Holdings: []entities.Holding{}}, fmt.Errorf("decode holdings: %w", err)
	}

	holdings := make([]entities.Holding, 0, len(payload.Holdings))
	for _, h := range payload.Holdings {
		holdings = append(holdings, entities.Holding{
			AssetName:  h.AssetName,
			AssetType:  h.AssetType,
			TotalValue: h.TotalValue,
			GainLoss:   h.GainLoss,
		})
	}
	return entities.Portfolio{Holdings: holdings}, nil
}

// GetTransactions fetches the customer's recent transactions.
func (c *Client) GetTransactions(ctx context.Context, customerID string) ([]entities.Transaction, error) {
	data, err := c.get(ctx, fmt.Sprintf(transactionsEndpoint, transactionFetchLimit), customerID)
	if err != nil {
		return []entities.Transaction{}, err
	}

	var payload struct {
		Transactions []entities.Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return []entities.Transaction{}, fmt.Errorf("decode transactions: %w", err)
	}
	if payload.Transactions == nil {
		payload.Transactions = []entities.Transaction{}
	}
	return payload.Transactions, nil
}

// GetAssets fetches the marketplace asset catalog.
func (c *Client) GetAssets(ctx context.Context) ([]entities.Asset, error) {
	data, err := c.get(ctx, assetsEndpoint, "")
	if err != nil {
		return []entities.Asset{}, err
	}

	var assets []entities.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return []entities.Asset{}, fmt.Errorf("decode assets: %w", err)
	}
	if assets == nil {
		assets = []entities.Asset{}
	}
	return assets, nil
}
