// Package apiclient reads the billing data from a running dashboard API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// Client implements repository.BillingRepository over the HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ repository.BillingRepository = (*Client)(nil)

// New creates a client for baseURL. A zero timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Path       string
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GET %s: %d %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GET %s: unexpected status %d", e.Path, e.StatusCode)
}

// Health probes the API liveness endpoint.
func (c *Client) Health(ctx context.Context) (entity.Health, error) {
	var health entity.Health
	if err := c.get(ctx, "/health", &health); err != nil {
		return entity.Health{}, err
	}
	return health, nil
}

func (c *Client) GetAccounts(ctx context.Context) ([]entity.Account, error) {
	var accounts []entity.Account
	if err := c.get(ctx, "/api/accounts", &accounts); err != nil {
		return nil, err
	}
	for _, account := range accounts {
		if err := account.Validate(); err != nil {
			return nil, fmt.Errorf("GET /api/accounts: %w", err)
		}
	}
	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (entity.Account, error) {
	var account entity.Account
	err := c.get(ctx, "/api/accounts/"+url.PathEscape(id), &account)
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return entity.Account{}, fmt.Errorf("%w: %s", types.ErrAccountNotFound, id)
	}
	if err != nil {
		return entity.Account{}, err
	}
	if err := account.Validate(); err != nil {
		return entity.Account{}, fmt.Errorf("GET /api/accounts/%s: %w", id, err)
	}
	return account, nil
}

func (c *Client) GetCostOverview(ctx context.Context) (entity.CostOverview, error) {
	var overview entity.CostOverview
	if err := c.get(ctx, "/api/cost-overview", &overview); err != nil {
		return entity.CostOverview{}, err
	}
	return overview, nil
}

func (c *Client) GetServiceBreakdown(ctx context.Context) ([]entity.ServiceCost, error) {
	var services []entity.ServiceCost
	if err := c.get(ctx, "/api/service-breakdown", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) GetCostTrends(ctx context.Context) ([]entity.CostTrendPoint, error) {
	var trends []entity.CostTrendPoint
	if err := c.get(ctx, "/api/cost-trends", &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

func (c *Client) GetBudgetAlerts(ctx context.Context) ([]entity.BudgetAlert, error) {
	var alerts []entity.BudgetAlert
	if err := c.get(ctx, "/api/budget-alerts", &alerts); err != nil {
		return nil, err
	}
	for _, alert := range alerts {
		if err := alert.Validate(); err != nil {
			return nil, fmt.Errorf("GET /api/budget-alerts: %w", err)
		}
	}
	return alerts, nil
}

func (c *Client) GetRegionalCosts(ctx context.Context) ([]entity.RegionalCost, error) {
	var regions []entity.RegionalCost
	if err := c.get(ctx, "/api/regional-costs", &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// get performs a GET request and strictly decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("GET %s: reading response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(path, resp.StatusCode, body)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("GET %s: parsing response: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("GET %s: parsing response: trailing data", path)
	}
	return nil
}

// statusError keeps the server's error envelope when there is one.
func statusError(path string, status int, body []byte) error {
	se := &StatusError{Path: path, StatusCode: status}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		se.Code = envelope.Error.Code
		se.Message = envelope.Error.Message
	}
	return se
}
