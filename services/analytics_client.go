package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fenilmodi00/agribridge-dashboard/models"
	"github.com/fenilmodi00/agribridge-dashboard/shared"
	"github.com/sirupsen/logrus"
)

const (
	helloPath   = "/api/hello"
	pricingPath = "/api/analytics/pricing"
	demandPath  = "/api/analytics/demand"
	supplyPath  = "/api/analytics/supply"

	analyticsUserAgent = "agribridge-dashboard/1.0"
)

// AnalyticsSource provides the four datasets shown on the dashboard
type AnalyticsSource interface {
	FetchGreeting(ctx context.Context) (models.Greeting, error)
	FetchPricing(ctx context.Context) ([]models.PricingEntry, error)
	FetchDemand(ctx context.Context) ([]models.DemandEntry, error)
	FetchSupply(ctx context.Context) ([]models.SupplyEntry, error)
}

// AnalyticsClient reads the analytics backend over HTTP
type AnalyticsClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAnalyticsClient creates a client for the backend at baseURL
func NewAnalyticsClient(baseURL string, httpClient *http.Client) *AnalyticsClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &AnalyticsClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

func (c *AnalyticsClient) FetchGreeting(ctx context.Context) (models.Greeting, error) {
	var greeting models.Greeting
	err := c.getJSON(ctx, helloPath, &greeting)
	return greeting, err
}

func (c *AnalyticsClient) FetchPricing(ctx context.Context) ([]models.PricingEntry, error) {
	var entries []models.PricingEntry
	if err := c.getJSON(ctx, pricingPath, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *AnalyticsClient) FetchDemand(ctx context.Context) ([]models.DemandEntry, error) {
	var entries []models.DemandEntry
	if err := c.getJSON(ctx, demandPath, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *AnalyticsClient) FetchSupply(ctx context.Context) ([]models.SupplyEntry, error) {
	var entries []models.SupplyEntry
	if err := c.getJSON(ctx, supplyPath, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// getJSON performs a GET against the backend and decodes a JSON body into out.
// Any transport failure, non-2xx status or undecodable body is an error.
func (c *AnalyticsClient) getJSON(ctx context.Context, path string, out interface{}) error {
	requestURL := c.BaseURL + path
	logger := logrus.WithFields(logrus.Fields{
		"component": "AnalyticsClient",
		"url":       requestURL,
	})

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return shared.NewServiceError(shared.ErrorCategoryConfiguration, "INVALID_REQUEST",
			fmt.Sprintf("cannot build request for %s: %v", path, err), "AnalyticsClient", path, err)
	}
	shared.SetJSONHeaders(request, analyticsUserAgent)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return shared.WrapError(err, "AnalyticsClient", path)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		io.Copy(io.Discard, response.Body)
		return shared.NewServiceError(shared.ErrorCategoryResource, fmt.Sprintf("HTTP_%d", response.StatusCode),
			fmt.Sprintf("%s returned %d %s", path, response.StatusCode, http.StatusText(response.StatusCode)),
			"AnalyticsClient", path, nil).WithDetails(map[string]interface{}{"status_code": response.StatusCode})
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return shared.WrapError(err, "AnalyticsClient", path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return shared.NewServiceError(shared.ErrorCategoryProcessing, "INVALID_JSON",
			fmt.Sprintf("%s returned a body that is not the expected JSON: %v", path, err),
			"AnalyticsClient", path, err)
	}

	logger.WithField("bytes", len(body)).Debug("Fetched analytics resource")
	return nil
}
