// Package forecast talks to the optional external forecasting backend. The
// backend accepts a dated series plus a horizon and replies with richer
// (seasonality-aware) projections; when it is not configured or not
// reachable, the naive linear trend takes over so analysis never fails on a
// missing collaborator.
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/model"
)

// Client calls the remote forecast endpoint.
type Client struct {
	url    string
	client *http.Client
}

// NewClient builds a client for the given endpoint URL. An empty URL is
// valid and means "always fall back locally".
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type request struct {
	Data    []model.ForecastPoint `json:"data"`
	Periods int                   `json:"periods"`
}

// Remote posts the series to the external endpoint and decodes its response.
func (c *Client) Remote(ctx context.Context, series []model.ForecastPoint, periods int) ([]model.ForecastPoint, error) {
	if c.url == "" {
		return nil, fmt.Errorf("forecast endpoint not configured")
	}

	body, err := json.Marshal(request{Data: series, Periods: periods})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast endpoint returned %d", resp.StatusCode)
	}

	var points []model.ForecastPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	return points, nil
}

// Forecast tries the remote endpoint first and falls back to the local
// linear projection on any failure. The result records which method ran.
func (c *Client) Forecast(ctx context.Context, series []model.ForecastPoint, periods int) (*model.ForecastResult, error) {
	if periods <= 0 {
		periods = 5
	}

	if points, err := c.Remote(ctx, series, periods); err == nil {
		return &model.ForecastResult{Method: "remote", Points: points}, nil
	}

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}
	fit, err := engine.FitTrend(values)
	if err != nil {
		return nil, err
	}

	projected := engine.Project(fit, periods)
	points := make([]model.ForecastPoint, len(projected))
	for i, v := range projected {
		points[i] = model.ForecastPoint{Value: v}
	}
	return &model.ForecastResult{Method: "linear", Points: points}, nil
}
