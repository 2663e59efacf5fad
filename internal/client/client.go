// Package client talks to a running recruit API.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/report"
	"github.com/go-resty/resty/v2"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type errorEnvelope struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("api %d: %s %v", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// As attributes the client's writes to a console user.
func (c *Client) As(userID string) *Client {
	c.http.SetHeader("X-User-ID", userID)
	return c
}

func (c *Client) PreviewScore(ctx context.Context, ratings map[string]int) (*dto.ScoreDTO, error) {
	var out envelope[dto.ScoreDTO]
	if err := c.do(ctx, "POST", "/api/evaluations/preview", dto.PreviewRequest{Ratings: ratings}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) Summary(ctx context.Context) (*report.Summary, error) {
	var out envelope[report.Summary]
	if err := c.do(ctx, "GET", "/api/reports/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var apiErr errorEnvelope
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Message: apiErr.Message, Details: apiErr.Details}
	}
	return nil
}
