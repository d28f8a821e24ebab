package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// Client implements the HTTPClient interface
type Client struct {
	client  *http.Client
	logger  interfaces.Logger
	timeout time.Duration
}

func New(timeout time.Duration, logger interfaces.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout, // overall request deadline (includes headers + body)
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   2 * time.Second,  // TCP connect timeout
					KeepAlive: 30 * time.Second, // keep-alive
				}).DialContext,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   70,
				IdleConnTimeout:       60 * time.Second,
				DisableCompression:    false,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger:  logger,
		timeout: timeout,
	}
}

// Get performs an HTTP GET request
func (c *Client) Get(ctx context.Context, url string) (*models.HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "ContentSEOCheck/1.0")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("GET request failed",
			"url", url,
			"error", err,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	const maxBodySize = 1 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &models.HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST with a JSON body
func (c *Client) Post(ctx context.Context, url string, body []byte) (*models.HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "ContentSEOCheck/1.0")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Making HTTP request",
		"method", req.Method,
		"url", url,
		"content_length", len(body),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			"url", url,
			"error", err,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Read response body with size limit (10MB)
	const maxBodySize = 10 * 1024 * 1024
	limitedReader := io.LimitReader(resp.Body, maxBodySize)
	respBody, err := io.ReadAll(limitedReader)
	if err != nil {
		c.logger.Error("Failed to read response body",
			"url", url,
			"error", err,
		)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("HTTP response received",
		"url", url,
		"status_code", resp.StatusCode,
		"content_length", len(respBody),
		"duration", time.Since(start),
	)

	response := &models.HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Headers:    resp.Header,
	}

	return response, nil
}

// Ensure Client implements interfaces.HTTPClient
var _ interfaces.HTTPClient = (*Client)(nil)
