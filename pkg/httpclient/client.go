package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"banner-chat-be/internal/pkg/logger"
)

// Error taxonomy for outbound requests. Callers distinguish a dependency
// that is down (ErrAPIUnavailable) from one that is misbehaving
// (ErrUnexpectedResponse); everything else is ErrInternal.
var (
	ErrAPIUnavailable     = errors.New("the external API is not available at this time")
	ErrUnexpectedResponse = errors.New("the server response is not as expected")
	ErrInternal           = errors.New("an internal error occurred while processing the request")
)

type Client struct {
	http   *http.Client
	logger logger.ILogger
}

func New(log logger.ILogger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

// GetJSON performs a GET against rawURL with the given query parameters
// and decodes the JSON body into a generic map.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values) (map[string]interface{}, error) {
	body, err := c.get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error("httpclient", "Unexpected error decoding response", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return data, nil
}

// GetBytes performs a GET and returns the raw body. Used for image downloads.
func (c *Client) GetBytes(ctx context.Context, rawURL string) ([]byte, error) {
	return c.get(ctx, rawURL, nil)
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("httpclient", "Error when making the request", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrAPIUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Error("httpclient", "Error in the server response", map[string]interface{}{
			"url":    rawURL,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return body, nil
}
