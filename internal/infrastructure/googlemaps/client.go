package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/trainmeet/internal/config"
	"github.com/trainmeet/internal/domain"
	"github.com/trainmeet/internal/domain/repository"
	"go.uber.org/zap"
)

// maxErrorBody limits how much of an error response ends up in the logs.
const maxErrorBody = 1024

type client struct {
	httpClient *http.Client
	baseURL    string
	embedURL   string
	apiKey     string
	logger     *zap.Logger
}

// NewGoogleMapsClient создает новый клиент для Google Maps Platform
func NewGoogleMapsClient(cfg *config.GoogleMapsConfig, logger *zap.Logger) repository.MapsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		embedURL: cfg.EmbedURL,
		apiKey:   cfg.APIKey,
		logger:   logger,
	}
}

func (c *client) HasCredential() bool {
	return c.apiKey != ""
}

// EmbedURL returns the Maps Embed API directions URL in transit mode.
func (c *client) EmbedURL(origin, destination domain.Coordinate) string {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("origin", origin.String())
	params.Set("destination", destination.String())
	params.Set("mode", "transit")
	return c.embedURL + "?" + params.Encode()
}

// getJSON issues one GET against {baseURL}/{path}/json and decodes the body
// into out. The credential is appended here and never logged.
func (c *client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	c.logger.Debug("Calling Google Maps API",
		zap.String("endpoint", path),
		zap.String("query", params.Encode()))

	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s/json?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL including the key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d, body: %s", ErrUpstreamStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrMalformedPayload, err)
	}

	return nil
}
