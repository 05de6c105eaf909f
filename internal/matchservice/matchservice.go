// Package matchservice is the HTTP client for the remote CV matching service.
package matchservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spigell/cv-matcher/internal/selection"
	"go.uber.org/zap"
)

const (
	DefaultAPIURL = "http://localhost:8000"
	matchPath     = "/api/match_cv"
	fileField     = "file"

	defaultMaxLogLength = 200
)

type Client struct {
	logger       *zap.Logger
	HTTPClient   *http.Client
	APIURL       string
	MaxLogLength int
}

// New returns a client for the service rooted at apiURL. A zero timeout keeps
// the transport default.
func New(logger *zap.Logger, apiURL string, timeout time.Duration) (*Client, error) {
	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parsing service url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("service url must be an absolute http(s) url, got %q", apiURL)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger:       logger,
		MaxLogLength: defaultMaxLogLength,
	}, nil
}

// Match uploads the file and returns the service-ranked results in service order.
func (c *Client) Match(ctx context.Context, file *selection.File) ([]MatchResult, error) {
	if file == nil {
		return nil, fmt.Errorf("no file to upload")
	}

	return c.postFile(ctx, fmt.Sprintf("%s%s", c.APIURL, matchPath), file)
}
