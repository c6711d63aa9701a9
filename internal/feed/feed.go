package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

// Service fetches grouped section data from the portal.
type Service interface {
	// FetchSection retrieves and parses one section's grouped items.
	FetchSection(ctx context.Context, slug string) (*models.MediaGroup, error)

	// FetchSectionRaw retrieves one section's payload as served by the portal.
	FetchSectionRaw(ctx context.Context, slug string) ([]byte, error)

	// Name returns the service name for logging and display.
	Name() string
}

const defaultBaseURL = "https://api.tadka.example.com"

// HTTPService implements [Service] against the portal REST API.
type HTTPService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// HTTPOpts contains configuration options for creating an HTTPService.
type HTTPOpts struct {
	// Client overrides the HTTP client; Token is ignored when set.
	Client *http.Client
	// Token is an optional bearer token for gated portal endpoints.
	Token string
	// RateLimit caps requests per second; 0 disables limiting.
	RateLimit float64
}

// NewHTTPService creates a portal feed client for the given base URL.
func NewHTTPService(baseURL string, opts HTTPOpts) *HTTPService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := opts.Client
	if client == nil {
		if opts.Token != "" {
			src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
			client = oauth2.NewClient(context.Background(), src)
		} else {
			client = http.DefaultClient
		}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &HTTPService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// Name returns the service name.
func (s *HTTPService) Name() string {
	return "Tadka Portal"
}

// FetchSection retrieves and parses one section's grouped items.
func (s *HTTPService) FetchSection(ctx context.Context, slug string) (*models.MediaGroup, error) {
	payload, err := s.FetchSectionRaw(ctx, slug)
	if err != nil {
		return nil, err
	}
	return models.ParseGroup(payload)
}

// FetchSectionRaw retrieves one section's payload as served by the portal.
//
// Calls GET /api/sections/{slug}.
func (s *HTTPService) FetchSectionRaw(ctx context.Context, slug string) ([]byte, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: section slug required", shared.ErrMissingArgument)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	apiURL := fmt.Sprintf("%s/api/sections/%s", s.baseURL, slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrSectionNotFound, slug)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
