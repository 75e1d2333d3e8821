// Package tmdb is a minimal client for the movie metadata provider. It only
// covers the movie details endpoint, which carries runtime, genres and credits.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	v1 "github.com/pinkpig777/cinestats/internal/api/v1"
	"github.com/pinkpig777/cinestats/internal/config"
	"github.com/pinkpig777/cinestats/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	breakerName  = "tmdb-api"
	maxBodyBytes = 2 << 20
)

var (
	// ErrUnavailable is returned when the provider rejected or failed the
	// request, or the breaker is open.
	ErrUnavailable = errors.New("tmdb unavailable")

	// ErrNotFound is returned for unknown movie ids.
	ErrNotFound = errors.New("tmdb movie not found")
)

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[*movieDetails]
}

// NewClient builds a client from validated config.
func NewClient(cfg config.TMDBConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.TimeoutDuration()})
}

// NewClientWithHTTP is NewClient with a caller-supplied transport.
func NewClientWithHTTP(cfg config.TMDBConfig, httpClient *http.Client) *Client {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	minRequests := cfg.BreakerMinRequests
	ratio := cfg.BreakerFailureRatio

	cb := gobreaker.NewCircuitBreaker[*movieDetails](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerIntervalDuration(),
		Timeout:     cfg.BreakerTimeoutDuration(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= ratio {
				slog.Warn("[TMDB] Opening circuit",
					"failures", counts.TotalFailures,
					"failure_ratio", failureRatio)
				return true
			}
			return false
		},
		// Not-found is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("[TMDB] Circuit breaker state change",
				"from", from.String(),
				"to", to.String())
			metrics.RecordBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cb:      cb,
	}
}

// FetchRuntime returns the provider's runtime for the movie. ok is false
// when the provider has no runtime or does not know the movie.
func (c *Client) FetchRuntime(ctx context.Context, externalID int64) (int, bool, error) {
	details, err := c.fetch(ctx, externalID)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if details.Runtime == nil || *details.Runtime <= 0 {
		return 0, false, nil
	}
	return *details.Runtime, true, nil
}

// MovieDetails returns a catalog-ready movie with genres and credits.
// Only crew members with the Director job are kept.
func (c *Client) MovieDetails(ctx context.Context, externalID int64) (*v1.Movie, error) {
	details, err := c.fetch(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return details.toMovie(), nil
}

func (c *Client) fetch(ctx context.Context, externalID int64) (*movieDetails, error) {
	if externalID <= 0 {
		return nil, fmt.Errorf("invalid tmdb id %d", externalID)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	details, err := c.cb.Execute(func() (*movieDetails, error) {
		return c.get(ctx, externalID)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return details, err
}

func (c *Client) get(ctx context.Context, externalID int64) (*movieDetails, error) {
	url := c.baseURL + "/movie/" + strconv.FormatInt(externalID, 10) + "?append_to_response=credits"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordProviderRequest("movie", "error", time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.RecordProviderRequest("movie", strconv.Itoa(resp.StatusCode), time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	var details movieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("decode movie %d: %w", externalID, err)
	}
	return &details, nil
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
