package omdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/moviesearcher/internal/movie"
)

const (
	DefaultBaseURL    = "https://www.omdbapi.com"
	DefaultTimeout    = 10 * time.Second
	DefaultRetryDelay = 200 * time.Millisecond

	maxErrorBodyLength = 200
)

type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryAttempts uint
	RetryDelay    time.Duration
}

// Client fetches movies from the OMDb API by title.
type Client struct {
	httpClient    *resty.Client
	apiKey        string
	retryAttempts uint
	retryDelay    time.Duration
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:    client,
		apiKey:        config.APIKey,
		retryAttempts: config.RetryAttempts,
		retryDelay:    config.RetryDelay,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// FetchByTitle looks up title as-is; OMDb does its own matching.
// found is false when OMDb answered but had no movie for the title.
// Every failure is a *ProviderError.
func (client *Client) FetchByTitle(ctx context.Context, title string) (movie.Movie, bool, error) {
	var body []byte
	err := retry.Do(
		func() error {
			b, err := client.fetch(ctx, title)
			if err != nil {
				var providerErr *ProviderError
				if errors.As(err, &providerErr) && !providerErr.Temporary() {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.retryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Debug("Retrying OMDb request",
				"attempt", n+1,
				"title", title,
				"error", err)
		}),
	)
	if err != nil {
		var providerErr *ProviderError
		if !errors.As(err, &providerErr) {
			err = &ProviderError{Kind: KindTransport, Err: err}
		}
		return movie.Movie{}, false, err
	}

	resp, err := decodeResponse(body)
	if err != nil {
		return movie.Movie{}, false, &ProviderError{Kind: KindDecode, Err: err}
	}
	if !resp.Found() {
		return movie.Movie{}, false, nil
	}
	return resp.ToMovie(), true, nil
}

func (client *Client) fetch(ctx context.Context, title string) ([]byte, error) {
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("apikey", client.apiKey).
		SetQueryParam("t", title).
		Get("/")
	if err != nil {
		return nil, &ProviderError{Kind: KindTransport, Err: fmt.Errorf("client.R.Get > %w", err)}
	}
	if !res.IsSuccess() {
		return nil, &ProviderError{
			Kind:       KindStatus,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected response: %s", truncate(res.String(), maxErrorBodyLength)),
		}
	}
	return res.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
