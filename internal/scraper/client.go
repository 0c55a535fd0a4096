package scraper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/util"
)

const scrapingdogBaseUrl = "https://api.scrapingdog.com/scrape"

// FetchError is a failed page fetch, fatal for that one page once retries
// are exhausted.
type FetchError struct {
	Url        string
	StatusCode int
	Message    string
}

func (e FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch of %s failed with status %d: %s", e.Url, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch of %s failed: %s", e.Url, e.Message)
}

func (e FetchError) Is(target error) bool {
	var t *FetchError
	return errors.As(target, &t)
}

// RetryableStatus reports whether a response status is transient and worth
// retrying. Everything outside the allow-list is fatal to that fetch.
func RetryableStatus(code int) bool {
	switch code {
	case 408, 410, 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// PageResponse is a fetched, JS-rendered page.
type PageResponse struct {
	Html       string
	StatusCode int
}

// Client fetches pages through the Scraping Dog rendering API. The rate
// limiter is owned by the instance, one request per RequestDelay.
type Client struct {
	http        *resty.Client
	apiKey      string
	jsWaitMs    int
	delay       time.Duration
	lastRequest time.Time
}

func NewClient(config *util.Config) (*Client, error) {
	if config.ScrapingdogApiKey.Value == "" {
		return nil, errors.New("EDFRINGE_SCRAPINGDOG_API_KEY not configured")
	}

	httpClient := resty.New().
		SetTimeout(60 * time.Second).
		SetBaseURL(scrapingdogBaseUrl)

	return &Client{
		http:     httpClient,
		apiKey:   config.ScrapingdogApiKey.Value,
		jsWaitMs: config.JsWaitMs.Int(15000),
		delay:    time.Duration(config.RequestDelayMs.Int(2000)) * time.Millisecond,
	}, nil
}

// FetchPage fetches one URL with JavaScript rendering enabled, retrying
// transient statuses up to three times.
func (c *Client) FetchPage(ctx context.Context, pageUrl string) (*PageResponse, error) {
	return c.fetch(ctx, pageUrl, true)
}

// FetchRaw fetches one URL without JavaScript rendering (cheaper; used for
// JSON API endpoints).
func (c *Client) FetchRaw(ctx context.Context, pageUrl string) (*PageResponse, error) {
	return c.fetch(ctx, pageUrl, false)
}

func (c *Client) fetch(ctx context.Context, pageUrl string, dynamic bool) (*PageResponse, error) {
	const maxRetryCount = 3

	logger := log.GetLogger().WithField("Url", pageUrl)

	var lastErr error
	for attempt := 1; attempt <= maxRetryCount; attempt++ {
		c.rateLimit()

		resp, err := c.request(ctx, pageUrl, dynamic)
		if err != nil {
			return nil, &FetchError{Url: pageUrl, Message: err.Error()}
		}

		if resp.StatusCode() == 200 {
			return &PageResponse{
				Html:       resp.String(),
				StatusCode: resp.StatusCode(),
			}, nil
		}

		lastErr = &FetchError{
			Url:        pageUrl,
			StatusCode: resp.StatusCode(),
			Message:    resp.Status(),
		}

		if !RetryableStatus(resp.StatusCode()) {
			return nil, lastErr
		}

		logger.WithField("FetchAttempt", attempt).
			WithField("StatusCode", resp.StatusCode()).
			Warn("transient fetch failure, trying again")
		time.Sleep(2 * time.Second)
	}

	return nil, lastErr
}

func (c *Client) request(ctx context.Context, pageUrl string, dynamic bool) (*resty.Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParam("url", pageUrl).
		SetQueryParam("dynamic", strconv.FormatBool(dynamic))

	if dynamic && c.jsWaitMs > 0 {
		req.SetQueryParam("wait", strconv.Itoa(c.jsWaitMs))
	}

	return req.Get("")
}

func (c *Client) rateLimit() {
	if !c.lastRequest.IsZero() {
		if elapsed := time.Since(c.lastRequest); elapsed < c.delay {
			time.Sleep(c.delay - elapsed)
		}
	}

	c.lastRequest = time.Now()
}
