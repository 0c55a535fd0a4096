package scraper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fringe-watch/edfringe-parser/internal/util"
)

func TestRetryableStatus(t *testing.T) {
	for _, code := range []int{408, 410, 429, 500, 502, 503, 504} {
		require.True(t, RetryableStatus(code), "status %d", code)
	}
	for _, code := range []int{200, 301, 400, 401, 403, 404} {
		require.False(t, RetryableStatus(code), "status %d", code)
	}
}

func TestNewClientRequiresApiKey(t *testing.T) {
	config := util.NewConfig()

	_, err := NewClient(config)
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	config := util.NewConfig()
	config.ScrapingdogApiKey.Value = "test-key"

	client, err := NewClient(config)
	require.NoError(t, err)
	require.Equal(t, 15000, client.jsWaitMs)
}

func TestFetchErrorIs(t *testing.T) {
	err := fmt.Errorf("fetching detail page: %w", &FetchError{Url: "https://example.org", StatusCode: 404, Message: "Not Found"})

	require.True(t, errors.Is(err, &FetchError{}))
	require.Contains(t, err.Error(), "status 404")
}
