package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fringe-watch/edfringe-parser/internal/selector"
)

func TestElementNotFoundError(t *testing.T) {
	err := fmt.Errorf("scraping comedy: %w", NewElementNotFoundError(selector.EventCard))

	require.True(t, errors.Is(err, &ElementNotFoundError{}))
	require.Contains(t, err.Error(), "not found")
}
