package internal

import (
	"errors"
	"fmt"

	"github.com/fringe-watch/edfringe-parser/internal/selector"
)

// ElementNotFoundError reports a fixed markup region missing from a page,
// which usually means the site shipped a redesign.
type ElementNotFoundError struct {
	Selector string
}

func NewElementNotFoundError(selector selector.Selector) *ElementNotFoundError {
	return &ElementNotFoundError{Selector: string(selector)}
}

func (e ElementNotFoundError) Error() string {
	return fmt.Sprintf("element '%s' not found", e.Selector)
}

func (e ElementNotFoundError) Is(target error) bool {
	var t *ElementNotFoundError
	ok := errors.As(target, &t)
	return ok
}
