package businesses

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("name is required")
)
