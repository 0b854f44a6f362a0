package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrMalformedAggregate = errors.New("malformed aggregate")
	ErrUnsupportedSortKey = errors.New("unsupported sort key")
	ErrInvalidCriteria    = errors.New("invalid search criteria")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrInfrastructure     = errors.New("infrastructure failure")
	ErrValidation         = errors.New("validation failed")
)

// NotFound 构造 "xxx with id = N not found" 错误
func NotFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s with id = %d", ErrNotFound, entity, id)
}
