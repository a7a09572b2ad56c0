package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

type QueryParams struct {
	PageNumber int
	PageSize   int
}

// NewQueryParams reads pagination values from the request query string,
// falling back to defaults for missing or malformed values.
func NewQueryParams(c echo.Context) QueryParams {
	qp := QueryParams{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}

	if raw := c.QueryParam("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			qp.PageNumber = v
		}
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			qp.PageSize = v
		}
	}
	if qp.PageSize > MaxPageSize {
		qp.PageSize = MaxPageSize
	}

	return qp
}
