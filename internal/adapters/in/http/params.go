package http

import (
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type messageResponse struct {
	Message string `json:"message"`
}

// queryID reads the optional ?id=N filter shared by the GET endpoints.
func queryID(c echo.Context) (*int64, error) {
	var id *int64
	if err := runtime.BindQueryParameter("form", true, false, "id", c.QueryParams(), &id); err != nil {
		return nil, err
	}
	return id, nil
}

// firstID returns the first non-nil identifier, so bodies may carry the id under
// either of its accepted keys and DELETE may fall back to ?id=N.
func firstID(ids ...*int64) *int64 {
	for _, id := range ids {
		if id != nil {
			return id
		}
	}
	return nil
}
