package http

import (
	"net/http"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// requireID returns the identifier carried by the body, or by ?id=N when the body has none.
func requireID(c echo.Context, paramName string, fromBody ...*int64) (int64, error) {
	fromQuery, err := queryID(c)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	id := firstID(append(fromBody, fromQuery)...)
	if id == nil {
		return 0, errs.NewValueIsRequiredError(paramName)
	}
	return *id, nil
}

// remove runs a delete command for the customer, product or courier named by paramName.
func (s *Server) remove(c echo.Context, paramName string, id int64, handler DeleteHandler, failure, success string) error {
	cmd, err := commands.NewDeleteCommand(paramName, id)
	if err != nil {
		return s.fail(c, failure, err)
	}
	if err = handler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, failure, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: success})
}
