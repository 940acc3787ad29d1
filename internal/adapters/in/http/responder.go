package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/pkg/errs"
)

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// ErrorHandler is the single place where application errors become HTTP
// responses. Validation errors map to 400, authorization errors to 401,
// missing objects to 404 and everything else to 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	}

	if writeErr := c.JSON(status, errorEnvelope{Error: errorBody{Message: message, Status: status}}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
