package http

import (
	"errors"
	"net/http"

	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, ports.ErrInvalidToken), errors.Is(err, ports.ErrInvalidCredentials):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, "access_denied"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrAlreadyClaimed):
		return http.StatusConflict, "already_claimed"
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "invalid_transition"
	case errors.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway, "upstream_unavailable"
	case errors.As(err, &httpErr):
		switch httpErr.Code {
		case http.StatusNotFound:
			return httpErr.Code, "not_found"
		case http.StatusMethodNotAllowed:
			return httpErr.Code, "method_not_allowed"
		case http.StatusRequestEntityTooLarge:
			return httpErr.Code, "payload_too_large"
		case http.StatusUnsupportedMediaType, http.StatusBadRequest:
			return httpErr.Code, "invalid_request"
		}
		return httpErr.Code, "error"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// errorHandler renders errors as ErrorResponse. Internal errors are logged
// and their details withheld from the client.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code := classify(err)
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.Error(err),
			)
			message = "internal server error"
		}

		body := ErrorResponse{Code: code, Error: http.StatusText(status), Message: message}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("failed to write error response", zap.Error(err))
		}
	}
}
