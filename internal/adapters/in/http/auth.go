package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IssueToken handles POST /api/v1/auth/token.
func (s *Server) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	token, expiresAt, err := s.issuer.Login(c.Request().Context(), string(req.Email), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
