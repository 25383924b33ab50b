package http

import (
	"net/http"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	query, err := queries.NewGetNotificationsQuery(caller, limit)
	if err != nil {
		return err
	}
	views, err := s.handlers.Notifications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNotificationResponses(views))
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	notificationID, err := pathUUID(c, "notificationId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(caller, notificationID)
	if err != nil {
		return err
	}
	if err = s.handlers.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
