package http

import (
	"net/http"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req CreateStaffRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	messID, err := toUUID("mess_id", req.MessID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateDeliveryStaffCommand(
		caller, string(req.Email), req.Password, req.FullName, req.PhoneNumber, messID)
	if err != nil {
		return err
	}
	userID, err := s.handlers.CreateDeliveryStaff.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CreateStaffResponse{
		Message: "User created and assigned successfully",
		UserID:  userID.Bytes(),
	})
}

// GetMessStaff handles GET /api/v1/messes/{messId}/staff.
func (s *Server) GetMessStaff(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	messID, err := pathUUID(c, "messId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMessStaffQuery(caller, messID)
	if err != nil {
		return err
	}
	views, err := s.handlers.MessStaff.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStaffResponses(views))
}
