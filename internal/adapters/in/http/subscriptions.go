package http

import (
	"fmt"
	"net/http"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RequestSubscription handles POST /api/v1/subscriptions.
func (s *Server) RequestSubscription(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	messID, err := formUUID(c, "mess_id")
	if err != nil {
		return err
	}
	startDate, err := formDate(c, "start_date")
	if err != nil {
		return err
	}
	endDate, err := formDate(c, "end_date")
	if err != nil {
		return err
	}
	payment, closeFile, err := formFile(c, "payment_screenshot")
	if err != nil {
		return err
	}
	defer closeFile()

	id := kernel.NewUUID()
	cmd, err := commands.NewRequestSubscriptionCommand(caller, id, messID, startDate, endDate, *payment)
	if err != nil {
		return err
	}
	if err = s.handlers.RequestSubscription.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// ReviewSubscription handles POST /api/v1/subscriptions/{subscriptionId}/review.
func (s *Server) ReviewSubscription(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	subscriptionID, err := pathUUID(c, "subscriptionId")
	if err != nil {
		return err
	}

	var approve bool
	switch decision := c.FormValue("decision"); decision {
	case "approve":
		approve = true
	case "reject":
	case "":
		return errs.NewValueIsRequiredError("decision")
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is neither approve nor reject", decision))
	}

	confirmation, closeFile, err := optionalFormFile(c, "confirmation_screenshot")
	if err != nil {
		return err
	}
	defer closeFile()

	cmd, err := commands.NewReviewSubscriptionCommand(caller, subscriptionID, approve, confirmation)
	if err != nil {
		return err
	}
	if err = s.handlers.ReviewSubscription.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
