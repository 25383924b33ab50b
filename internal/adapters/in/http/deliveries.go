package http

import (
	"errors"
	"net/http"

	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/application/usecases/queries"
	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req CreateDeliveryRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	subscriptionID, err := toUUID("subscription_id", req.SubscriptionID)
	if err != nil {
		return err
	}
	messID, err := toUUID("mess_id", req.MessID)
	if err != nil {
		return err
	}
	assignee, err := optionalUUID("delivery_person_id", req.DeliveryPersonID)
	if err != nil {
		return err
	}
	var date *kernel.Date
	if req.DeliveryDate != nil {
		d := kernel.DateOf(req.DeliveryDate.Time)
		date = &d
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(caller, id, subscriptionID, messID, assignee, date)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	mode := "pool"
	if assignee != nil {
		mode = "assigned"
	}
	metrics.DeliveriesCreatedTotal.WithLabelValues(mode).Inc()
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// AcceptFromPool handles POST /api/v1/deliveries/{deliveryId}/accept.
func (s *Server) AcceptFromPool(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptFromPoolCommand(caller, deliveryID)
	if err != nil {
		return err
	}
	err = s.handlers.AcceptFromPool.Handle(c.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrAlreadyClaimed):
		metrics.PoolClaimsTotal.WithLabelValues("lost").Inc()
		return err
	case err != nil:
		return err
	}

	metrics.PoolClaimsTotal.WithLabelValues("won").Inc()
	return c.NoContent(http.StatusNoContent)
}

// AdvanceStatus handles POST /api/v1/deliveries/{deliveryId}/status.
func (s *Server) AdvanceStatus(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	var req AdvanceStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceStatusCommand(caller, deliveryID, status)
	if err != nil {
		return err
	}
	if err = s.handlers.AdvanceStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(status.String()).Inc()
	return c.NoContent(http.StatusNoContent)
}

// AttachProof handles PUT /api/v1/deliveries/{deliveryId}/proofs/{slot}.
func (s *Server) AttachProof(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}
	slot, err := delivery.ParseProofSlot(c.Param("slot"))
	if err != nil {
		return err
	}

	file, closeFile, err := formFile(c, "file")
	if err != nil {
		return err
	}
	defer closeFile()

	cmd, err := commands.NewAttachProofCommand(caller, deliveryID, slot, *file)
	if err != nil {
		return err
	}
	path, err := s.handlers.AttachProof.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ProofResponse{Slot: slot.String(), Path: path})
}

// GetDeliveryProofs handles GET /api/v1/deliveries/{deliveryId}/proofs.
func (s *Server) GetDeliveryProofs(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	deliveryID, err := pathUUID(c, "deliveryId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryProofsQuery(caller, deliveryID)
	if err != nil {
		return err
	}
	view, err := s.handlers.DeliveryProofs.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProofsResponse(view))
}

// GetPublicPool handles GET /api/v1/deliveries/pool.
func (s *Server) GetPublicPool(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPublicPoolQuery(caller)
	if err != nil {
		return err
	}
	views, err := s.handlers.PublicPool.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveryResponses(views))
}

// GetAssignedDeliveries handles GET /api/v1/deliveries/assigned.
func (s *Server) GetAssignedDeliveries(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetAssignedDeliveriesQuery(caller)
	if err != nil {
		return err
	}
	views, err := s.handlers.AssignedDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveryResponses(views))
}

// GetStudentDeliveries handles GET /api/v1/deliveries/mine.
func (s *Server) GetStudentDeliveries(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetStudentDeliveriesQuery(caller)
	if err != nil {
		return err
	}
	views, err := s.handlers.StudentDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveryResponses(views))
}

// GetMessDeliveries handles GET /api/v1/deliveries/mess/{messId}.
func (s *Server) GetMessDeliveries(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	messID, err := pathUUID(c, "messId")
	if err != nil {
		return err
	}
	date, err := queryDate(c, "date")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMessDeliveriesQuery(caller, messID, date)
	if err != nil {
		return err
	}
	views, err := s.handlers.MessDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeliveryResponses(views))
}
