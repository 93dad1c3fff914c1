package api

import (
	"errors"
	"net/http"

	reqdto "reservation-service/internal/handler/dto/request"
	resdto "reservation-service/internal/handler/dto/response"
	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// Create handles POST /reservation. The response is sent as soon as the local
// record is durable; table assignment arrives later through one of the
// reconciliation endpoints below.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "customerName is required")
		return
	}

	result, err := h.reservationCommands.Create(c.Request.Context(), req.CustomerName)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNameRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "customerName is required")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreateResult(result.Reservation))
}

// UpdateStatus handles POST /reservation-status, the allocator's explicit
// patch. Unlike Notify it never creates a record for an unknown id.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "reservationId and status are required")
		return
	}

	view, err := h.reservationCommands.ApplyConfirmation(c.Request.Context(), commands.ConfirmationEvent{
		Source:        commands.SourceStatusUpdate,
		ReservationID: req.ReservationID,
		Status:        req.Status,
		TableNumber:   req.TableNumber,
	})
	if err != nil {
		h.respondConfirmationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusUpdate(view))
}

// Approve handles POST /reservation/:id/approved.
func (h *ReservationHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	var req reqdto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "tableNumber is required")
		return
	}

	tableNumber := req.TableNumber
	_, err := h.reservationCommands.ApplyConfirmation(c.Request.Context(), commands.ConfirmationEvent{
		Source:        commands.SourceApproval,
		ReservationID: id,
		TableNumber:   &tableNumber,
	})
	if err != nil {
		h.respondConfirmationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ApprovalResponse{Message: "Reservation confirmed"})
}

// Notify handles POST /notify-reservation, the allocator-originated upsert.
// It answers 200 for every well-formed payload, including duplicates and
// notifications about reservations this service never created.
func (h *ReservationHandler) Notify(c *gin.Context) {
	var req reqdto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "reservation id and customerName are required")
		return
	}

	_, err := h.reservationCommands.ApplyConfirmation(c.Request.Context(), commands.ConfirmationEvent{
		Source:        commands.SourceNotification,
		ReservationID: req.Reservation.ID,
		CustomerName:  req.Reservation.CustomerName,
		TableNumber:   req.Table(),
		TableStatus:   req.TableStatus(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNameRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "reservation id and customerName are required")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process notification")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NotificationResponse{Success: true})
}

// Cancel handles PUT /reservation/:id/cancel and returns the updated record.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	view, err := h.reservationCommands.Cancel(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrReservationCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already cancelled")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel reservation")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// Get handles GET /reservation/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.reservationQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reservation")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// List handles GET /all-reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reservations")
		return
	}

	result := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromReservationView(v)
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReservationHandler) respondConfirmationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTableNumberRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "tableNumber is required")
	case errors.Is(err, commands.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation status")
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, commands.ErrReservationCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already cancelled")
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation status cannot move backwards")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update reservation")
	}
}
