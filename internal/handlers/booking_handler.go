package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	ucBooking "github.com/BruksfildServices01/court-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC    *ucBooking.CreateBooking
	updateUC    *ucBooking.UpdateBooking
	deleteUC    *ucBooking.DeleteBooking
	listUC      *ucBooking.ListBookings
	listForUser *ucBooking.ListUserBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
	listUC *ucBooking.ListBookings,
	listForUser *ucBooking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		listUC:      listUC,
		listForUser: listForUser,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID      dto.Ref `json:"user_id"`
	CourtID     dto.Ref `json:"court_id"`
	BookingDate string  `json:"booking_date" binding:"omitempty,isodate"`
	StartTime   string  `json:"start_time" binding:"omitempty,clock"`
	EndTime     string  `json:"end_time" binding:"omitempty,clock"`
}

func (r *CreateBookingRequest) missing() bool {
	return r.UserID.Empty() || r.CourtID.Empty() ||
		r.BookingDate == "" || r.StartTime == "" || r.EndTime == ""
}

type UpdateBookingRequest struct {
	BookingDate string `json:"booking_date" binding:"omitempty,isodate"`
	StartTime   string `json:"start_time" binding:"omitempty,clock"`
	EndTime     string `json:"end_time" binding:"omitempty,clock"`
}

func (r *UpdateBookingRequest) missing() bool {
	return r.BookingDate == "" || r.StartTime == "" || r.EndTime == ""
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := bindJSON(c, &req, ucBooking.ErrMissingFields); err != nil {
		httperr.Respond(c, err)
		return
	}

	booking, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      req.UserID.String(),
		CourtID:     req.CourtID.String(),
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	zerolog.Ctx(c.Request.Context()).Info().
		Uint("booking_id", booking.ID).
		Uint("court_id", booking.CourtID).
		Str("booking_date", booking.BookingDate).
		Msg("booking created")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking successful",
		"booking": booking,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateBookingRequest
	if err := bindJSON(c, &req, ucBooking.ErrMissingFields); err != nil {
		httperr.Respond(c, err)
		return
	}

	booking, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		ID:          id,
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	booking, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking deleted successfully",
		"booking": booking,
	})
}

// ======================================================
// LIST
// ======================================================

// List accepts ?user_id= or ?court_id=; user_id wins when both are given.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context(), ucBooking.ListBookingsInput{
		UserID:  c.Query("user_id"),
		CourtID: c.Query("court_id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) ListForUser(c *gin.Context) {
	rows, err := h.listForUser.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
