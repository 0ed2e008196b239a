package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	booking_service "portfolio-content-service/internal/service/booking"
)

type BookingHandler struct {
	bookings booking_service.Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingHandler(bookings booking_service.Service, validate *validator.Validate, log *logger.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, validate: validate, log: log}
}

func dateParam(c *gin.Context, name string) *pgtype.Timestamptz {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &pgtype.Timestamptz{Time: parsed, Valid: true}
}

func (h *BookingHandler) List(c *gin.Context) {
	skip, limit := pageParams(c, defaultBookingLimit)
	filters := model.BookingFilters{
		Search:    searchParam(c),
		StartDate: dateParam(c, "start_date"),
		EndDate:   dateParam(c, "end_date"),
		Limit:     &limit,
		Offset:    &skip,
	}
	filters.SortBy, filters.SortOrder = sortParams(c)

	if v := c.Query("status"); v != "" {
		status := model.BookingStatus(v)
		if status.IsValid() != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid status filter"})
			return
		}
		filters.Status = &status
	}

	bookings, total, err := h.bookings.ListBookings(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	paginated(c, bookings, total, skip, limit)
}

func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookings.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var dto model.CreateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.bookings.CreateBooking(c.Request.Context(), &dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var dto model.UpdateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := h.validate.Struct(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if dto.Status != nil && dto.Status.IsValid() != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid booking status"})
		return
	}

	updated, err := h.bookings.UpdateBooking(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookings.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
