package booking

import (
	"net/http"
	"strconv"

	"rentaldesk/internal/pkg/binding"
	"rentaldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	details, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}

	out := make([]BookingResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toBookingResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Token missing")
		return
	}

	var req CreateBookingRequest
	if err := binding.StrictJSON(c.Request, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	d, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrValidation, ErrEquipmentNotFound:
			response.Error(c, http.StatusBadRequest, "Invalid data")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(*d))
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Booking not found")
		return
	}

	d, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Booking not found")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(*d))
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Booking not found")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Booking not found")
		default:
			response.Internal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
