package event

import (
	"net/http"
	"strconv"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/pkg/binding"
	"rentaldesk/internal/pkg/response"
	"rentaldesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type EventResponse struct {
	domain.Event
	Users []domain.EventAttendee `json:"users"`
}

func toEventResponse(d repository.EventDetails) EventResponse {
	return EventResponse{Event: d.Event, Users: d.Attendees}
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.ListEvents)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/events/:id/join", h.JoinEvent)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.CreateEvent)
	rg.DELETE("/events/:id", h.DeleteEvent)
}

func (h *Handler) ListEvents(c *gin.Context) {
	details, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}

	out := make([]EventResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toEventResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var e domain.Event
	if err := binding.StrictJSON(c.Request, &e); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	if err := h.service.CreateEvent(c.Request.Context(), &e); err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "Invalid data")
		default:
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) JoinEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Event not found")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Token missing")
		return
	}

	if err := h.service.JoinEvent(c.Request.Context(), eventID, userID); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Event not found")
		case ErrAlreadyJoined:
			response.Error(c, http.StatusBadRequest, "Already joined")
		default:
			response.Internal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Event not found")
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Event not found")
		default:
			response.Internal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
