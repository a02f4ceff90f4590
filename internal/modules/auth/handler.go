package auth

import (
	"net/http"

	"rentaldesk/internal/pkg/binding"
	"rentaldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := binding.StrictJSON(c.Request, &req); err != nil || req.Username == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "Invalid username or password")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"id":       u.ID,
		"username": u.Username,
		"name":     u.Name,
		"staff":    u.Staff,
		"admin":    u.Admin,
	})
}
