package user

import (
	"errors"
	"net/http"
	"strconv"

	"rentaldesk/internal/pkg/response"
	"rentaldesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler exposes user records. Password hashes never serialize.
type Handler struct {
	users *repository.UserRepository
}

func NewHandler(users *repository.UserRepository) *Handler {
	return &Handler{users: users}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/:id", h.GetUser)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
		} else {
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, u)
}
