package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/pkg/binding"
	"rentaldesk/internal/pkg/response"
	"rentaldesk/internal/pkg/validator"
	"rentaldesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler serves the read-mostly equipment type catalog.
type Handler struct {
	types *repository.EquipmentTypeRepository
}

func NewHandler(types *repository.EquipmentTypeRepository) *Handler {
	return &Handler{types: types}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/equipmentTypes", h.ListTypes)
	rg.GET("/equipmentTypes/:id", h.GetType)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/equipmentTypes", h.CreateType)
}

func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.types.List(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *Handler) GetType(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Equipment type not found")
		return
	}

	t, err := h.types.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Equipment type not found")
		} else {
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) CreateType(c *gin.Context) {
	var t domain.EquipmentType
	if err := binding.StrictJSON(c.Request, &t); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}
	if fieldErrs := validator.Validate(t); fieldErrs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	if err := h.types.Create(c.Request.Context(), &t); err != nil {
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, t)
}
