package equipment

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
	rg.GET("/equipments", h.ListEquipments)
	rg.GET("/equipments/total/count", h.CountEquipments)
	rg.GET("/equipments/:id", h.GetEquipment)
	rg.GET("/equipments/:id/equipments", h.ListByType)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.PUT("/equipments/updateUserId", h.RentBack)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/equipments", h.CreateEquipment)
	rg.PUT("/equipments/profile/:id", h.UpdateProfile)
	rg.DELETE("/equipments/:id", h.DeleteEquipment)
}

func (h *Handler) ListEquipments(c *gin.Context) {
	details, err := h.service.ListEquipments(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}

	out := make([]EquipmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toEquipmentResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Equipment not found")
		return
	}

	d, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Equipment not found")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(*d))
}

func (h *Handler) ListByType(c *gin.Context) {
	typeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "No equipments found for the specified equipment type ID")
		return
	}

	details, err := h.service.ListByType(c.Request.Context(), typeID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "No equipments found for the specified equipment type ID")
		default:
			response.Internal(c)
		}
		return
	}

	out := make([]EquipmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toEquipmentResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := binding.StrictJSON(c.Request, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	d, err := h.service.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrTypeNotFound:
			response.Error(c, http.StatusBadRequest, "Invalid equipment type")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "Invalid data")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(*d))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Equipment not found")
		return
	}

	var req UpdateProfileRequest
	if err := binding.StrictJSON(c.Request, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	e, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Equipment not found")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *Handler) RentBack(c *gin.Context) {
	var req RentBackRequest
	if err := binding.StrictJSON(c.Request, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid data")
		return
	}

	e, err := h.service.RentBack(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrNoneAvailable:
			response.Error(c, http.StatusNotFound, "No available equipment found for the specified equipment type")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "Invalid data")
		default:
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rentedBackEquipmentIds": gin.H{
			"equipmentId":     e.ID,
			"equipmentTypeId": e.EquipmentTypeID,
		},
	})
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Equipment not found")
		return
	}

	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "Equipment not found")
		case ErrHeld:
			response.Error(c, http.StatusForbidden, "Cannot delete equipment assigned to a user")
		default:
			response.Internal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CountEquipments(c *gin.Context) {
	cnt, err := h.service.CountEquipments(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalEquipments": cnt})
}
