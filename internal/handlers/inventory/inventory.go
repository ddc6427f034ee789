package inventory

import (
	"errors"
	"net/http"

	"bestdeal-service/internal/domain/vehicle"
	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/pkg/response"
	service "bestdeal-service/internal/service/inventory"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// ListVehicles returns up to 500 listings.
func (h *InventoryHandler) ListVehicles(c *gin.Context) {
	docs, err := h.inventoryService.ListVehicles(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetVehicle retrieves a listing by id.
func (h *InventoryHandler) GetVehicle(c *gin.Context) {
	doc, err := h.inventoryService.GetVehicle(c.Request.Context(), c.Param("id"))
	if errors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c, "vehicle not found")
		return
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// CreateVehicle creates a listing and returns the stored record.
func (h *InventoryHandler) CreateVehicle(c *gin.Context) {
	var v vehicle.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	doc, err := h.inventoryService.CreateVehicle(c.Request.Context(), &v)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateVehicle replaces a listing; every field must be resupplied.
func (h *InventoryHandler) UpdateVehicle(c *gin.Context) {
	var v vehicle.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	doc, err := h.inventoryService.UpdateVehicle(c.Request.Context(), c.Param("id"), &v)
	if errors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c, "vehicle not found")
		return
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteVehicle reports whether a listing was removed, regardless of prior
// existence.
func (h *InventoryHandler) DeleteVehicle(c *gin.Context) {
	deleted, err := h.inventoryService.DeleteVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
