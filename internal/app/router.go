// internal/app/router.go
package app

import (
	inventoryHandler "bestdeal-service/internal/handlers/inventory"
	leadHandler "bestdeal-service/internal/handlers/leads"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	InventoryHandler *inventoryHandler.InventoryHandler
	LeadHandler      *leadHandler.LeadHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Inventory ====================
	r.GET("/vehicles", h.InventoryHandler.ListVehicles)
	r.GET("/vehicles/:id", h.InventoryHandler.GetVehicle)
	r.POST("/vehicles", h.InventoryHandler.CreateVehicle)
	r.PUT("/vehicles/:id", h.InventoryHandler.UpdateVehicle)
	r.DELETE("/vehicles/:id", h.InventoryHandler.DeleteVehicle)

	// ==================== Leads ====================
	r.POST("/sell-trade", h.LeadHandler.SellTrade)
	r.POST("/message", h.LeadHandler.Message)
	r.POST("/offer", h.LeadHandler.Offer)
	r.POST("/apply", h.LeadHandler.Apply)
	r.POST("/car-finder", h.LeadHandler.CarFinder)
	r.POST("/test-drive", h.LeadHandler.TestDrive)
	r.POST("/referral", h.LeadHandler.Referral)
	r.POST("/contact", h.LeadHandler.Contact)
	r.POST("/feedback", h.LeadHandler.Feedback)
}
