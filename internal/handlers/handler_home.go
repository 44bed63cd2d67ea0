package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

type systemHandler struct {
	healthService portssvc.HealthSvc
}

func registerSystemRoutes(r gin.IRoutes, healthService portssvc.HealthSvc) {
	h := &systemHandler{healthService: healthService}
	r.GET("/", getHome)
	r.GET("/schema", h.getSchema)
	r.GET("/test", h.testDatabase)
}

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hardware Shop ERP Backend Running"})
}

// getSchema godoc
// @Summary List collection names
// @Description Lists the logical collections so a database viewer can introspect them.
// @Tags root
// @Produce json
// @Success 200 {object} dto.SchemaResponse
// @Router /schema [get]
func (h *systemHandler) getSchema(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SchemaResponse{Collections: h.healthService.Collections()})
}

// testDatabase godoc
// @Summary Backend and store health
// @Description Always answers 200; a store problem is reported in the database field.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /test [get]
func (h *systemHandler) testDatabase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	resp := h.healthService.Check(c.Request.Context())
	logger.Debug("Health check", slog.String("database", resp.Database))
	c.JSON(http.StatusOK, resp)
}
