package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Alansi2025/inventory-management/internal/catalog"
	"github.com/Alansi2025/inventory-management/internal/models"
	"github.com/Alansi2025/inventory-management/internal/prefs"
	"github.com/Alansi2025/inventory-management/internal/query"
	"github.com/Alansi2025/inventory-management/internal/service"
	"github.com/Alansi2025/inventory-management/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains HTTP handlers
type Handler struct {
	inventory *service.InventoryService
	advisor   *service.AdvisorService
	prefs     prefs.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(inventory *service.InventoryService, advisor *service.AdvisorService, prefStore prefs.Store) *Handler {
	return &Handler{
		inventory: inventory,
		advisor:   advisor,
		prefs:     prefStore,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", h.listProducts)
			products.POST("", h.createProduct)
			products.POST("/batch-delete", h.batchDelete)
			products.POST("/batch-quantity", h.batchSetQuantity)
			products.GET("/:id", h.getProduct)
			products.PUT("/:id", h.updateProduct)
			products.DELETE("/:id", h.deleteProduct)
		}

		view := v1.Group("/view")
		{
			view.GET("", h.getView)
			view.PUT("/filter", h.setFilter)
			view.POST("/selection/toggle", h.toggleSelection)
			view.POST("/selection/select-all", h.selectAllVisible)
			view.DELETE("/selection", h.clearSelection)
			view.GET("/export", h.exportCSV)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("", h.getStats)
			stats.GET("/categories", h.getCategoryBreakdown)
		}

		advisorGroup := v1.Group("/advisor")
		{
			advisorGroup.POST("/description", h.generateDescription)
			advisorGroup.POST("/risks", h.analyzeRisks)
			advisorGroup.POST("/price-range", h.suggestPriceRange)
		}

		preferences := v1.Group("/preferences")
		{
			preferences.GET("/theme", h.getTheme)
			preferences.PUT("/theme", h.setTheme)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listProducts returns the full catalog in insertion order
func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"products": h.inventory.ListProducts(c.Request.Context()),
	})
}

// createProduct handles product creation
func (h *Handler) createProduct(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.inventory.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// getProduct handles get product by id
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.inventory.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "Failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// updateProduct replaces a product
func (h *Handler) updateProduct(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.inventory.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// deleteProduct removes a product. Unknown ids are a no-op, so the
// response is 204 either way.
func (h *Handler) deleteProduct(c *gin.Context) {
	h.inventory.DeleteProduct(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

type batchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// batchDelete removes every product in the id set
func (h *Handler) batchDelete(c *gin.Context) {
	var req batchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	removed := h.inventory.BatchDelete(c.Request.Context(), req.IDs)
	if removed == nil {
		removed = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

type batchQuantityRequest struct {
	IDs      []string `json:"ids"`
	Quantity int      `json:"quantity" binding:"min=0"`
}

// batchSetQuantity sets the quantity of every product in the id set
func (h *Handler) batchSetQuantity(c *gin.Context) {
	var req batchQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.inventory.BatchSetQuantity(c.Request.Context(), req.IDs, req.Quantity)
	if err != nil {
		h.writeServiceError(c, err, "Failed to set quantities")
		return
	}
	if updated == nil {
		updated = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// getView returns the current filter, visible rows and selection
func (h *Handler) getView(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.ViewState(c.Request.Context()))
}

type filterRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Stock    string `json:"stock"`
}

// setFilter replaces the filter specification
func (h *Handler) setFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	state, err := h.inventory.SetFilter(c.Request.Context(), query.FilterSpec{
		Search:   req.Search,
		Category: req.Category,
		Stock:    query.StockFilter(req.Stock),
	})
	if err != nil {
		h.writeServiceError(c, err, "Failed to set filter")
		return
	}

	c.JSON(http.StatusOK, state)
}

type toggleRequest struct {
	ID string `json:"id" binding:"required"`
}

// toggleSelection flips selection membership of one id
func (h *Handler) toggleSelection(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.inventory.ToggleSelection(c.Request.Context(), req.ID))
}

// selectAllVisible applies the tri-state select-all to the current view
func (h *Handler) selectAllVisible(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.SelectAllVisible(c.Request.Context()))
}

// clearSelection empties the selection set
func (h *Handler) clearSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.ClearSelection(c.Request.Context()))
}

// exportCSV serves the current filtered view as a CSV attachment
func (h *Handler) exportCSV(c *gin.Context) {
	csv := h.inventory.ExportCSV(c.Request.Context())

	filename := fmt.Sprintf("inventory_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// getStats returns the dashboard statistics
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.Stats(c.Request.Context()))
}

// getCategoryBreakdown returns per-category product counts
func (h *Handler) getCategoryBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.inventory.CategoryBreakdown(c.Request.Context()),
	})
}

type advisorProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category models.Category `json:"category" binding:"required"`
}

// generateDescription asks the advisory service for a product description
func (h *Handler) generateDescription(c *gin.Context) {
	var req advisorProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.advisor.GenerateDescription(c.Request.Context(), req.Name, req.Category))
}

// analyzeRisks asks the advisory service for a catalog risk report
func (h *Handler) analyzeRisks(c *gin.Context) {
	c.JSON(http.StatusOK, h.advisor.AnalyzeRisks(c.Request.Context()))
}

// suggestPriceRange asks the advisory service for a retail price range
func (h *Handler) suggestPriceRange(c *gin.Context) {
	var req advisorProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.advisor.SuggestPriceRange(c.Request.Context(), req.Name, req.Category))
}

// getTheme reads the dark-mode flag. A storage failure falls back to the
// configured default rather than breaking the dashboard.
func (h *Handler) getTheme(c *gin.Context) {
	dark, err := h.prefs.DarkMode(c.Request.Context())
	if err != nil {
		util.GetLogger().Warn("Failed to read theme preference", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"dark_mode": dark})
}

type themeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}

// setTheme stores the dark-mode flag
func (h *Handler) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.prefs.SetDarkMode(c.Request.Context(), *req.DarkMode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to store theme preference",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dark_mode": *req.DarkMode})
}

// writeServiceError maps service errors onto HTTP status codes
func (h *Handler) writeServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   message,
			"details": err.Error(),
		})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
