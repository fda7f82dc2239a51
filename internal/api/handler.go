package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace-service/internal/catalog"
	"marketplace-service/internal/service"
	"marketplace-service/internal/session"
	"marketplace-service/internal/status"
	"marketplace-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalogService  *service.CatalogService
	orderService    *service.OrderService
	earningsService *service.EarningsService
	sessions        *session.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalogService *service.CatalogService,
	orderService *service.OrderService,
	earningsService *service.EarningsService,
	sessions *session.Store,
) *Handler {
	return &Handler{
		catalogService:  catalogService,
		orderService:    orderService,
		earningsService: earningsService,
		sessions:        sessions,
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
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:idOrSlug", h.getProduct)
		v1.GET("/categories", h.listCategories)
		v1.GET("/categories/:id/subcategories", h.listSubcategories)
		v1.GET("/order-statuses", h.listOrderStatuses)

		authed := v1.Group("")
		authed.Use(authMiddleware(h.sessions))
		{
			authed.POST("/auth/logout", h.logout)

			vendor := authed.Group("")
			vendor.Use(requireRole(status.RoleVendor))
			{
				vendor.GET("/orders/vendor", h.listVendorOrders)
				vendor.PATCH("/orders/:id/status", h.transitionVendorOrder)
				vendor.GET("/vendor/earnings", h.vendorEarnings)
			}

			admin := authed.Group("/admin")
			admin.Use(requireRole(status.RoleAdmin))
			{
				admin.GET("/orders", h.listAllOrders)
				admin.PATCH("/orders/:id/status", h.transitionAdminOrder)
				admin.GET("/stats", h.adminStats)
				admin.GET("/revenue-chart", h.revenueChart)
			}
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

// listProducts handles the faceted product listing
func (h *Handler) listProducts(c *gin.Context) {
	var filter catalog.FilterState
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid filter parameters",
			"details": err.Error(),
		})
		return
	}

	page, err := h.catalogService.ListProducts(c.Request.Context(), &filter)
	if err != nil {
		var valErr *catalog.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// getProduct handles product detail by id or slug
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// listCategories returns all categories
func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// listSubcategories returns the children of a top-level category
func (h *Handler) listSubcategories(c *gin.Context) {
	parentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	categories, err := h.catalogService.ListSubcategories(c.Request.Context(), parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subcategories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// listOrderStatuses exposes the status registry for dashboard tabs
func (h *Handler) listOrderStatuses(c *gin.Context) {
	out := make(map[string]status.Meta, len(status.All))
	for _, s := range status.All {
		meta, err := status.Metadata(s)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out[s] = meta
	}
	c.JSON(http.StatusOK, gin.H{"statuses": out})
}

// logout clears the caller's session
func (h *Handler) logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := header[len("Bearer "):]
	if err := h.sessions.Clear(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// listVendorOrders returns the calling vendor's orders
func (h *Handler) listVendorOrders(c *gin.Context) {
	sess := currentSession(c)

	orders, err := h.orderService.ListVendorOrders(c.Request.Context(), sess.VendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// transitionVendorOrder applies a vendor-initiated status transition
func (h *Handler) transitionVendorOrder(c *gin.Context) {
	sess := currentSession(c)

	orderID, ok := h.parseOrderID(c)
	if !ok {
		return
	}

	// Vendors may only act on their own orders.
	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.VendorID != sess.VendorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Order belongs to another vendor"})
		return
	}

	h.applyTransition(c, orderID, status.RoleVendor)
}

// listAllOrders returns orders for the admin dashboard, optionally
// filtered by status tab
func (h *Handler) listAllOrders(c *gin.Context) {
	orders, err := h.orderService.ListAllOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		var unknownErr *status.UnknownStatusError
		if errors.As(err, &unknownErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknownErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// transitionAdminOrder applies an admin-initiated status transition
func (h *Handler) transitionAdminOrder(c *gin.Context) {
	orderID, ok := h.parseOrderID(c)
	if !ok {
		return
	}
	h.applyTransition(c, orderID, status.RoleAdmin)
}

func (h *Handler) parseOrderID(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return orderID, true
}

func (h *Handler) applyTransition(c *gin.Context, orderID int64, role string) {
	var req service.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), orderID, &req, role)
	if err != nil {
		h.renderTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// renderTransitionError maps domain errors to HTTP codes. Validation
// failures are client errors; lock and version contention are conflicts.
func (h *Handler) renderTransitionError(c *gin.Context, err error) {
	var illegalErr *status.IllegalTransitionError
	var termErr *status.TerminalStateError
	var unknownErr *status.UnknownStatusError

	switch {
	case errors.As(err, &termErr):
		c.JSON(http.StatusConflict, gin.H{"error": termErr.Error()})
	case errors.As(err, &illegalErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": illegalErr.Error()})
	case errors.As(err, &unknownErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": unknownErr.Error()})
	case errors.Is(err, service.ErrTransitionInProgress), errors.Is(err, store.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Concurrent transition, retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update order status",
			"details": err.Error(),
		})
	}
}

// vendorEarnings returns the calling vendor's earnings page payload
func (h *Handler) vendorEarnings(c *gin.Context) {
	sess := currentSession(c)

	out, err := h.earningsService.GetVendorEarnings(c.Request.Context(), sess.VendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute earnings"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// adminStats returns platform-wide revenue and order statistics
func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.earningsService.GetAdminStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// revenueChart returns monthly revenue buckets
func (h *Handler) revenueChart(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	rows, err := h.earningsService.GetRevenueChart(c.Request.Context(), months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build revenue chart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": rows})
}
