package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/merchhub/server/internal/module/catalog"
	apperrors "github.com/merchhub/server/internal/shared/errors"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new order handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers order routes. placement carries the idempotency
// middleware so retried confirmations don't double-place.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, idempotency gin.HandlerFunc) {
	orders := r.Group("/orders")
	{
		orders.POST("/quote", h.Quote)
		orders.POST("", idempotency, h.PlaceOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:orderNo", h.GetOrder)
		orders.PUT("/:orderNo/status", h.UpdateStatus)
		orders.DELETE("/:orderNo", h.DeleteOrder)
	}
}

// Quote prices an order without placing it.
//
//	@Summary		Quote an order
//	@Description	Preview subtotal, discount, total and the delivery timeline before confirming
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		QuoteRequest	true	"Quote request"
//	@Success		200		{object}	QuoteResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/orders/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// PlaceOrder confirms an order.
//
//	@Summary		Place an order
//	@Description	Confirm an order: assigns the order number, freezes the price and decrements stock
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string				false	"Idempotency key"
//	@Param			request			body		PlaceOrderRequest	true	"Order request"
//	@Success		201				{object}	OrderResponse
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Failure		409				{object}	map[string]string
//	@Router			/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	o, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, o.ToResponse())
}

// ListOrders returns orders, optionally filtered by status.
//
//	@Summary		List orders
//	@Description	Get orders newest first, optionally filtered by status
//	@Tags			Orders
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Param			limit	query		int		false	"Page size (default 50, max 100)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	ListOrdersResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter := ListFilter{
		Status: Status(c.Query("status")),
		Limit:  limit,
		Offset: offset,
	}

	orders, total, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = o.ToResponse()
	}

	c.JSON(http.StatusOK, ListOrdersResponse{
		Orders: responses,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetOrder returns a single order by order number.
//
//	@Summary		Get order
//	@Description	Get an order with its customization and pricing breakdown
//	@Tags			Orders
//	@Produce		json
//	@Param			orderNo	path		string	true	"Order number"
//	@Success		200		{object}	OrderResponse
//	@Failure		404		{object}	map[string]string
//	@Router			/orders/{orderNo} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		handleOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, o.ToResponse())
}

// UpdateStatus moves an order to a new status.
//
//	@Summary		Update order status
//	@Description	Set an order's status; any transition between known statuses is allowed
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			orderNo	path		string				true	"Order number"
//	@Param			request	body		UpdateStatusRequest	true	"New status"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/orders/{orderNo}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), c.Param("orderNo"), req.Status)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, o.ToResponse())
}

// DeleteOrder removes an order record.
//
//	@Summary		Delete order
//	@Description	Remove an order; refused while issue records still reference it
//	@Tags			Orders
//	@Produce		json
//	@Param			orderNo	path		string	true	"Order number"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Failure		409	{object}	map[string]string
//	@Router			/orders/{orderNo} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Request.Context(), c.Param("orderNo")); err != nil {
		handleOrderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Helpers ---

func respondError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, appErr.ToResponse())
}

func handleOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		respondError(c, apperrors.NotFound("order"))
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(c, apperrors.NotFound("product"))
	case errors.Is(err, catalog.ErrInsufficientStock):
		respondError(c, apperrors.InsufficientStock())
	case errors.Is(err, ErrOrderHasIssues):
		respondError(c, apperrors.Conflict("order has linked issues"))
	case errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidCustomization),
		errors.Is(err, ErrInvalidStatus):
		respondError(c, apperrors.BadRequest(err.Error()))
	default:
		respondError(c, apperrors.Internal("unexpected error", err))
	}
}
