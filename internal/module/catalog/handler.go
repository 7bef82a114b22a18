package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/merchhub/server/internal/shared/errors"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new catalog handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers catalog routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/customization", h.GetCustomizationSchema)
	}
}

// ListProducts returns the product catalog.
//
//	@Summary		List products
//	@Description	Get all catalog products with price, stock and production hours
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = p.ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{"products": responses})
}

// GetProduct returns a single product.
//
//	@Summary		Get product
//	@Description	Get details of a specific product
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.BadRequest("invalid product ID"))
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, product.ToResponse())
}

// GetCustomizationSchema returns the customization options for a product.
// Clients drive their attribute prompts from this schema before placing
// an order.
//
//	@Summary		Get customization schema
//	@Description	Get the size/color/text options a product accepts at order time
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	CustomizationSchema
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/products/{id}/customization [get]
func (h *Handler) GetCustomizationSchema(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.BadRequest("invalid product ID"))
		return
	}

	schema, err := h.service.GetCustomizationSchema(c.Request.Context(), productID)
	if err != nil {
		handleCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, schema)
}

// --- Helpers ---

func respondError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, appErr.ToResponse())
}

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		respondError(c, apperrors.NotFound("product"))
	default:
		respondError(c, apperrors.Internal("unexpected error", err))
	}
}
