package issue

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/order"
	apperrors "github.com/merchhub/server/internal/shared/errors"
)

// Handler handles HTTP requests for issues.
type Handler struct {
	service *Service
}

// NewHandler creates a new issue handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers issue routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/orders/:orderNo/issues", h.Report)

	issues := r.Group("/issues")
	{
		issues.GET("", h.ListIssues)
		issues.GET("/search", h.SearchIssues)
		issues.GET("/:id", h.GetIssue)
		issues.PUT("/:id/resolution", h.UpdateResolution)
		issues.DELETE("/:id", h.DeleteIssue)
	}
}

// Report files an issue against an order.
//
//	@Summary		Report an issue
//	@Description	File a complaint or defect; the refund or redo is applied to the order immediately
//	@Tags			Issues
//	@Accept			json
//	@Produce		json
//	@Param			orderNo	path		string				true	"Order number"
//	@Param			request	body		ReportIssueRequest	true	"Issue report"
//	@Success		201		{object}	ReportIssueResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/orders/{orderNo}/issues [post]
func (h *Handler) Report(c *gin.Context) {
	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.service.Report(c.Request.Context(), c.Param("orderNo"), req)
	if err != nil {
		handleIssueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListIssues returns all issues.
//
//	@Summary		List issues
//	@Description	Get all issues, newest first
//	@Tags			Issues
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/issues [get]
func (h *Handler) ListIssues(c *gin.Context) {
	issues, err := h.service.ListIssues(c.Request.Context())
	if err != nil {
		handleIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": toResponses(issues)})
}

// SearchIssues returns issues matching a text query.
//
//	@Summary		Search issues
//	@Description	Search issues by kind, description or resolution text
//	@Tags			Issues
//	@Produce		json
//	@Param			q	query		string	false	"Search text"
//	@Success		200	{object}	map[string]interface{}
//	@Router			/issues/search [get]
func (h *Handler) SearchIssues(c *gin.Context) {
	issues, err := h.service.SearchIssues(c.Request.Context(), c.Query("q"))
	if err != nil {
		handleIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": toResponses(issues)})
}

// GetIssue returns a single issue.
//
//	@Summary		Get issue
//	@Description	Get an issue with its linked order
//	@Tags			Issues
//	@Produce		json
//	@Param			id	path		string	true	"Issue ID"
//	@Success		200	{object}	IssueResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/issues/{id} [get]
func (h *Handler) GetIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.BadRequest("invalid issue ID"))
		return
	}

	issue, err := h.service.GetIssue(c.Request.Context(), id)
	if err != nil {
		handleIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue.ToResponse())
}

// UpdateResolution rewrites an issue's resolution note.
//
//	@Summary		Update issue resolution
//	@Description	Edit the resolution note on an issue
//	@Tags			Issues
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Issue ID"
//	@Param			request	body		UpdateResolutionRequest	true	"New resolution"
//	@Success		200		{object}	IssueResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/issues/{id}/resolution [put]
func (h *Handler) UpdateResolution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.BadRequest("invalid issue ID"))
		return
	}

	var req UpdateResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest(err.Error()))
		return
	}

	issue, err := h.service.UpdateResolution(c.Request.Context(), id, req.Resolution)
	if err != nil {
		handleIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue.ToResponse())
}

// DeleteIssue removes an issue record.
//
//	@Summary		Delete issue
//	@Description	Remove an issue record
//	@Tags			Issues
//	@Produce		json
//	@Param			id	path	string	true	"Issue ID"
//	@Success		204
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/issues/{id} [delete]
func (h *Handler) DeleteIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.BadRequest("invalid issue ID"))
		return
	}

	if err := h.service.DeleteIssue(c.Request.Context(), id); err != nil {
		handleIssueError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Helpers ---

func toResponses(issues []*Issue) []*IssueResponse {
	responses := make([]*IssueResponse, len(issues))
	for i, issue := range issues {
		responses[i] = issue.ToResponse()
	}
	return responses
}

func respondError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, appErr.ToResponse())
}

func handleIssueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrIssueNotFound):
		respondError(c, apperrors.NotFound("issue"))
	case errors.Is(err, order.ErrOrderNotFound):
		respondError(c, apperrors.NotFound("order"))
	case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrEmptyReason):
		respondError(c, apperrors.BadRequest(err.Error()))
	default:
		respondError(c, apperrors.Internal("unexpected error", err))
	}
}
