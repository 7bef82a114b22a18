package issue

import (
	"time"

	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/order"
)

// ReportIssueRequest files an issue against an order. The reason becomes
// the resolution note.
type ReportIssueRequest struct {
	Kind        Kind   `json:"kind" binding:"required"`
	Description string `json:"description" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// UpdateResolutionRequest rewrites an issue's resolution note.
type UpdateResolutionRequest struct {
	Resolution string `json:"resolution" binding:"required"`
}

// RedoTimeline is the replacement fulfillment schedule announced when a
// defect triggers a redo.
type RedoTimeline struct {
	RedoStarted        time.Time `json:"redo_started"`
	ProductionComplete time.Time `json:"production_complete"`
	ExpectedDelivery   time.Time `json:"expected_delivery"`
}

// IssueResponse represents an issue in API responses.
type IssueResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	OrderNo     string    `json:"order_no,omitempty"`
	Kind        Kind      `json:"kind"`
	Description string    `json:"description"`
	Resolution  string    `json:"resolution"`
	LogDate     time.Time `json:"log_date"`
}

// ToResponse converts an Issue to IssueResponse.
func (i *Issue) ToResponse() *IssueResponse {
	resp := &IssueResponse{
		ID:          i.ID,
		OrderID:     i.OrderID,
		Kind:        i.Kind,
		Description: i.Description,
		Resolution:  i.Resolution,
		LogDate:     i.LogDate,
	}
	if i.Order != nil {
		resp.OrderNo = i.Order.OrderNo
	}
	return resp
}

// ReportIssueResponse is returned after an issue is filed and its
// resolution applied.
type ReportIssueResponse struct {
	Issue        *IssueResponse `json:"issue"`
	OrderStatus  order.Status   `json:"order_status"`
	RedoTimeline *RedoTimeline  `json:"redo_timeline,omitempty"`
}
