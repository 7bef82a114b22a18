package issue

import (
	"time"

	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/order"
)

// Kind classifies an order issue and determines how it is resolved:
// complaints are refunded, defects are redone.
type Kind string

const (
	KindComplaint Kind = "Complaint"
	KindDefect    Kind = "Defect"
)

// Valid reports whether the kind is a known value.
func (k Kind) Valid() bool {
	return k == KindComplaint || k == KindDefect
}

// Resolution prefixes recorded on the issue.
const (
	RefundResolutionPrefix = "Refund: "
	RedoResolutionPrefix   = "Redo: "
)

// Redo schedule: production is redone inside three days and the
// replacement arrives within a week of the defect report.
const (
	RedoProductionWindow = 3 * 24 * time.Hour
	RedoWindow           = 7 * 24 * time.Hour
)

// Issue is a post-sale problem report attached to an order, together with
// the resolution applied for it.
type Issue struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	Kind        Kind      `json:"kind" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Resolution  string    `json:"resolution" gorm:"not null"`
	LogDate     time.Time `json:"log_date" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Order *order.Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}

// TableName returns the database table name.
func (Issue) TableName() string {
	return "issues"
}
