package order

import "go.uber.org/zap"

// StateMachine validates and records order status transitions. The shop
// deliberately allows any transition between known statuses, including
// reopening terminal ones: staff correct mis-keyed statuses directly, and
// issue resolution moves completed orders back into production. Unusual
// transitions are audit-logged rather than blocked.
type StateMachine struct {
	logger *zap.Logger
}

// NewStateMachine creates a new order state machine.
func NewStateMachine(logger *zap.Logger) *StateMachine {
	return &StateMachine{logger: logger}
}

// terminal statuses, only interesting for audit logging.
var terminalStatuses = map[Status]bool{
	StatusCompleted: true,
	StatusCancelled: true,
	StatusRefunded:  true,
}

// Transition validates a status change for an order. It returns an error
// only when the target status is unknown; every transition between known
// statuses is permitted.
func (sm *StateMachine) Transition(orderNo string, from, to Status) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}

	if terminalStatuses[from] && to != from {
		sm.logger.Warn("reopening terminal order status",
			zap.String("order_no", orderNo),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
	} else {
		sm.logger.Info("order status transition",
			zap.String("order_no", orderNo),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
	}

	return nil
}
