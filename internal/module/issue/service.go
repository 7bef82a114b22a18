package issue

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/merchhub/server/internal/module/order"
	"github.com/merchhub/server/internal/shared/metrics"
	"go.uber.org/zap"
)

// Service implements issue operations.
type Service struct {
	repo        Repository
	orders      order.Repository
	transitions *order.StateMachine
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new issue service.
func NewService(repo Repository, orders order.Repository, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		orders:      orders,
		transitions: order.NewStateMachine(logger),
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// Report files an issue against an order and applies its resolution in the
// same transaction. A complaint refunds the order: the status moves to
// Refunded but the recorded price stays untouched for bookkeeping. A defect
// triggers a redo: the order goes back into production with a fresh
// one-week delivery estimate.
func (s *Service) Report(ctx context.Context, orderNo string, req ReportIssueRequest) (*ReportIssueResponse, error) {
	if !req.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	o, err := s.orders.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	now := s.now()
	issue := &Issue{
		OrderID:     o.ID,
		Kind:        req.Kind,
		Description: req.Description,
		LogDate:     now,
	}

	var update OrderUpdate
	var timeline *RedoTimeline
	switch req.Kind {
	case KindComplaint:
		issue.Resolution = RefundResolutionPrefix + reason
		update = OrderUpdate{Status: order.StatusRefunded}
	case KindDefect:
		issue.Resolution = RedoResolutionPrefix + reason
		redoDelivery := now.Add(RedoWindow)
		update = OrderUpdate{
			Status:       order.StatusRedoInProgress,
			ExpectedDate: &redoDelivery,
		}
		timeline = &RedoTimeline{
			RedoStarted:        now,
			ProductionComplete: now.Add(RedoProductionWindow),
			ExpectedDelivery:   redoDelivery,
		}
	}

	if err := s.transitions.Transition(o.OrderNo, o.Status, update.Status); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, issue, update); err != nil {
		return nil, err
	}

	issue.Order = o
	s.metrics.IssuesReportedTotal.WithLabelValues(string(req.Kind)).Inc()
	s.metrics.StatusTransitionsTotal.WithLabelValues(string(o.Status), string(update.Status)).Inc()
	s.logger.Info("issue reported",
		zap.String("order_no", orderNo),
		zap.String("kind", string(req.Kind)),
		zap.String("resolution", issue.Resolution),
	)

	return &ReportIssueResponse{
		Issue:        issue.ToResponse(),
		OrderStatus:  update.Status,
		RedoTimeline: timeline,
	}, nil
}

// GetIssue returns an issue by ID.
func (s *Service) GetIssue(ctx context.Context, id uuid.UUID) (*Issue, error) {
	return s.repo.Get(ctx, id)
}

// ListIssues returns all issues, newest first.
func (s *Service) ListIssues(ctx context.Context) ([]*Issue, error) {
	return s.repo.List(ctx)
}

// SearchIssues returns issues whose kind, description or resolution match
// the query.
func (s *Service) SearchIssues(ctx context.Context, query string) ([]*Issue, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// UpdateResolution rewrites an issue's resolution note. It only edits the
// record; the order-side effect of the original resolution stands.
func (s *Service) UpdateResolution(ctx context.Context, id uuid.UUID, resolution string) (*Issue, error) {
	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return nil, ErrEmptyReason
	}
	if err := s.repo.UpdateResolution(ctx, id, resolution); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// DeleteIssue removes an issue record.
func (s *Service) DeleteIssue(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("issue deleted", zap.String("issue_id", id.String()))
	return nil
}
