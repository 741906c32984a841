package activity

import (
	"context"
	"log/slog"
	"time"

	"teamcamp/internal/authz"

	"github.com/google/uuid"
)

type ActivityService struct {
	activityRepository *ActivityRepository
	resolver           *authz.Resolver
	logger             *slog.Logger
}

func NewActivityService(
	activityRepository *ActivityRepository,
	resolver *authz.Resolver,
	logger *slog.Logger,
) *ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		resolver:           resolver,
		logger:             logger,
	}
}

// Record writes an activity entry. Failures are logged and swallowed: the
// mutation that triggered the entry already happened and must not be undone
// by bookkeeping.
func (s *ActivityService) Record(ctx context.Context, message string, userID, projectID *uuid.UUID) {
	entry := &ActivityLog{
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.activityRepository.Create(ctx, entry); err != nil {
		s.logger.Error("failed to record activity", "error", err, "message", message)
	}
}

func (s *ActivityService) GetProjectActivity(
	ctx context.Context,
	projectID, userID uuid.UUID,
	request *GetActivityRequest,
) (*GetActivityResponse, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionViewProject); err != nil {
		return nil, err
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	entries, err := s.activityRepository.GetByProject(ctx, projectID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	return &GetActivityResponse{
		Entries: entries,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
