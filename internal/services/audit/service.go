package audit

import (
	"context"
	"log/slog"

	"github.com/aduwothevillian/GameVault/internal/dependencies/clock"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

// Service maintains the append-only admin action log. Records are written
// once with a storage-allocated monotonic id and never mutated.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new audit Service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Record appends one audit log entry and returns it
func (s *Service) Record(ctx context.Context, admin, target model.Identity, actionType model.AdminActionType, reason string) (*model.AdminAction, error) {
	id, err := s.storage.NextAdminActionID(ctx)
	if err != nil {
		return nil, err
	}

	action := &model.AdminAction{
		ID:     id,
		Admin:  admin,
		Target: target,
		Type:   actionType,
		Reason: reason,
		At:     s.clock.Now(),
		Active: true,
	}

	if err := s.storage.SaveAdminAction(ctx, action); err != nil {
		return nil, err
	}

	s.logger.Info("admin action recorded",
		slog.Uint64("id", uint64(action.ID)),
		slog.String("admin", string(admin)),
		slog.String("target", string(target)),
		slog.String("type", string(actionType)),
	)

	return action, nil
}

// Action retrieves one audit log entry by id
func (s *Service) Action(ctx context.Context, id model.AdminActionID) (*model.AdminAction, error) {
	return s.storage.GetAdminAction(ctx, id)
}
