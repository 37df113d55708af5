package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/izelavimelek/cliply/internal/models"
	"github.com/izelavimelek/cliply/internal/rbac"
)

type PayoutService struct {
	payoutRepo PayoutStore
	log        *zap.Logger
}

func NewPayoutService(payoutRepo PayoutStore, log *zap.Logger) *PayoutService {
	return &PayoutService{payoutRepo: payoutRepo, log: log}
}

// ListMine returns the calling creator's payouts, newest first.
func (s *PayoutService) ListMine(ctx context.Context, session *rbac.Session, limit, offset int) ([]models.Payout, error) {
	return s.payoutRepo.ListByCreator(ctx, session.UserID, limit, offset)
}
