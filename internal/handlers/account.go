package handlers

import (
	"context"

	"github.com/platemenu/platemenu/internal/middleware"
	"go.uber.org/zap"
)

// AccountHandler serves account mutations. Payment and subscription
// state live behind the external billing collaborator; the handler here
// only acknowledges the request so the strict, fail-closed admission
// config on this route can be exercised end to end.
type AccountHandler struct {
	logger *zap.Logger
}

// NewAccountHandler creates an account handler.
func NewAccountHandler(logger *zap.Logger) *AccountHandler {
	return &AccountHandler{logger: logger}
}

// ReactivateSubscription schedules a subscription reactivation.
func (h *AccountHandler) ReactivateSubscription(ctx context.Context, _ *struct{}) (*ReactivateSubscriptionResponse, error) {
	meta := middleware.MetaFromContext(ctx)

	h.logger.Info("subscription reactivation requested",
		zap.String("principal", middleware.PrincipalFromContext(ctx)),
		zap.String("request_id", meta.RequestID),
	)

	resp := &ReactivateSubscriptionResponse{}
	resp.Body.Status = "scheduled"

	return resp, nil
}
