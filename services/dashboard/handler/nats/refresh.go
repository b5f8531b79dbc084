package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/urbancabz/console/internal/pkg/constants"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	natspkg "github.com/urbancabz/console/internal/pkg/nats"
	"github.com/urbancabz/console/services/dashboard"
)

const noticeTimeout = 15 * time.Second

// Subscriber is the part of the NATS client the handler needs
type Subscriber interface {
	Subscribe(subject string, handler natspkg.MessageHandler) error
}

// RefreshHandler applies refresh notices published by other console instances
type RefreshHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewRefreshHandler creates a new refresh notice handler
func NewRefreshHandler(dashboardUC dashboard.DashboardUC) *RefreshHandler {
	return &RefreshHandler{dashboardUC: dashboardUC}
}

// InitNATSConsumers subscribes to the refresh subject
func (h *RefreshHandler) InitNATSConsumers(client Subscriber) error {
	if err := client.Subscribe(constants.SubjectRefresh, h.HandleRefresh); err != nil {
		return fmt.Errorf("failed to subscribe to refresh notices: %w", err)
	}
	return nil
}

// HandleRefresh decodes one notice and refreshes the named collection
func (h *RefreshHandler) HandleRefresh(msg []byte) error {
	var notice models.RefreshNotice
	if err := json.Unmarshal(msg, &notice); err != nil {
		logger.Error("Failed to unmarshal refresh notice", logger.Err(err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), noticeTimeout)
	defer cancel()

	logger.Debug("Received refresh notice",
		logger.String("origin", notice.Origin),
		logger.String("collection", notice.Collection))

	return h.dashboardUC.HandleNotice(ctx, notice)
}
