package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/events"
)

// AuditService writes a structured audit record for each domain event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventEmployeeUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventEmployeeDeleted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventVisitorRegistered, a.handleEvent)
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.String("actor_name", event.Actor.Name),
		zap.Time("timestamp", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
