package services

import (
	"context"

	"github.com/avelev/schoolguard/internal/client/api"
	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/logging"
)

// NotificationService covers admin dashboard notifications.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
}

type notificationService struct {
	client api.Client
	logger logging.Logger
}

func NewNotificationService(client api.Client, logger logging.Logger) NotificationService {
	return &notificationService{client: client, logger: logger.With("component", "notifications")}
}

func (n *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return n.client.GetNotifications(ctx)
}

func (n *notificationService) MarkRead(ctx context.Context, id string) error {
	return n.client.MarkNotificationAsRead(ctx, id)
}

// UnreadCount is derived client-side; the backend offers no dedicated
// counter endpoint.
func (n *notificationService) UnreadCount(ctx context.Context) (int, error) {
	list, err := n.client.GetNotifications(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range list {
		if !item.Read {
			count++
		}
	}
	return count, nil
}
