package notification

import (
	"fmt"

	"tracking-service/internal/entities"
)

type feedResponse struct {
	Notifications []notificationDTO `json:"notifications"`
	UnreadCount   int64             `json:"unread_count"`
}

type notificationDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Timestamp   int64   `json:"timestamp"`
	IsRead      bool    `json:"is_read"`
	Role        string  `json:"role"`
	Type        *string `json:"type"`
	ReferenceID *string `json:"reference_id"`
}

type broadcastRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	TargetRole string `json:"target_role"`
}

func toDomainFeed(resp *feedResponse) (*entities.NotificationFeed, error) {
	notifications := make([]entities.Notification, 0, len(resp.Notifications))
	for i := range resp.Notifications {
		dto := &resp.Notifications[i]
		if dto.ID <= 0 {
			return nil, fmt.Errorf("notification %d: invalid id %d: %w", i, dto.ID, entities.ErrUpstreamData)
		}

		notifications = append(notifications, entities.Notification{
			ID:          dto.ID,
			Title:       dto.Title,
			Body:        dto.Body,
			Timestamp:   dto.Timestamp,
			IsRead:      dto.IsRead,
			Role:        entities.Role(dto.Role),
			Type:        dto.Type,
			ReferenceID: dto.ReferenceID,
		})
	}

	return &entities.NotificationFeed{
		Notifications: notifications,
		UnreadCount:   resp.UnreadCount,
	}, nil
}
