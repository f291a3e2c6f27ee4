package notification

import "tracking-service/internal/entities"

type NotificationDB struct {
	ID          int64
	Title       string
	Body        string
	Timestamp   int64
	IsRead      bool
	Role        string
	Type        *string
	ReferenceID *string
}

func ToDomain(n *NotificationDB) entities.Notification {
	return entities.Notification{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Timestamp:   n.Timestamp,
		IsRead:      n.IsRead,
		Role:        entities.Role(n.Role),
		Type:        n.Type,
		ReferenceID: n.ReferenceID,
	}
}

func FromDomain(n *entities.Notification) NotificationDB {
	return NotificationDB{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Timestamp:   n.Timestamp,
		IsRead:      n.IsRead,
		Role:        n.Role.String(),
		Type:        n.Type,
		ReferenceID: n.ReferenceID,
	}
}
