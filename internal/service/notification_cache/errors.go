package notification_cache

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCacheClosed          = errors.New("notification cache closed")
)
