package dto

// Ответы и тела запросов REST и websocket.

type ErrorResponse struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// PositionUpdateForm - form-encoded тело POST /location/update.
type PositionUpdateForm struct {
	OrderID    int64    `json:"order_id" validate:"required,gt=0"`
	AgentID    *int64   `json:"delivery_partner_id" validate:"omitempty,gt=0"`
	Latitude   *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Longitude  *float64 `json:"lng" validate:"required,min=-180,max=180"`
	CapturedAt *int64   `json:"captured_at" validate:"omitempty,gt=0"`
}

type Position struct {
	OrderID    int64   `json:"order_id"`
	AgentID    *int64  `json:"delivery_partner_id,omitempty"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	CapturedAt int64   `json:"captured_at"`
}

// RouteQuery - точка назначения GET /orders/{order_id}/route.
type RouteQuery struct {
	Latitude  *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

type RoutePoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type Route struct {
	Points          []RoutePoint `json:"points"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
}

type Notification struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Timestamp   int64   `json:"timestamp"`
	IsRead      bool    `json:"is_read"`
	Role        string  `json:"role"`
	Type        *string `json:"type"`
	ReferenceID *string `json:"reference_id"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

type SyncStatusResponse struct {
	State      string  `json:"state"`
	LastSyncAt *int64  `json:"last_sync_at,omitempty"`
	LastError  *string `json:"last_error,omitempty"`
}

type BroadcastRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Body       string `json:"body" validate:"required,max=2000"`
	TargetRole string `json:"target_role" validate:"required,oneof=customer admin delivery_agent all"`
}
