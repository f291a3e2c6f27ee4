package position_updated

// positionEvent - сообщение топика position.updated.
type positionEvent struct {
	OrderID    int64    `json:"order_id"`
	AgentID    *int64   `json:"delivery_partner_id"`
	Latitude   *float64 `json:"lat"`
	Longitude  *float64 `json:"lng"`
	CapturedAt *int64   `json:"captured_at"`
}
