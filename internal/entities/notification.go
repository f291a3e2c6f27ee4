package entities

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdmin         Role = "admin"
	RoleDeliveryAgent Role = "delivery_agent"

	// RoleAll - адресат рассылки; записи с этой ролью видны всем ролям
	RoleAll Role = "all"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDeliveryAgent:
		return true
	default:
		return false
	}
}

func (r Role) IsValidTarget() bool {
	return r == RoleAll || r.IsValid()
}

type Notification struct {
	ID          int64
	Title       string
	Body        string
	Timestamp   int64
	IsRead      bool
	Role        Role
	Type        *string
	ReferenceID *string
}

// NotificationFeed - одна страница удаленной ленты.
type NotificationFeed struct {
	Notifications []Notification
	UnreadCount   int64
}

type Broadcast struct {
	Title      string
	Body       string
	TargetRole Role
}

type SyncState string

const (
	SyncIdle           SyncState = "idle"
	SyncFetching       SyncState = "fetching"
	SyncReplacingLocal SyncState = "replacing_local"
	SyncFailed         SyncState = "failed"
)

func (s SyncState) String() string {
	return string(s)
}
