package domain

// Role is a closed set. Keeping it a dedicated type (instead of comparing raw
// strings) forces exhaustive handling in the access policy.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role value coming from storage or a session.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusOnProcess OrderStatusType = "on process"
	OrderStatusDone      OrderStatusType = "done"
)

// OrderStatuses lists all statuses in their fixed reporting order.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{OrderStatusPending, OrderStatusOnProcess, OrderStatusDone}
}

func ValidOrderStatus(raw string) bool {
	switch OrderStatusType(raw) {
	case OrderStatusPending, OrderStatusOnProcess, OrderStatusDone:
		return true
	default:
		return false
	}
}

// ReportStatusDefault is assigned to a report on creation.
const ReportStatusDefault = "pending"
