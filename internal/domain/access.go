package domain

// Action is what an actor wants to do with a single record.
type Action int

const (
	ActionRead Action = iota
	ActionEdit
	ActionDelete
)

// Actor is the identity attached to an authenticated request.
type Actor struct {
	ID       int64
	Username string
	Role     Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess is the single per-record authorization rule: admins may do
// anything, everyone else only touches records they own. Access is
// all-or-nothing per record, the action does not change the outcome today but
// stays in the signature so callers state their intent.
//
// Record existence must be checked before calling this, a missing record is
// reported as not-found, not as denial.
func CanAccess(actor Actor, recordOwnerID int64, _ Action) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleUser:
		return actor.ID == recordOwnerID
	default:
		// unknown role, deny
		return false
	}
}
