package domain

// Role represents the role of an actor
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Operation is an action guarded by a role check
type Operation int

const (
	OpCreateBooking Operation = iota
	OpBlockTimeslot
	OpReadAnyBooking
	OpUpdateAnyBooking
	OpChangeBookingStatus
	OpCancelAnyBooking
	OpManageCourts
	OpInitiatePayment
)

// Can reports whether the role is allowed to perform the operation
func (r Role) Can(op Operation) bool {
	switch r {
	case RoleUser:
		switch op {
		case OpCreateBooking, OpInitiatePayment:
			return true
		default:
			return false
		}
	case RoleManager:
		switch op {
		case OpInitiatePayment:
			return false
		default:
			return true
		}
	case RoleAdmin:
		switch op {
		case OpCreateBooking, OpInitiatePayment:
			return false
		default:
			return true
		}
	default:
		return false
	}
}

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

// User represents an account known to the identity provider
type User struct {
	ID       int64
	Email    string
	FullName string
	Role     Role
	IsActive bool
}

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID int64
	Role   Role
}

// Can reports whether the actor's role allows the operation
func (a Actor) Can(op Operation) bool {
	return a.Role.Can(op)
}

// CanAccess reports whether the actor may act on a booking owned by ownerID
// using the privileged operation op when not the owner
func (a Actor) CanAccess(ownerID int64, op Operation) bool {
	return a.UserID == ownerID || a.Role.Can(op)
}
