package domain

// Actor is the authenticated principal performing an operation.
type Actor struct {
	UserID UserID
	Role   Role
}

// IsStaff reports whether the actor is a land officer or an administrator.
func (a Actor) IsStaff() bool { return a.Role.IsStaff() }

// IsAdmin reports whether the actor is an administrator.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Is reports whether the actor is the given user.
func (a Actor) Is(id UserID) bool { return a.UserID == id }
