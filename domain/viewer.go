package domain

// Role is the fine-grained role an identity acts under.
type Role string

const (
	RoleMentor Role = "MENTOR"
	RoleMentee Role = "MENTEE"
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMentor, RoleMentee, RoleMember, RoleAdmin:
		return true
	}
	return false
}

// Viewer is the identity on whose behalf a read or write is evaluated.
// It is always resolved from the authenticated request context,
// never taken from a message payload.
type Viewer struct {
	ID   int64
	Role Role
}
