package services

import (
	"mentor-chat/domain"
	"mentor-chat/errors"
)

// CheckAccess decides whether a viewer may read or act on a room.
// It is a total function over both room variants: every variant/role
// combination lands on an explicit permit or denial, nothing falls through.
// It has no side effects and no state.
func CheckAccess(room domain.Room, viewer domain.Viewer) error {
	switch v := room.Variant.(type) {
	case domain.Mentoring:
		switch viewer.Role {
		case domain.RoleMentor, domain.RoleMentee:
			if viewer.ID == v.MentorID || viewer.ID == v.MenteeID {
				return nil
			}
			return errors.ErrAccessDenied
		case domain.RoleMember, domain.RoleAdmin:
			return errors.ErrAccessDenied
		default:
			return errors.ErrAccessDenied
		}
	case domain.AdminContact:
		switch viewer.Role {
		case domain.RoleAdmin:
			if viewer.ID == v.AdminID {
				return nil
			}
			return errors.ErrAccessDenied
		case domain.RoleMember, domain.RoleMentor, domain.RoleMentee:
			// Mentors and mentees face the admin desk as plain members.
			if viewer.ID == v.MemberID {
				return nil
			}
			return errors.ErrAccessDenied
		default:
			return errors.ErrAccessDenied
		}
	default:
		return errors.ErrAccessDenied
	}
}
