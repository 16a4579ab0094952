package services

import (
	"testing"

	"mentor-chat/domain"
	"mentor-chat/errors"

	"github.com/stretchr/testify/require"
)

func Test_CheckAccess_Decision_Table(t *testing.T) {
	mentoring := domain.Room{ID: 1, Variant: domain.Mentoring{MentorID: 10, MenteeID: 20}}
	adminRoom := domain.Room{ID: 2, Variant: domain.AdminContact{AdminID: 5, MemberID: 20}}

	cases := []struct {
		name    string
		room    domain.Room
		viewer  domain.Viewer
		allowed bool
	}{
		{"mentor in own mentoring room", mentoring, domain.Viewer{ID: 10, Role: domain.RoleMentor}, true},
		{"mentee in own mentoring room", mentoring, domain.Viewer{ID: 20, Role: domain.RoleMentee}, true},
		{"stranger mentee on mentoring room", mentoring, domain.Viewer{ID: 99, Role: domain.RoleMentee}, false},
		{"stranger mentor on mentoring room", mentoring, domain.Viewer{ID: 99, Role: domain.RoleMentor}, false},
		{"participant id with member role", mentoring, domain.Viewer{ID: 10, Role: domain.RoleMember}, false},
		{"admin never enters mentoring rooms", mentoring, domain.Viewer{ID: 10, Role: domain.RoleAdmin}, false},

		{"admin party on admin room", adminRoom, domain.Viewer{ID: 5, Role: domain.RoleAdmin}, true},
		{"other admin on admin room", adminRoom, domain.Viewer{ID: 6, Role: domain.RoleAdmin}, false},
		{"member party on admin room", adminRoom, domain.Viewer{ID: 20, Role: domain.RoleMember}, true},
		{"member party acting as mentor", adminRoom, domain.Viewer{ID: 20, Role: domain.RoleMentor}, true},
		{"member party acting as mentee", adminRoom, domain.Viewer{ID: 20, Role: domain.RoleMentee}, true},
		{"stranger member on admin room", adminRoom, domain.Viewer{ID: 99, Role: domain.RoleMember}, false},
		{"admin id with member role", adminRoom, domain.Viewer{ID: 5, Role: domain.RoleMember}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckAccess(tc.room, tc.viewer)
			if tc.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errors.ErrAccessDenied)
			}
		})
	}
}

func Test_CheckAccess_Unknown_Variant_Denies(t *testing.T) {
	err := CheckAccess(domain.Room{ID: 3}, domain.Viewer{ID: 10, Role: domain.RoleAdmin})
	require.ErrorIs(t, err, errors.ErrAccessDenied)
}
