package repositories

import (
	"testing"
	"time"

	"mentor-chat/errors"

	"github.com/stretchr/testify/require"
)

func Test_GetNickname_After_Save(t *testing.T) {
	req := require.New(t)
	repository := NewMemberRepository(openTestDB(t))

	err := repository.Save(Member{ID: 20, Nickname: "mentee-lee", CreatedAt: time.Now().UTC()})
	req.NoError(err)

	nickname, err := repository.GetNickname(20)
	req.NoError(err)
	req.Equal("mentee-lee", nickname)
}

func Test_GetNickname_Miss(t *testing.T) {
	req := require.New(t)
	repository := NewMemberRepository(openTestDB(t))

	_, err := repository.GetNickname(99)
	req.ErrorIs(err, errors.ErrMemberNotFound)
}
