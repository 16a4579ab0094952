package errors

import "fmt"

var (
	ErrRoomNotFound   = fmt.Errorf("room not found")
	ErrAccessDenied   = fmt.Errorf("access denied")
	ErrMemberNotFound = fmt.Errorf("member not found")
	ErrInvalidMessage = fmt.Errorf("invalid message")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
)
