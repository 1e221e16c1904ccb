package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserNameExists = errors.New("user name already registered")
	ErrInvalidManager = errors.New("manager must be an existing direct manager, HR manager or dean")
	ErrSelfManaged    = errors.New("user cannot be their own manager")
	ErrUserHasReports = errors.New("user still manages other users and must keep an approver role")
)
