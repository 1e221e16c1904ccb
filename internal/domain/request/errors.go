package request

import "errors"

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrInvalidTransition = errors.New("status transition not allowed for this role")
	ErrRequestFinalized  = errors.New("request has already been finalized")
	ErrNotActionable     = errors.New("request is not awaiting your review")
	ErrAccessDenied      = errors.New("not allowed to view this request")
)
