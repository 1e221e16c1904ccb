package request

import (
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
)

// RequesterLookup resolves the owner of a request. ok is false when the
// requester no longer exists.
type RequesterLookup func(userID int64) (requester user.User, ok bool)

// Visibility reports whether viewer may act on r right now. requester is nil
// when the owner could not be resolved.
type Visibility func(viewer user.User, r Request, requester *user.User) bool

// Capabilities describes what a role can do in the approval chain.
// ApproveTarget is the status an approval by this role aims for.
type Capabilities struct {
	Role          user.Role
	CanReview     bool
	ApproveTarget Status
	Actionable    Visibility
}

func nothing(user.User, Request, *user.User) bool { return false }

var capabilities = map[user.Role]Capabilities{
	user.RoleEmployee: {
		Role:       user.RoleEmployee,
		Actionable: nothing,
	},
	user.RoleDirectManager: {
		Role:          user.RoleDirectManager,
		CanReview:     true,
		ApproveTarget: StatusManagerApproved,
		Actionable: func(viewer user.User, r Request, _ *user.User) bool {
			return r.Status == StatusPending && r.ManagerID != nil && *r.ManagerID == viewer.ID
		},
	},
	user.RoleHRManager: {
		Role:          user.RoleHRManager,
		CanReview:     true,
		ApproveTarget: StatusHRApproved,
		Actionable: func(_ user.User, r Request, requester *user.User) bool {
			if r.Status == StatusManagerApproved {
				return true
			}
			// direct-to-HR routing follows the requester's current manager
			return r.Status == StatusPending && (requester == nil || !requester.HasManager())
		},
	},
	user.RoleDean: {
		Role:          user.RoleDean,
		CanReview:     true,
		ApproveTarget: StatusApproved,
		Actionable: func(_ user.User, r Request, _ *user.User) bool {
			return r.Status == StatusHRApproved
		},
	},
}

// CapabilitiesFor returns the approval capabilities of role. Unknown roles
// get an empty capability set.
func CapabilitiesFor(role user.Role) Capabilities {
	if c, ok := capabilities[role]; ok {
		return c
	}
	return Capabilities{Role: role, Actionable: nothing}
}

// IsActionable evaluates the actionable predicate for a single request.
func IsActionable(viewer user.User, r Request, lookup RequesterLookup) bool {
	return CapabilitiesFor(viewer.Role).Actionable(viewer, r, requesterOf(r, lookup))
}

// Actionable filters reqs down to the ones viewer may approve or reject,
// preserving input order.
func Actionable(viewer user.User, reqs []Request, lookup RequesterLookup) []Request {
	caps := CapabilitiesFor(viewer.Role)
	result := make([]Request, 0)
	for _, r := range reqs {
		if caps.Actionable(viewer, r, requesterOf(r, lookup)) {
			result = append(result, r)
		}
	}
	return result
}

// CanView reports whether viewer may read r: owners see their own requests and
// reviewers see every request.
func CanView(viewer user.User, r Request) bool {
	return r.UserID == viewer.ID || CapabilitiesFor(viewer.Role).CanReview
}

func requesterOf(r Request, lookup RequesterLookup) *user.User {
	if lookup == nil {
		return nil
	}
	u, ok := lookup(r.UserID)
	if !ok {
		return nil
	}
	return &u
}
