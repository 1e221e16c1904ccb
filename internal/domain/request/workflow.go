package request

import (
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/validator"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// NotesField names the request field a decision writes its notes into.
type NotesField int

const (
	NotesNone NotesField = iota
	NotesRejection
	NotesHRApproval
	NotesDeanApproval
)

type transitionKey struct {
	from   Status
	role   user.Role
	action Action
}

var transitions = map[transitionKey]Status{
	{StatusPending, user.RoleDirectManager, ActionApprove}:     StatusManagerApproved,
	{StatusPending, user.RoleDirectManager, ActionReject}:      StatusRejected,
	{StatusPending, user.RoleHRManager, ActionApprove}:         StatusHRApproved,
	{StatusPending, user.RoleHRManager, ActionReject}:          StatusRejected,
	{StatusManagerApproved, user.RoleHRManager, ActionApprove}: StatusHRApproved,
	{StatusManagerApproved, user.RoleHRManager, ActionReject}:  StatusRejected,
	{StatusHRApproved, user.RoleDean, ActionApprove}:           StatusApproved,
	{StatusHRApproved, user.RoleDean, ActionReject}:            StatusRejected,
}

// Decision is the outcome of applying an action to a request. Escalate is
// the role that must review next, empty when the chain ends.
type Decision struct {
	From       Status
	To         Status
	Action     Action
	Notes      string
	NotesField NotesField
	Escalate   user.Role
}

// Decide computes the next status for a request in status current when an
// actor holding role performs action. It has no side effects.
func Decide(current Status, role user.Role, action Action, notes string) (Decision, error) {
	if current.IsTerminal() {
		return Decision{}, ErrRequestFinalized
	}

	to, ok := transitions[transitionKey{from: current, role: role, action: action}]
	if !ok {
		return Decision{}, ErrInvalidTransition
	}

	if action == ActionReject && validator.IsEmpty(notes) {
		return Decision{}, validator.Single("notes", "notes are required when rejecting a request")
	}

	d := Decision{
		From:       current,
		To:         to,
		Action:     action,
		Notes:      notes,
		NotesField: notesFieldFor(action, role),
	}

	switch to {
	case StatusManagerApproved:
		d.Escalate = user.RoleHRManager
	case StatusHRApproved:
		d.Escalate = user.RoleDean
	}

	return d, nil
}

func notesFieldFor(action Action, role user.Role) NotesField {
	if action == ActionReject {
		return NotesRejection
	}
	switch role {
	case user.RoleHRManager:
		return NotesHRApproval
	case user.RoleDean:
		return NotesDeanApproval
	}
	return NotesNone
}

// ActionForTarget maps a requested target status to the action producing it.
func ActionForTarget(target Status) (Action, error) {
	switch target {
	case StatusRejected:
		return ActionReject, nil
	case StatusManagerApproved, StatusHRApproved, StatusApproved:
		return ActionApprove, nil
	}
	return "", ErrInvalidTransition
}

// Apply returns a copy of r with the decision recorded.
func Apply(r Request, d Decision, now time.Time) Request {
	r.Status = d.To
	r.UpdatedAt = now

	// an HR or Dean approval always records its notes, even when empty
	notes := d.Notes
	switch d.NotesField {
	case NotesRejection:
		r.RejectionReason = &notes
	case NotesHRApproval:
		r.HRApprovalNotes = &notes
	case NotesDeanApproval:
		r.DeanApprovalNotes = &notes
	}

	return r
}
