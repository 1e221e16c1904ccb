package request

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeLeave      Type = "leave"
	TypePermission Type = "permission"
)

func (t Type) IsValid() bool {
	return t == TypeLeave || t == TypePermission
}

type LeaveType string

const (
	LeaveTypeRegular LeaveType = "regular"
	LeaveTypeCasual  LeaveType = "casual"
	LeaveTypeSick    LeaveType = "sick"
	LeaveTypeUnpaid  LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeRegular, LeaveTypeCasual, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

type PermissionType string

const (
	PermissionTypeMorning   PermissionType = "morning"
	PermissionTypeAfternoon PermissionType = "afternoon"
)

func (t PermissionType) IsValid() bool {
	return t == PermissionTypeMorning || t == PermissionTypeAfternoon
}

type Status string

const (
	StatusPending         Status = "pending"
	StatusManagerApproved Status = "manager_approved"
	StatusHRApproved      Status = "hr_approved"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusManagerApproved, StatusHRApproved, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Details is the variant-specific part of a request. It is sealed: only
// LeaveDetails and PermissionDetails implement it.
type Details interface {
	Type() Type
	sealed()
}

type LeaveDetails struct {
	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
}

func (LeaveDetails) Type() Type { return TypeLeave }
func (LeaveDetails) sealed()    {}

// Days returns the inclusive length of the leave span.
func (d LeaveDetails) Days() int {
	return int(d.EndDate.Sub(d.StartDate).Hours()/24) + 1
}

type PermissionDetails struct {
	PermissionType PermissionType
	Date           time.Time
}

func (PermissionDetails) Type() Type { return TypePermission }
func (PermissionDetails) sealed()    {}

// MatchDetails dispatches on the variant. Callers must handle both arms, so
// adding a variant breaks every consumer at compile time.
func MatchDetails[T any](d Details, onLeave func(LeaveDetails) T, onPermission func(PermissionDetails) T) T {
	switch v := d.(type) {
	case LeaveDetails:
		return onLeave(v)
	case PermissionDetails:
		return onPermission(v)
	}
	panic(fmt.Sprintf("request: unknown details variant %T", d))
}

type Request struct {
	ID        int64
	UserID    int64
	Status    Status
	Reason    string
	ManagerID *int64 // requester's manager at creation time
	Details   Details

	RejectionReason   *string
	HRApprovalNotes   *string
	DeanApprovalNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Request) Type() Type {
	return r.Details.Type()
}
