package request

import (
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/validator"
)

// CreateRequestRequest carries a leave or permission submission. Only the
// field group selected by Type may be filled.
type CreateRequestRequest struct {
	UserID int64  `json:"-"`
	Type   string `json:"type"`
	Reason string `json:"reason"`

	// leave
	LeaveType string `json:"leave_type,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// permission
	PermissionType string `json:"permission_type,omitempty"`
	Date           string `json:"date,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	switch Type(r.Type) {
	case TypeLeave:
		errs = r.validateLeave(errs)
	case TypePermission:
		errs = r.validatePermission(errs)
	case "":
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of leave, permission",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreateRequestRequest) validateLeave(errs validator.ValidationErrors) validator.ValidationErrors {
	if r.PermissionType != "" || r.Date != "" {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "permission fields are not allowed on a leave request",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of regular, casual, sick, unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	return errs
}

func (r *CreateRequestRequest) validatePermission(errs validator.ValidationErrors) validator.ValidationErrors {
	if r.LeaveType != "" || r.StartDate != "" || r.EndDate != "" {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "leave fields are not allowed on a permission request",
		})
	}

	if validator.IsEmpty(r.PermissionType) {
		errs = append(errs, validator.ValidationError{
			Field:   "permission_type",
			Message: "permission_type is required",
		})
	} else if !PermissionType(r.PermissionType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "permission_type",
			Message: "permission_type must be one of morning, afternoon",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	return errs
}

// Details builds the variant. Call only after Validate succeeded.
func (r *CreateRequestRequest) Details() Details {
	if Type(r.Type) == TypeLeave {
		start, _ := validator.IsValidDate(r.StartDate)
		end, _ := validator.IsValidDate(r.EndDate)
		return LeaveDetails{LeaveType: LeaveType(r.LeaveType), StartDate: start, EndDate: end}
	}
	date, _ := validator.IsValidDate(r.Date)
	return PermissionDetails{PermissionType: PermissionType(r.PermissionType), Date: date}
}

// UpdateStatusRequest asks for a target status directly. The caller picks the
// target matching its role.
type UpdateStatusRequest struct {
	RequestID int64  `json:"-"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, manager_approved, hr_approved, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecisionRequest is the body of the approve and reject endpoints.
type DecisionRequest struct {
	Notes string `json:"notes,omitempty"`
}

type RequestResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Type      Type   `json:"type"`
	Status    Status `json:"status"`
	Reason    string `json:"reason"`
	ManagerID *int64 `json:"manager_id,omitempty"`

	LeaveType *LeaveType `json:"leave_type,omitempty"`
	StartDate string     `json:"start_date,omitempty"`
	EndDate   string     `json:"end_date,omitempty"`
	Days      int        `json:"days,omitempty"`

	PermissionType *PermissionType `json:"permission_type,omitempty"`
	Date           string          `json:"date,omitempty"`

	RejectionReason   *string `json:"rejection_reason,omitempty"`
	HRApprovalNotes   *string `json:"hr_approval_notes,omitempty"`
	DeanApprovalNotes *string `json:"dean_approval_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:                r.ID,
		UserID:            r.UserID,
		Type:              r.Type(),
		Status:            r.Status,
		Reason:            r.Reason,
		ManagerID:         r.ManagerID,
		RejectionReason:   r.RejectionReason,
		HRApprovalNotes:   r.HRApprovalNotes,
		DeanApprovalNotes: r.DeanApprovalNotes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}

	return MatchDetails(r.Details,
		func(d LeaveDetails) RequestResponse {
			resp.LeaveType = &d.LeaveType
			resp.StartDate = validator.FormatDate(d.StartDate)
			resp.EndDate = validator.FormatDate(d.EndDate)
			resp.Days = d.Days()
			return resp
		},
		func(d PermissionDetails) RequestResponse {
			resp.PermissionType = &d.PermissionType
			resp.Date = validator.FormatDate(d.Date)
			return resp
		},
	)
}

func NewRequestResponses(reqs []Request) []RequestResponse {
	responses := make([]RequestResponse, len(reqs))
	for i, r := range reqs {
		responses[i] = NewRequestResponse(r)
	}
	return responses
}
