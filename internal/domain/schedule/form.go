package schedule

import (
	"time"

	"github.com/hospital/gateway/internal/platform/forms"
)

// Form carries the schedule create/edit fields. Times use the
// datetime-local wire layout.
type Form struct {
	StaffID    int    `json:"staffId" validate:"required,min=1"`
	StartTime  string `json:"startTime" validate:"required,datetime=2006-01-02T15:04"`
	EndTime    string `json:"endTime" validate:"required,datetime=2006-01-02T15:04"`
	ShiftType  string `json:"shiftType" validate:"required,oneof=MORNING AFTERNOON NIGHT ON_CALL EMERGENCY"`
	Department string `json:"department" validate:"required"`
	Notes      string `json:"notes"`
	Active     bool   `json:"active"`
}

// NewForm returns the blank create form. New schedules default to
// active.
func NewForm() Form {
	return Form{Active: true}
}

// EditForm pre-fills the form from an existing record.
func EditForm(s Schedule) Form {
	return Form{
		StaffID:    s.StaffID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		ShiftType:  string(s.ShiftType),
		Department: s.Department,
		Notes:      s.Notes,
		Active:     s.Active,
	}
}

// Validate runs the field rules plus the cross-field rule that the
// shift must end after it starts.
func (f Form) Validate() forms.Errors {
	errs := forms.Check(f)

	start, startErr := time.Parse(TimeLayout, f.StartTime)
	end, endErr := time.Parse(TimeLayout, f.EndTime)
	if startErr == nil && endErr == nil && !end.After(start) {
		if errs == nil {
			errs = forms.Errors{}
		}
		if _, seen := errs["endTime"]; !seen {
			errs["endTime"] = "must be after the start time"
		}
	}
	return errs
}

// Request converts the validated form into the backend payload.
func (f Form) Request() Request {
	return Request{
		StaffID:    f.StaffID,
		StartTime:  f.StartTime,
		EndTime:    f.EndTime,
		ShiftType:  ShiftType(f.ShiftType),
		Department: f.Department,
		Notes:      f.Notes,
		Active:     f.Active,
	}
}
