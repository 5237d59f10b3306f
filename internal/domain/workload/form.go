package workload

import "github.com/hospital/gateway/internal/platform/forms"

// Form carries the workload create/edit fields. Counters cannot go
// negative and a day holds at most 24 worked hours.
type Form struct {
	StaffID           int     `json:"staffId" validate:"required,min=1"`
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	PatientCount      int     `json:"patientCount" validate:"min=0"`
	AppointmentCount  int     `json:"appointmentCount" validate:"min=0"`
	ProcedureCount    int     `json:"procedureCount" validate:"min=0"`
	SurgeryCount      int     `json:"surgeryCount" validate:"min=0"`
	ConsultationCount int     `json:"consultationCount" validate:"min=0"`
	HoursWorked       float64 `json:"hoursWorked" validate:"gte=0,lte=24"`
	Notes             string  `json:"notes"`
}

func NewForm() Form {
	return Form{}
}

// EditForm pre-fills the form from an existing record.
func EditForm(w Workload) Form {
	return Form{
		StaffID:           w.StaffID,
		Date:              w.Date,
		PatientCount:      w.PatientCount,
		AppointmentCount:  w.AppointmentCount,
		ProcedureCount:    w.ProcedureCount,
		SurgeryCount:      w.SurgeryCount,
		ConsultationCount: w.ConsultationCount,
		HoursWorked:       w.HoursWorked,
		Notes:             w.Notes,
	}
}

// Validate runs the field rules. A nil return means the form can be
// submitted.
func (f Form) Validate() forms.Errors {
	return forms.Check(f)
}

// Request converts the validated form into the backend payload.
func (f Form) Request() Request {
	return Request{
		StaffID:           f.StaffID,
		Date:              f.Date,
		PatientCount:      f.PatientCount,
		AppointmentCount:  f.AppointmentCount,
		ProcedureCount:    f.ProcedureCount,
		SurgeryCount:      f.SurgeryCount,
		ConsultationCount: f.ConsultationCount,
		HoursWorked:       f.HoursWorked,
		Notes:             f.Notes,
	}
}
