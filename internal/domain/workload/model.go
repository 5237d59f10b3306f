package workload

import "fmt"

// Workload mirrors the hospital backend's daily staff workload record.
// StaffName is resolved client-side from the staff collection.
type Workload struct {
	ID                int     `json:"id"`
	StaffID           int     `json:"staffId"`
	StaffName         string  `json:"staffName,omitempty"`
	Date              string  `json:"date"`
	PatientCount      int     `json:"patientCount"`
	AppointmentCount  int     `json:"appointmentCount"`
	ProcedureCount    int     `json:"procedureCount"`
	SurgeryCount      int     `json:"surgeryCount"`
	ConsultationCount int     `json:"consultationCount"`
	HoursWorked       float64 `json:"hoursWorked"`
	Notes             string  `json:"notes,omitempty"`
}

// Request is the create/update payload sent to the backend.
type Request struct {
	StaffID           int     `json:"staffId"`
	Date              string  `json:"date"`
	PatientCount      int     `json:"patientCount"`
	AppointmentCount  int     `json:"appointmentCount"`
	ProcedureCount    int     `json:"procedureCount"`
	SurgeryCount      int     `json:"surgeryCount"`
	ConsultationCount int     `json:"consultationCount"`
	HoursWorked       float64 `json:"hoursWorked"`
	Notes             string  `json:"notes,omitempty"`
}

// Filters drives the workload table's endpoint selection. StaffID zero
// means no staff filter; empty dates mean no bound.
type Filters struct {
	StaffID   int
	Date      string
	StartDate string
	EndDate   string
}

// NameIndex maps staff ids to display names for the workload table.
type NameIndex map[int]string

// Resolve returns the staff member's name, or a placeholder when the
// id is not in the index.
func (n NameIndex) Resolve(id int) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Staff ID: %d", id)
}
