package schedule

import "fmt"

// ShiftType is the closed set of shift categories.
type ShiftType string

const (
	ShiftMorning   ShiftType = "MORNING"
	ShiftAfternoon ShiftType = "AFTERNOON"
	ShiftNight     ShiftType = "NIGHT"
	ShiftOnCall    ShiftType = "ON_CALL"
	ShiftEmergency ShiftType = "EMERGENCY"
)

// TimeLayout is the wire format for schedule start and end times.
const TimeLayout = "2006-01-02T15:04"

// Schedule mirrors the hospital backend's staff schedule record.
// StaffName is resolved client-side from the staff collection; the
// backend only sends the id.
type Schedule struct {
	ID         int       `json:"id"`
	StaffID    int       `json:"staffId"`
	StaffName  string    `json:"staffName,omitempty"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	ShiftType  ShiftType `json:"shiftType"`
	Department string    `json:"department"`
	Notes      string    `json:"notes,omitempty"`
	Active     bool      `json:"active"`
}

// Request is the create/update payload sent to the backend.
type Request struct {
	StaffID    int       `json:"staffId"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	ShiftType  ShiftType `json:"shiftType"`
	Department string    `json:"department"`
	Notes      string    `json:"notes,omitempty"`
	Active     bool      `json:"active"`
}

// FilterAll is the shift-type select value meaning "no narrowing".
const FilterAll = "all"

// Filters drives the schedule table's endpoint selection. StaffID zero
// means no staff filter; an empty time means no range bound.
type Filters struct {
	StaffID    int
	StartTime  string
	EndTime    string
	ShiftType  string
	Department string
	ActiveOnly bool
}

// NameIndex maps staff ids to display names for the schedule table.
type NameIndex map[int]string

// Resolve returns the staff member's name, or a placeholder when the
// id is not in the index.
func (n NameIndex) Resolve(id int) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Staff ID: %d", id)
}
