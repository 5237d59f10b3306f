package staff

// StaffType is the closed set of staff categories.
type StaffType string

const (
	TypeDoctor StaffType = "DOCTOR"
	TypeNurse  StaffType = "NURSE"
	TypeAdmin  StaffType = "ADMIN"
)

// Staff mirrors the hospital backend's staff record. The gateway never
// owns this data; a decoded Staff is a cache valid for one render.
type Staff struct {
	ID              int       `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Address         string    `json:"address"`
	DateOfBirth     string    `json:"dateOfBirth"`
	Gender          string    `json:"gender"`
	StaffType       StaffType `json:"staffType"`
	Department      string    `json:"department"`
	Position        string    `json:"position"`
	Qualifications  []string  `json:"qualifications"`
	Specializations []string  `json:"specializations"`
	JoiningDate     string    `json:"joiningDate"`
	Active          bool      `json:"active"`
	Subject         string    `json:"subject,omitempty"`
}

// Request is the create/update payload sent to the backend. Password
// is set only on create; edit forms never pre-fill or require it.
type Request struct {
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Address         string    `json:"address"`
	DateOfBirth     string    `json:"dateOfBirth"`
	Gender          string    `json:"gender"`
	StaffType       StaffType `json:"staffType"`
	Department      string    `json:"department"`
	Position        string    `json:"position"`
	Qualifications  []string  `json:"qualifications"`
	Specializations []string  `json:"specializations"`
	JoiningDate     string    `json:"joiningDate"`
	Active          bool      `json:"active"`
	Password        string    `json:"password,omitempty"`
	Subject         string    `json:"subject,omitempty"`
}

// Filters drives the staff table's endpoint selection and client-side
// narrowing.
type Filters struct {
	StaffType      string
	Department     string
	Specialization string
	ActiveOnly     bool
	SearchTerm     string
}

// Departments is the hospital's department roster. Served statically;
// the backend has no endpoint for it.
var Departments = []string{
	"Cardiology",
	"Neurology",
	"Pediatrics",
	"Oncology",
	"Emergency",
	"Radiology",
	"Surgery",
	"Orthopedics",
	"Psychiatry",
	"Dermatology",
}

// Specializations is the static specialization roster backing the
// staff form's picker.
var Specializations = []string{
	"Cardiac Surgery",
	"Neurosurgery",
	"Pediatric Cardiology",
	"Medical Oncology",
	"Emergency Medicine",
	"Diagnostic Radiology",
	"General Surgery",
	"Orthopedic Surgery",
	"Child Psychiatry",
	"Dermatopathology",
}
