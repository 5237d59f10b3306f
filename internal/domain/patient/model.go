package patient

// Patient mirrors the hospital backend's patient record.
type Patient struct {
	ID                    int      `json:"id"`
	FullName              string   `json:"fullName"`
	NationalID            string   `json:"nationalId"`
	Email                 string   `json:"email"`
	PhoneNumber           string   `json:"phoneNumber"`
	Address               string   `json:"address"`
	DateOfBirth           string   `json:"dateOfBirth"`
	Gender                string   `json:"gender"`
	BloodType             string   `json:"bloodType"`
	MedicalHistory        []string `json:"medicalHistory"`
	Allergies             []string `json:"allergies"`
	EmergencyContactName  string   `json:"emergencyContactName"`
	EmergencyContactPhone string   `json:"emergencyContactPhone"`
	RegistrationDate      string   `json:"registrationDate"`
	Active                bool     `json:"active"`
	Subject               string   `json:"subject,omitempty"`
}

// Request is the registration/update payload sent to the backend.
type Request struct {
	FullName              string   `json:"fullName"`
	NationalID            string   `json:"nationalId"`
	Email                 string   `json:"email"`
	PhoneNumber           string   `json:"phoneNumber"`
	Address               string   `json:"address"`
	DateOfBirth           string   `json:"dateOfBirth"`
	Gender                string   `json:"gender"`
	BloodType             string   `json:"bloodType"`
	MedicalHistory        []string `json:"medicalHistory"`
	Allergies             []string `json:"allergies"`
	EmergencyContactName  string   `json:"emergencyContactName"`
	EmergencyContactPhone string   `json:"emergencyContactPhone"`
	RegistrationDate      string   `json:"registrationDate"`
	Active                bool     `json:"active"`
	Password              string   `json:"password,omitempty"`
	Subject               string   `json:"subject,omitempty"`
}

// FilterAll is the select value meaning "no narrowing" for blood type
// and gender.
const FilterAll = "all"

// Filters drives the patient table. Only ActiveOnly changes which
// endpoint is hit; blood type, gender, and search all narrow
// client-side.
type Filters struct {
	ActiveOnly bool
	BloodType  string
	Gender     string
	SearchTerm string
}

// BloodTypes is the closed set the registration form offers.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
