package patient

import (
	"time"

	"github.com/hospital/gateway/internal/platform/forms"
)

// Form carries the patient registration/edit fields. Password is set
// on registration only.
type Form struct {
	FullName              string   `json:"fullName" validate:"required,min=2"`
	NationalID            string   `json:"nationalId" validate:"required,min=5"`
	Email                 string   `json:"email" validate:"required,email"`
	PhoneNumber           string   `json:"phoneNumber" validate:"required,min=10"`
	Address               string   `json:"address" validate:"required,min=5"`
	DateOfBirth           string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender                string   `json:"gender" validate:"required,oneof=Male Female Other"`
	BloodType             string   `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	MedicalHistory        []string `json:"medicalHistory"`
	Allergies             []string `json:"allergies"`
	EmergencyContactName  string   `json:"emergencyContactName"`
	EmergencyContactPhone string   `json:"emergencyContactPhone" validate:"omitempty,min=10"`
	RegistrationDate      string   `json:"registrationDate" validate:"required,datetime=2006-01-02"`
	Active                bool     `json:"active"`
	Password              string   `json:"password" validate:"omitempty,min=6"`
}

// NewForm returns the blank registration form. New patients default to
// active, registered today.
func NewForm() Form {
	return Form{
		MedicalHistory:   []string{},
		Allergies:        []string{},
		RegistrationDate: forms.FormatDate(time.Now()),
		Active:           true,
	}
}

// EditForm pre-fills the form from an existing record, password blank.
func EditForm(p Patient) Form {
	return Form{
		FullName:              p.FullName,
		NationalID:            p.NationalID,
		Email:                 p.Email,
		PhoneNumber:           p.PhoneNumber,
		Address:               p.Address,
		DateOfBirth:           p.DateOfBirth,
		Gender:                p.Gender,
		BloodType:             p.BloodType,
		MedicalHistory:        p.MedicalHistory,
		Allergies:             p.Allergies,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		RegistrationDate:      p.RegistrationDate,
		Active:                p.Active,
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
		FullName:              f.FullName,
		NationalID:            f.NationalID,
		Email:                 f.Email,
		PhoneNumber:           f.PhoneNumber,
		Address:               f.Address,
		DateOfBirth:           f.DateOfBirth,
		Gender:                f.Gender,
		BloodType:             f.BloodType,
		MedicalHistory:        f.MedicalHistory,
		Allergies:             f.Allergies,
		EmergencyContactName:  f.EmergencyContactName,
		EmergencyContactPhone: f.EmergencyContactPhone,
		RegistrationDate:      f.RegistrationDate,
		Active:                f.Active,
		Password:              f.Password,
	}
}

// AddAllergy appends an allergy entry, trimming whitespace and
// dropping empties.
func (f *Form) AddAllergy(a string) {
	f.Allergies = forms.AppendListItem(f.Allergies, a)
}

// RemoveAllergy removes the allergy at index.
func (f *Form) RemoveAllergy(i int) {
	f.Allergies = forms.RemoveListItem(f.Allergies, i)
}

// AddMedicalHistory appends a medical-history entry, trimming
// whitespace and dropping empties.
func (f *Form) AddMedicalHistory(entry string) {
	f.MedicalHistory = forms.AppendListItem(f.MedicalHistory, entry)
}

// RemoveMedicalHistory removes the history entry at index.
func (f *Form) RemoveMedicalHistory(i int) {
	f.MedicalHistory = forms.RemoveListItem(f.MedicalHistory, i)
}
