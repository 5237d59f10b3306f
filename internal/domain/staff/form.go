package staff

import "github.com/hospital/gateway/internal/platform/forms"

// Form carries the staff create/edit fields. Password is required on
// create only; edits leave it empty and the backend keeps the old one.
type Form struct {
	FullName        string   `json:"fullName" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	PhoneNumber     string   `json:"phoneNumber" validate:"required,min=10"`
	Address         string   `json:"address" validate:"required,min=5"`
	DateOfBirth     string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender          string   `json:"gender" validate:"required,oneof=Male Female Other"`
	StaffType       string   `json:"staffType" validate:"required,oneof=DOCTOR NURSE ADMIN"`
	Department      string   `json:"department" validate:"required"`
	Position        string   `json:"position" validate:"required"`
	Qualifications  []string `json:"qualifications" validate:"min=1"`
	Specializations []string `json:"specializations"`
	JoiningDate     string   `json:"joiningDate" validate:"required,datetime=2006-01-02"`
	Active          bool     `json:"active"`
	Password        string   `json:"password" validate:"omitempty,min=6"`
}

// NewForm returns the blank create form. New staff default to active.
func NewForm() Form {
	return Form{Active: true, Qualifications: []string{}, Specializations: []string{}}
}

// EditForm pre-fills the form from an existing record. The password
// stays blank.
func EditForm(s Staff) Form {
	return Form{
		FullName:        s.FullName,
		Email:           s.Email,
		PhoneNumber:     s.PhoneNumber,
		Address:         s.Address,
		DateOfBirth:     s.DateOfBirth,
		Gender:          s.Gender,
		StaffType:       string(s.StaffType),
		Department:      s.Department,
		Position:        s.Position,
		Qualifications:  s.Qualifications,
		Specializations: s.Specializations,
		JoiningDate:     s.JoiningDate,
		Active:          s.Active,
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
		FullName:        f.FullName,
		Email:           f.Email,
		PhoneNumber:     f.PhoneNumber,
		Address:         f.Address,
		DateOfBirth:     f.DateOfBirth,
		Gender:          f.Gender,
		StaffType:       StaffType(f.StaffType),
		Department:      f.Department,
		Position:        f.Position,
		Qualifications:  f.Qualifications,
		Specializations: f.Specializations,
		JoiningDate:     f.JoiningDate,
		Active:          f.Active,
		Password:        f.Password,
	}
}

// AddQualification appends a qualification entry, trimming whitespace
// and dropping empties.
func (f *Form) AddQualification(q string) {
	f.Qualifications = forms.AppendListItem(f.Qualifications, q)
}

// RemoveQualification removes the qualification at index.
func (f *Form) RemoveQualification(i int) {
	f.Qualifications = forms.RemoveListItem(f.Qualifications, i)
}

// AddSpecialization appends a specialization entry.
func (f *Form) AddSpecialization(s string) {
	f.Specializations = forms.AppendListItem(f.Specializations, s)
}

// RemoveSpecialization removes the specialization at index.
func (f *Form) RemoveSpecialization(i int) {
	f.Specializations = forms.RemoveListItem(f.Specializations, i)
}
