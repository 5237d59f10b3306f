package staff

import "testing"

func validForm() Form {
	return Form{
		FullName:       "Dr. John Smith",
		Email:          "john.smith@hospital.com",
		PhoneNumber:    "+1 (555) 123-4567",
		Address:        "123 Medical Drive, Healthcare City",
		DateOfBirth:    "1980-05-15",
		Gender:         "Male",
		StaffType:      "DOCTOR",
		Department:     "Cardiology",
		Position:       "Senior Cardiologist",
		Qualifications: []string{"MD"},
		JoiningDate:    "2015-03-10",
		Active:         true,
		Password:       "s3cret!",
	}
}

func TestValidFormPasses(t *testing.T) {
	if errs := validForm().Validate(); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"short name", func(f *Form) { f.FullName = "X" }, "fullName"},
		{"bad email", func(f *Form) { f.Email = "not-an-email" }, "email"},
		{"short phone", func(f *Form) { f.PhoneNumber = "12345" }, "phoneNumber"},
		{"short address", func(f *Form) { f.Address = "abc" }, "address"},
		{"bad date of birth", func(f *Form) { f.DateOfBirth = "15/05/1980" }, "dateOfBirth"},
		{"unknown gender", func(f *Form) { f.Gender = "Unknown" }, "gender"},
		{"unknown staff type", func(f *Form) { f.StaffType = "JANITOR" }, "staffType"},
		{"missing department", func(f *Form) { f.Department = "" }, "department"},
		{"missing position", func(f *Form) { f.Position = "" }, "position"},
		{"no qualifications", func(f *Form) { f.Qualifications = nil }, "qualifications"},
		{"bad joining date", func(f *Form) { f.JoiningDate = "soon" }, "joiningDate"},
		{"short password", func(f *Form) { f.Password = "abc" }, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			errs := f.Validate()
			if errs.Field(tc.field) == "" {
				t.Errorf("want error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestPasswordOptionalWhenEmpty(t *testing.T) {
	f := validForm()
	f.Password = ""
	if errs := f.Validate(); errs != nil {
		t.Fatalf("edit form without password must pass, got %v", errs)
	}
}

func TestEditFormPrefillsWithoutPassword(t *testing.T) {
	s := departmentRoster[0]
	f := EditForm(s)
	if f.FullName != s.FullName || f.StaffType != string(s.StaffType) {
		t.Errorf("prefill = %+v", f)
	}
	if f.Password != "" {
		t.Error("edit form must not carry a password")
	}
}

func TestQualificationListEditing(t *testing.T) {
	f := NewForm()
	f.AddQualification("  MD ")
	f.AddQualification("")
	f.AddQualification("PhD")
	if len(f.Qualifications) != 2 || f.Qualifications[0] != "MD" {
		t.Fatalf("qualifications = %v", f.Qualifications)
	}
	f.RemoveQualification(0)
	if len(f.Qualifications) != 1 || f.Qualifications[0] != "PhD" {
		t.Errorf("after remove = %v", f.Qualifications)
	}
	f.RemoveQualification(5)
	if len(f.Qualifications) != 1 {
		t.Error("out-of-range remove must be a no-op")
	}
}

func TestRequestCarriesAllFields(t *testing.T) {
	f := validForm()
	req := f.Request()
	if req.StaffType != TypeDoctor || req.FullName != f.FullName || req.Password != f.Password {
		t.Errorf("request = %+v", req)
	}
}
