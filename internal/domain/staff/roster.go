package staff

// departmentRoster backs the by-department endpoint, which serves
// fixture data instead of proxying — the backend has no department
// query for staff.
var departmentRoster = []Staff{
	{
		ID:              1,
		FullName:        "Dr. John Smith",
		Email:           "john.smith@hospital.com",
		PhoneNumber:     "+1 (555) 123-4567",
		Address:         "123 Medical Drive, Healthcare City, HC 12345",
		DateOfBirth:     "1980-05-15",
		Gender:          "Male",
		StaffType:       TypeDoctor,
		Department:      "Cardiology",
		Position:        "Senior Cardiologist",
		Qualifications:  []string{"MD", "PhD", "FACC"},
		Specializations: []string{"Interventional Cardiology", "Cardiac Electrophysiology"},
		JoiningDate:     "2015-03-10",
		Active:          true,
	},
	{
		ID:              2,
		FullName:        "Nurse Sarah Johnson",
		Email:           "sarah.johnson@hospital.com",
		PhoneNumber:     "+1 (555) 234-5678",
		Address:         "456 Nursing Blvd, Healthcare City, HC 12345",
		DateOfBirth:     "1988-09-22",
		Gender:          "Female",
		StaffType:       TypeNurse,
		Department:      "Emergency",
		Position:        "Head Nurse",
		Qualifications:  []string{"BSN", "RN"},
		Specializations: []string{"Emergency Care", "Trauma Care"},
		JoiningDate:     "2017-06-15",
		Active:          true,
	},
	{
		ID:              3,
		FullName:        "Admin Michael Brown",
		Email:           "michael.brown@hospital.com",
		PhoneNumber:     "+1 (555) 345-6789",
		Address:         "789 Admin Street, Healthcare City, HC 12345",
		DateOfBirth:     "1975-12-03",
		Gender:          "Male",
		StaffType:       TypeAdmin,
		Department:      "Administration",
		Position:        "Hospital Administrator",
		Qualifications:  []string{"MBA", "MHA"},
		Specializations: []string{"Healthcare Management", "Hospital Operations"},
		JoiningDate:     "2010-01-20",
		Active:          true,
	},
	{
		ID:              4,
		FullName:        "Dr. Emily Davis",
		Email:           "emily.davis@hospital.com",
		PhoneNumber:     "+1 (555) 456-7890",
		Address:         "101 Doctor Lane, Healthcare City, HC 12345",
		DateOfBirth:     "1983-07-18",
		Gender:          "Female",
		StaffType:       TypeDoctor,
		Department:      "Neurology",
		Position:        "Neurologist",
		Qualifications:  []string{"MD", "PhD"},
		Specializations: []string{"Clinical Neurology", "Neurodegenerative Diseases"},
		JoiningDate:     "2016-09-05",
		Active:          true,
	},
	{
		ID:              5,
		FullName:        "Nurse Robert Wilson",
		Email:           "robert.wilson@hospital.com",
		PhoneNumber:     "+1 (555) 567-8901",
		Address:         "202 Nursing Circle, Healthcare City, HC 12345",
		DateOfBirth:     "1990-02-25",
		Gender:          "Male",
		StaffType:       TypeNurse,
		Department:      "Pediatrics",
		Position:        "Pediatric Nurse",
		Qualifications:  []string{"BSN", "RN", "PNCB"},
		Specializations: []string{"Pediatric Care", "Neonatal Care"},
		JoiningDate:     "2018-04-12",
		Active:          false,
	},
}
