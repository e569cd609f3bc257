package models

// Staff is one member of the salon roster.
type Staff struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FindStaff looks a roster member up by id.
func FindStaff(staff []Staff, id int) (Staff, bool) {
	for _, s := range staff {
		if s.ID == id {
			return s, true
		}
	}
	return Staff{}, false
}

// DefaultStaff returns the seed roster.
func DefaultStaff() []Staff {
	return []Staff{
		{ID: 1, Name: "Vicky"},
		{ID: 2, Name: "Rakhi"},
		{ID: 3, Name: "Akash"},
		{ID: 4, Name: "Komal"},
		{ID: 5, Name: "Babul"},
		{ID: 6, Name: "Nishu"},
		{ID: 7, Name: "Nabin"},
		{ID: 8, Name: "Rushan"},
	}
}
