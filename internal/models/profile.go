package models

// Profile is the single account profile shown on the profile page.
// Saved as a whole record, never field by field.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// DefaultProfile returns the record served before anything was ever saved.
func DefaultProfile() Profile {
	return Profile{
		FirstName: "Ahmed",
		LastName:  "Benali",
		Email:     "ahmed.benali@fleetmanager.ma",
		Phone:     "+212 6 12 34 56 78",
		Company:   "FleetManager Pro",
		Role:      "Administrateur",
		City:      "Casablanca",
		Country:   "Maroc",
	}
}
