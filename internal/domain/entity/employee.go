package entity

import "time"

// Géneros válidos para Employee.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Employee representa un registro del directorio de empleados.
// El ID lo asigna siempre el store, nunca el llamador. CreatedAt se fija una
// sola vez; UpdatedAt nunca decrece a lo largo de la vida del registro.
type Employee struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Gender       string    `json:"gender"`       // Male, Female, Other
	DateOfBirth  string    `json:"dateOfBirth"`  // fecha ISO 8601 (YYYY-MM-DD)
	ProfileImage string    `json:"profileImage"` // URI, puede estar vacío (el consumidor pone un default)
	State        string    `json:"state"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidGender indica si g pertenece a la enumeración.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
