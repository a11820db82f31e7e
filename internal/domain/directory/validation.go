package directory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// USStates lista fija contra la que se valida el campo State.
var USStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
	"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// ValidState indica si s pertenece a la lista de estados.
func ValidState(s string) bool {
	for _, st := range USStates {
		if st == s {
			return true
		}
	}
	return false
}

// Límites de las reglas de formulario del directorio.
const (
	minNameLen = 2
	maxNameLen = 50
	minAge     = 18
	maxAge     = 100
)

// ValidateEmployee aplica las reglas de alta/edición sobre los campos de
// negocio de un registro. Devuelve domain.ErrInvalidInput envuelto con el
// detalle del campo que falla. ProfileImage es opcional y no se valida.
func ValidateEmployee(e entity.Employee) error {
	name := strings.TrimSpace(e.FullName)
	if name == "" {
		return fmt.Errorf("%w: fullName es requerido", domain.ErrInvalidInput)
	}
	if len([]rune(name)) < minNameLen || len([]rune(name)) > maxNameLen {
		return fmt.Errorf("%w: fullName debe tener entre %d y %d caracteres", domain.ErrInvalidInput, minNameLen, maxNameLen)
	}
	if !entity.ValidGender(e.Gender) {
		return fmt.Errorf("%w: gender debe ser Male, Female u Other", domain.ErrInvalidInput)
	}
	if err := validateDateOfBirth(e.DateOfBirth); err != nil {
		return err
	}
	if !ValidState(e.State) {
		return fmt.Errorf("%w: state no pertenece a la lista", domain.ErrInvalidInput)
	}
	return nil
}

func validateDateOfBirth(dob string) error {
	if dob == "" {
		return fmt.Errorf("%w: dateOfBirth es requerido", domain.ErrInvalidInput)
	}
	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return fmt.Errorf("%w: dateOfBirth debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	age := ageInYears(t, time.Now())
	if age < minAge {
		return fmt.Errorf("%w: el empleado debe tener al menos %d años", domain.ErrInvalidInput, minAge)
	}
	if age > maxAge {
		return fmt.Errorf("%w: dateOfBirth no es una fecha válida", domain.ErrInvalidInput)
	}
	return nil
}

func ageInYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	// Aún no cumple años este año
	if now.YearDay() < birth.YearDay() {
		years--
	}
	return years
}
