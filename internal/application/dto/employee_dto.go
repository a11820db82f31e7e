package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado. El ID y los timestamps
// los asigna el store, nunca el llamador.
type CreateEmployeeRequest struct {
	FullName     string `json:"fullName" validate:"required,min=2,max=50"`
	Gender       string `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth  string `json:"dateOfBirth" validate:"required"` // YYYY-MM-DD
	ProfileImage string `json:"profileImage" validate:"omitempty,uri"`
	State        string `json:"state" validate:"required"`
	IsActive     *bool  `json:"isActive"` // nil = true (default de creación)
}

// UpdateEmployeeRequest es el patch de actualización parcial: cada campo es
// opcional (puntero); los campos nil conservan el valor existente. El merge es
// campo a campo, nunca un reemplazo del registro.
type UpdateEmployeeRequest struct {
	FullName     *string `json:"fullName"`
	Gender       *string `json:"gender"`
	DateOfBirth  *string `json:"dateOfBirth"`
	ProfileImage *string `json:"profileImage"`
	State        *string `json:"state"`
	IsActive     *bool   `json:"isActive"`
}

// SetStatusRequest entrada del toggle activar/desactivar.
type SetStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Gender       string    `json:"gender"`
	DateOfBirth  string    `json:"dateOfBirth"`
	ProfileImage string    `json:"profileImage"`
	State        string    `json:"state"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EmployeeListResponse listado (ya filtrado si aplica) en orden de inserción.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int                `json:"total"`
}
