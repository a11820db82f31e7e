package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia de la bandera de sesión.
type SessionRepository interface {
	// Get devuelve la bandera o nil si no hay sesión (o el payload está corrupto).
	Get() (*entity.SessionUser, error)
	// Set persiste la bandera (a lo sumo una entrada).
	Set(user entity.SessionUser) error
	// Clear elimina la bandera; idempotente.
	Clear() error
}
