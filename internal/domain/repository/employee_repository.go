package repository

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia del directorio (DIP).
// La colección se persiste completa en cada escritura: el medio es un documento
// JSON único, así que el contrato es snapshot-in / snapshot-out.
type EmployeeRepository interface {
	// LoadAll devuelve la colección completa en orden de inserción.
	// Un payload corrupto se trata como ausente: colección vacía, sin error de parseo.
	LoadAll() ([]entity.Employee, error)
	// SaveAll reemplaza la colección persistida de forma atómica.
	SaveAll(employees []entity.Employee) error
	// EnsureSeeded escribe el fixture inicial si la clave aún no existe.
	// Se invoca una vez en el arranque, nunca dentro del camino de lectura.
	EnsureSeeded() error
}
