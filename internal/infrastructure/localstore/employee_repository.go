package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// EmployeeRepository implementa repository.EmployeeRepository sobre el Store.
// La colección completa vive bajo la clave employees_data como array JSON en
// orden de inserción.
type EmployeeRepository struct {
	store *Store
	log   *logger.Logger
}

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository(store *Store, log *logger.Logger) *EmployeeRepository {
	return &EmployeeRepository{store: store, log: log}
}

// LoadAll devuelve la colección persistida. Un payload corrupto se trata como
// ausente (colección vacía): fail-closed, el error de parseo no sube al
// llamador porque no hay camino de recuperación en esta capa.
func (r *EmployeeRepository) LoadAll() ([]entity.Employee, error) {
	raw, ok, err := r.store.Get(KeyEmployees)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.Employee{}, nil
	}
	var employees []entity.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		r.log.Warn().Err(err).Str("key", KeyEmployees).Msg("payload corrupto, se trata como vacío")
		return []entity.Employee{}, nil
	}
	return employees, nil
}

// SaveAll reemplaza la colección completa de forma atómica.
func (r *EmployeeRepository) SaveAll(employees []entity.Employee) error {
	raw, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar empleados: %w", err)
	}
	return r.store.Set(KeyEmployees, raw)
}

// EnsureSeeded siembra el fixture si la clave está ausente o ilegible.
// Paso explícito de arranque: después de esto, LoadAll es una lectura pura.
// Corre a lo sumo una vez por despliegue; si ya hay datos válidos no toca nada.
func (r *EmployeeRepository) EnsureSeeded() error {
	raw, ok, err := r.store.Get(KeyEmployees)
	if err != nil {
		return err
	}
	if ok {
		var existing []entity.Employee
		if json.Unmarshal(raw, &existing) == nil {
			return nil
		}
		r.log.Warn().Str("key", KeyEmployees).Msg("payload corrupto, se re-siembra el fixture")
	}
	seed := SeedEmployees()
	if err := r.SaveAll(seed); err != nil {
		return err
	}
	r.log.Info().Int("empleados", len(seed)).Msg("directorio sembrado con datos de ejemplo")
	return nil
}
