package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// EmployeeUseCase es el record store del directorio: CRUD sobre la colección
// canónica, asignación de identidad y estampado de timestamps. El servidor
// HTTP atiende en paralelo, así que cada mutación toma un mutex alrededor de
// su ciclo leer-modificar-escribir para preservar la unicidad de IDs y la
// monotonía de UpdatedAt.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	mu   sync.Mutex
	now  func() time.Time // inyectable en tests
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: time.Now}
}

// Snapshot devuelve la colección filtrada como entidades, en orden de
// inserción. Filtros vacíos = colección completa. El slice es una copia: el
// llamador debe volver a pedirlo para observar mutaciones posteriores.
func (uc *EmployeeUseCase) Snapshot(f directory.Filters) ([]entity.Employee, error) {
	employees, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return directory.Apply(employees, f), nil
}

// List lista los empleados que satisfacen los filtros.
func (uc *EmployeeUseCase) List(f directory.Filters) (*dto.EmployeeListResponse, error) {
	employees, err := uc.Snapshot(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, *toEmployeeResponse(&e))
	}
	return &dto.EmployeeListResponse{Items: items, Total: len(items)}, nil
}

// Create crea un empleado: genera un ID único (uuid, nunca derivado del
// reloj), estampa CreatedAt = UpdatedAt = now y persiste la colección.
// Devuelve domain.ErrInvalidInput si los campos violan las reglas de alta.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := uc.now()
	employee := entity.Employee{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Gender:       in.Gender,
		DateOfBirth:  in.DateOfBirth,
		ProfileImage: in.ProfileImage,
		State:        in.State,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := directory.ValidateEmployee(employee); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	employees, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	employees = append(employees, employee)
	if err := uc.repo.SaveAll(employees); err != nil {
		return nil, err
	}
	return toEmployeeResponse(&employee), nil
}

// Update aplica un patch parcial sobre el registro: los campos presentes
// pisan al existente, los ausentes se conservan. Estampa UpdatedAt = now
// (nunca por debajo del valor anterior) y deja CreatedAt intacto.
// Devuelve domain.ErrNotFound si el ID no existe.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	employees, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	idx := indexOf(employees, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	merged := mergePatch(employees[idx], in)
	if err := directory.ValidateEmployee(merged); err != nil {
		return nil, err
	}
	merged.UpdatedAt = uc.now()
	if merged.UpdatedAt.Before(employees[idx].UpdatedAt) {
		// Salto de reloj hacia atrás: conservar la monotonía
		merged.UpdatedAt = employees[idx].UpdatedAt
	}

	employees[idx] = merged
	if err := uc.repo.SaveAll(employees); err != nil {
		return nil, err
	}
	return toEmployeeResponse(&merged), nil
}

// Delete elimina el registro. Devuelve domain.ErrNotFound si el ID no existe;
// en ese caso la colección queda intacta. Sin efectos en cascada.
func (uc *EmployeeUseCase) Delete(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	employees, err := uc.repo.LoadAll()
	if err != nil {
		return err
	}
	idx := indexOf(employees, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	employees = append(employees[:idx], employees[idx+1:]...)
	return uc.repo.SaveAll(employees)
}

// GetByID obtiene un empleado por ID. Solo lectura, nunca muta.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employees, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	idx := indexOf(employees, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(&employees[idx]), nil
}

func indexOf(employees []entity.Employee, id string) int {
	for i := range employees {
		if employees[i].ID == id {
			return i
		}
	}
	return -1
}

// mergePatch pisa campo a campo los valores presentes del patch sobre el
// registro existente. CreatedAt y ID nunca se tocan.
func mergePatch(e entity.Employee, in dto.UpdateEmployeeRequest) entity.Employee {
	if in.FullName != nil {
		e.FullName = *in.FullName
	}
	if in.Gender != nil {
		e.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		e.DateOfBirth = *in.DateOfBirth
	}
	if in.ProfileImage != nil {
		e.ProfileImage = *in.ProfileImage
	}
	if in.State != nil {
		e.State = *in.State
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	return e
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Gender:       e.Gender,
		DateOfBirth:  e.DateOfBirth,
		ProfileImage: e.ProfileImage,
		State:        e.State,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
