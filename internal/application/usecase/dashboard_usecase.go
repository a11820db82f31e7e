package usecase

import (
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// DashboardUseCase calcula el resumen del directorio para las tarjetas del
// dashboard (total, activos, inactivos, desglose por género).
type DashboardUseCase struct {
	repo repository.EmployeeRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.EmployeeRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary calcula el resumen sobre el snapshot actual.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryResponse, error) {
	employees, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardSummaryResponse{
		Total:    len(employees),
		ByGender: map[string]int{},
	}
	for _, e := range employees {
		if e.IsActive {
			out.Active++
		} else {
			out.Inactive++
		}
		out.ByGender[e.Gender]++
	}
	return out, nil
}
