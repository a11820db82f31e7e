package usecase

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// RosterPDFGenerator puerto hacia la infraestructura de PDF (vista imprimible
// del directorio, el botón Print del dashboard).
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, employees []entity.Employee) ([]byte, error)
}

// ExportUseCase produce la planilla imprimible del directorio respetando los
// mismos filtros del listado.
type ExportUseCase struct {
	employees *EmployeeUseCase
	pdf       RosterPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(employees *EmployeeUseCase, pdf RosterPDFGenerator) *ExportUseCase {
	return &ExportUseCase{employees: employees, pdf: pdf}
}

// RosterPDF genera el PDF del listado filtrado.
func (uc *ExportUseCase) RosterPDF(ctx context.Context, f directory.Filters) ([]byte, error) {
	snapshot, err := uc.employees.Snapshot(f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateRosterPDF(ctx, snapshot)
}
