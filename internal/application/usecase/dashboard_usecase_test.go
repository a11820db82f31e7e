package usecase_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func newSeededRepo(t *testing.T) *localstore.EmployeeRepository {
	t.Helper()
	store, err := localstore.New(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	repo := localstore.NewEmployeeRepository(store, logger.Nop())
	require.NoError(t, repo.EnsureSeeded())
	return repo
}

// El fixture trae 7 empleados: 5 activos, 2 inactivos; 3 Male, 3 Female, 1 Other.
func TestDashboard_ResumenDelFixture(t *testing.T) {
	uc := usecase.NewDashboardUseCase(newSeededRepo(t))

	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 7, out.Total)
	assert.Equal(t, 5, out.Active)
	assert.Equal(t, 2, out.Inactive)
	assert.Equal(t, map[string]int{
		entity.GenderMale:   3,
		entity.GenderFemale: 3,
		entity.GenderOther:  1,
	}, out.ByGender)
}

// fakePDF captura el snapshot que recibe el generador.
type fakePDF struct {
	got []entity.Employee
}

func (f *fakePDF) GenerateRosterPDF(_ context.Context, employees []entity.Employee) ([]byte, error) {
	f.got = employees
	return []byte("%PDF-fake"), nil
}

// El export respeta los mismos filtros que el listado.
func TestExport_RespetaFiltros(t *testing.T) {
	repo := newSeededRepo(t)
	employees := usecase.NewEmployeeUseCase(repo)
	pdf := &fakePDF{}
	uc := usecase.NewExportUseCase(employees, pdf)

	raw, err := uc.RosterPDF(context.Background(), directory.Filters{Status: directory.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), raw)

	require.Len(t, pdf.got, 2)
	assert.Equal(t, "Michael Johnson", pdf.got[0].FullName)
	assert.Equal(t, "Emily Davis", pdf.got[1].FullName)
}
