package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/domain/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// fixture reducido en orden de inserción conocido.
func fixture() []entity.Employee {
	return []entity.Employee{
		{ID: "1", FullName: "John Doe", Gender: entity.GenderMale, IsActive: true},
		{ID: "2", FullName: "Jane Smith", Gender: entity.GenderFemale, IsActive: true},
		{ID: "3", FullName: "Michael Johnson", Gender: entity.GenderMale, IsActive: false},
		{ID: "4", FullName: "Alex Martínez", Gender: entity.GenderOther, IsActive: true},
	}
}

func ids(employees []entity.Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}
	return out
}

// Ley de identidad: sin predicados, la salida es la entrada en el mismo orden.
func TestApply_FiltrosVaciosDevuelveTodoEnOrden(t *testing.T) {
	in := fixture()
	out := directory.Apply(in, directory.Filters{})

	assert.Equal(t, ids(in), ids(out))
	// Debe ser copia, no la misma slice viva
	out[0].FullName = "mutado"
	assert.Equal(t, "John Doe", in[0].FullName)
}

// Búsqueda por substring insensible a mayúsculas: "jo" encuentra a John Doe
// y Michael Johnson, en el orden original.
func TestApply_BusquedaSubstringInsensible(t *testing.T) {
	out := directory.Apply(fixture(), directory.Filters{Search: "jo"})
	assert.Equal(t, []string{"1", "3"}, ids(out))
}

// La búsqueda también ignora acentos: "martinez" encuentra a "Martínez".
func TestApply_BusquedaIgnoraAcentos(t *testing.T) {
	out := directory.Apply(fixture(), directory.Filters{Search: "martinez"})
	require.Len(t, out, 1)
	assert.Equal(t, "Alex Martínez", out[0].FullName)
}

func TestApply_FiltroGenero(t *testing.T) {
	out := directory.Apply(fixture(), directory.Filters{Gender: entity.GenderMale})
	assert.Equal(t, []string{"1", "3"}, ids(out))
}

func TestApply_FiltroStatus(t *testing.T) {
	activos := directory.Apply(fixture(), directory.Filters{Status: directory.StatusActive})
	assert.Equal(t, []string{"1", "2", "4"}, ids(activos))

	inactivos := directory.Apply(fixture(), directory.Filters{Status: directory.StatusInactive})
	assert.Equal(t, []string{"3"}, ids(inactivos))
}

// Composición: aplicar los predicados en secuencia equivale a aplicarlos juntos.
func TestApply_PredicadosComponenPorAND(t *testing.T) {
	in := fixture()

	secuencial := directory.Apply(
		directory.Apply(in, directory.Filters{Gender: entity.GenderMale}),
		directory.Filters{Status: directory.StatusActive},
	)
	combinado := directory.Apply(in, directory.Filters{
		Gender: entity.GenderMale,
		Status: directory.StatusActive,
	})

	assert.Equal(t, ids(secuencial), ids(combinado))
	assert.Equal(t, []string{"1"}, ids(combinado))
}

// El filtro nunca muta el snapshot de entrada.
func TestApply_NoMutaLaEntrada(t *testing.T) {
	in := fixture()
	_ = directory.Apply(in, directory.Filters{Search: "jane", Status: directory.StatusActive})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(in))
}
