package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/localstore"
	apphttp "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// newAPI levanta la API completa sobre un filesystem en memoria, sembrada con
// el fixture, y devuelve la app más un token de sesión abierta.
func newAPI(t *testing.T) (*fiber.App, string) {
	t.Helper()

	store, err := localstore.New(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	log := logger.Nop()
	employeeRepo := localstore.NewEmployeeRepository(store, log)
	sessionRepo := localstore.NewSessionRepository(store, log)
	require.NoError(t, employeeRepo.EnsureSeeded())

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	authUC := appauth.NewAuthUseCase(sessionRepo, appauth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		EmployeeUC:  employeeUC,
		DashboardUC: usecase.NewDashboardUseCase(employeeRepo),
		ExportUC:    usecase.NewExportUseCase(employeeUC, &stubPDF{}),
		AuthUC:      authUC,
		JWTSecret:   testJWTSecret,
	})

	out, err := authUC.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	return app, "Bearer " + out.Token
}

type stubPDF struct{}

func (s *stubPDF) GenerateRosterPDF(_ context.Context, _ []entity.Employee) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func do(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeList(t *testing.T, resp *http.Response) dto.EmployeeListResponse {
	t.Helper()
	defer resp.Body.Close()
	var list dto.EmployeeListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo del dashboard contra la API completa
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ListadoConFiltros(t *testing.T) {
	app, token := newAPI(t)

	resp := do(t, app, http.MethodGet, "/api/employees?search=jo", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "John Doe", list.Items[0].FullName)
	assert.Equal(t, "Michael Johnson", list.Items[1].FullName)
}

func TestAPI_ListadoRechazaStatusDesconocido(t *testing.T) {
	app, token := newAPI(t)

	resp := do(t, app, http.MethodGet, "/api/employees?status=bogus", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CicloCrearActualizarEliminar(t *testing.T) {
	app, token := newAPI(t)

	// Crear
	resp := do(t, app, http.MethodPost, "/api/employees", token, dto.CreateEmployeeRequest{
		FullName:    "Test User",
		Gender:      "Other",
		DateOfBirth: "2000-01-01",
		State:       "Texas",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// Toggle de estado (PATCH)
	inactive := false
	resp = do(t, app, http.MethodPatch, "/api/employees/"+created.ID+"/status", token, dto.SetStatusRequest{IsActive: &inactive})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled dto.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toggled))
	resp.Body.Close()
	assert.False(t, toggled.IsActive)
	assert.Equal(t, created.CreatedAt, toggled.CreatedAt)

	// Eliminar y verificar NotFound
	resp = do(t, app, http.MethodDelete, "/api/employees/"+created.ID, token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/employees/"+created.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_UpdateInexistenteEs404(t *testing.T) {
	app, token := newAPI(t)

	nombre := "Nuevo Nombre"
	resp := do(t, app, http.MethodPut, "/api/employees/nonexistent-id", token, dto.UpdateEmployeeRequest{FullName: &nombre})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_LoginInvalido(t *testing.T) {
	app, _ := newAPI(t)

	resp := do(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "", Password: "x"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Después del logout, el token que ya estaba emitido deja de servir.
func TestAPI_LogoutCierraLaSesion(t *testing.T) {
	app, token := newAPI(t)

	resp := do(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/employees", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_ResumenDelDashboard(t *testing.T) {
	app, token := newAPI(t)

	resp := do(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var summary dto.DashboardSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 5, summary.Active)
	assert.Equal(t, 2, summary.Inactive)
}

func TestAPI_ExportPDF(t *testing.T) {
	app, token := newAPI(t)

	resp := do(t, app, http.MethodGet, "/api/employees/export/pdf?status=active", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(raw))
}
