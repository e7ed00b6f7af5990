package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/records"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/scanner"
	apphttp "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Farmacia-api/pkg/jwt"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// buildAPIApp arma la aplicación completa sobre un store en memoria.
func buildAPIApp(t *testing.T) *fiber.App {
	t.Helper()
	store := docstore.NewMemoryStore()
	log := logger.Nop()

	authUC := auth.NewAuthUseCase(records.NewUserAdapter(store, nil), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	activityUC := usecase.NewActivityUseCase(records.NewActivityAdapter(store, nil), log, "es")
	inventoryRepo := records.NewInventoryAdapter(store, nil)
	taskRepo := records.NewTaskAdapter(store, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  usecase.NewInventoryUseCase(inventoryRepo, activityUC, scanner.NewNoHardware(), "es"),
		EmployeeUC:   usecase.NewEmployeeUseCase(records.NewEmployeeAdapter(store, nil), activityUC, "es"),
		TaskUC:       usecase.NewTaskUseCase(taskRepo, activityUC, "es"),
		ActivityUC:   activityUC,
		ExpirationUC: usecase.NewExpirationUseCase(inventoryRepo, nil),
		DashboardUC:  usecase.NewDashboardUseCase(inventoryRepo, taskRepo, records.NewActivityAdapter(store, nil), "es"),
		JWTSecret:    testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registrarYLogin crea un usuario y devuelve su token de sesión.
func registrarYLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: "secreta1", DisplayName: "Ana Pérez",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: email, Password: "secreta1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody[dto.LoginResponse](t, resp).Token
}

// tokenAdmin forja un token con rol admin para las rutas restringidas.
func tokenAdmin(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegisterLoginMe(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, "ana@farmacia.co", me.Email)
	assert.Equal(t, "user", me.Role)
}

func TestAPI_RegisterEmailDuplicado409(t *testing.T) {
	app := buildAPIApp(t)
	registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "ana@farmacia.co", Password: "secreta1",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_UpdateProfile(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	nombre := "Ana María"
	resp := doJSON(t, app, http.MethodPut, "/api/auth/profile", token, dto.UpdateProfileRequest{DisplayName: &nombre})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, "Ana María", out.DisplayName)
}

func TestAPI_LogoutDejaConstancia(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/activity", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs := decodeBody[[]dto.ActivityLogResponse](t, resp)
	require.NotEmpty(t, logs)
	assert.Equal(t, "Sesión cerrada", logs[0].Action)
}

func TestAPI_RutaProtegidaSinToken401(t *testing.T) {
	app := buildAPIApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/inventory", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func crearItem(t *testing.T, app *fiber.App, token, nombre, vence string) dto.InventoryItemResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/inventory", token, dto.CreateInventoryItemRequest{
		Name: nombre, Category: "Analgésicos", Quantity: 10,
		ExpirationDate: vence, Status: "In Stock",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[dto.InventoryItemResponse](t, resp)
}

func TestAPI_InventarioCRUD(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	created := crearItem(t, app, token, "Paracetamol", "2026-08-01")
	assert.NotEmpty(t, created.ID)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, "2026-08-01", got.ExpirationDate)

	resp = doJSON(t, app, http.MethodPut, "/api/inventory/"+created.ID, token, dto.UpdateInventoryItemRequest{
		Name: "Paracetamol 500mg", Category: "Analgésicos", Quantity: 0,
		ExpirationDate: "2026-08-01", Status: "Out of Stock",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, "destructive", updated.StatusVariant)
}

func TestAPI_InventarioListaOrdenada(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	crearItem(t, app, token, "Tardío", "2027-01-01")
	crearItem(t, app, token, "Urgente", "2025-10-01")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeBody[[]dto.InventoryItemResponse](t, resp)
	require.Len(t, items, 2)
	assert.Equal(t, "Urgente", items[0].Name, "vencimiento más próximo primero")

	resp = doJSON(t, app, http.MethodGet, "/api/inventory?q=tard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items = decodeBody[[]dto.InventoryItemResponse](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Tardío", items[0].Name)
}

func TestAPI_InventarioValidacion400ConCampos(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory", token, dto.CreateInventoryItemRequest{
		Name: "P", Category: "Analgésicos", Quantity: -1,
		ExpirationDate: "2026-08-01", Status: "In Stock",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody[apphttp.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	campos := make([]string, 0, len(out.Fields))
	for _, f := range out.Fields {
		campos = append(campos, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "quantity"}, campos)
}

func TestAPI_InventarioDelete(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")
	admin := tokenAdmin(t)

	created := crearItem(t, app, token, "Paracetamol", "2026-08-01")

	// El rol user no puede borrar.
	resp := doJSON(t, app, http.MethodDelete, "/api/inventory/"+created.ID+"?confirm=true", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin sin confirmar tampoco borra.
	resp = doJSON(t, app, http.MethodDelete, "/api/inventory/"+created.ID, admin, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CONFIRM_REQUIRED")

	// Admin con confirm=true sí.
	resp = doJSON(t, app, http.MethodDelete, "/api/inventory/"+created.ID+"?confirm=true", admin, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/"+created.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_InventarioScanSinHardware(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/scan", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.ScanResponse](t, resp)
	assert.Equal(t, "unavailable", out.Outcome)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tareas y empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_TareasEstado(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodPost, "/api/tasks", token, dto.CreateTaskRequest{
		Title: "Revisar neveras", DueDate: "2026-02-01", Priority: "High",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.TaskResponse](t, resp)
	assert.Equal(t, "Pending", created.Status)

	resp = doJSON(t, app, http.MethodPatch, "/api/tasks/"+created.ID+"/status", token, dto.ChangeTaskStatusRequest{Status: "In Progress"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.TaskResponse](t, resp)
	assert.Equal(t, "In Progress", out.Status)
	assert.Equal(t, "secondary", out.StatusVariant)
}

func TestAPI_EmpleadosAltaYListado(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", token, dto.CreateEmployeeRequest{
		Name: "Carlos Gómez", Role: "Farmacéutico", Email: "carlos@farmacia.co",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "CG", created.Initials)

	resp = doJSON(t, app, http.MethodGet, "/api/employees", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	emps := decodeBody[[]dto.EmployeeResponse](t, resp)
	require.Len(t, emps, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bitácora, vencimientos y tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ActividadRegistraMutaciones(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	crearItem(t, app, token, "Paracetamol", "2026-08-01")

	resp := doJSON(t, app, http.MethodGet, "/api/activity", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs := decodeBody[[]dto.ActivityLogResponse](t, resp)
	require.NotEmpty(t, logs)
	assert.Equal(t, "Ítem de inventario creado", logs[0].Action)
	assert.Equal(t, "Ana Pérez", logs[0].User, "la bitácora usa el nombre visible del actor")
}

func TestAPI_ActividadExportCSV(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	crearItem(t, app, token, "Paracetamol", "2026-08-01")

	resp := doJSON(t, app, http.MethodGet, "/api/activity/export", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="activity_logs.csv"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id","user","action","timestamp","details"`)
}

func TestAPI_Vencimientos(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	crearItem(t, app, token, "Próximo", "2026-01-01")

	resp := doJSON(t, app, http.MethodGet, "/api/expirations?window=all", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.ExpirationSummaryResponse](t, resp)
	assert.Equal(t, "all", out.Window)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "Próximo", out.Alerts[0].ItemName)
}

func TestAPI_Dashboard(t *testing.T) {
	app := buildAPIApp(t)
	token := registrarYLogin(t, app, "ana@farmacia.co")

	crearItem(t, app, token, "Paracetamol", "2026-08-01")

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.DashboardResponse](t, resp)
	assert.Equal(t, 1, out.TotalItems)
	assert.Equal(t, 10, out.TotalUnits)
	require.NotEmpty(t, out.RecentActivity)
}
